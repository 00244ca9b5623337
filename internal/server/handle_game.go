package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/golazoapps/mundialito/internal/akinator"
	"github.com/golazoapps/mundialito/internal/mundial"
	"github.com/golazoapps/mundialito/internal/worldcup"
)

// StartRequest selects the game mode: "equipo" or "jugador".
type StartRequest struct {
	Mode string `json:"mode"`
}

// CandidateInfo identifies the candidate named by a guess or win.
type CandidateInfo struct {
	Name    string `json:"name,omitempty"`
	Country string `json:"country"`
	Year    int    `json:"year"`
}

// GameResponse is returned by every game interaction. Status carries
// the structured result kind; clients branch on it, never on the
// prompt text.
type GameResponse struct {
	Token     string         `json:"token,omitempty"`
	Message   string         `json:"message,omitempty"`
	Question  string         `json:"question,omitempty"`
	Status    string         `json:"status"`
	Candidate *CandidateInfo `json:"candidate,omitempty"`
	Final     bool           `json:"final"`
}

func candidateInfo(c *akinator.Candidate) *CandidateInfo {
	if c == nil {
		return nil
	}
	return &CandidateInfo{Name: c.Name, Country: c.Country, Year: c.Year}
}

func handleStart(logger *slog.Logger, cache *worldcup.Cache, sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		mode := mundial.Mode(strings.TrimSpace(req.Mode))
		if mode == "" {
			mode = mundial.ModeTeam
		}
		if !mode.Valid() {
			writeError(w, http.StatusBadRequest, "mode must be 'equipo' or 'jugador'")
			return
		}

		var candidates []akinator.Candidate
		if mode == mundial.ModeTeam {
			candidates = akinator.TeamCandidates(cache.Tournaments(r.Context()))
		} else {
			candidates = akinator.PlayerCandidates(cache.Players(r.Context()))
		}

		game, err := akinator.New(akinator.Config{
			Mode:       mode,
			Candidates: candidates,
			Logger:     logger,
		})
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Reuse the caller's session for "play again"; otherwise mint
		// a fresh token.
		token := tokenFromRequest(r)
		if token == "" || !sessions.Replace(token, game) {
			token = sessions.Create(game)
		}

		intro := game.Intro()
		first := game.NextQuestion()

		writeJSON(w, http.StatusOK, GameResponse{
			Token:     token,
			Message:   intro.Text,
			Question:  first.Text,
			Status:    string(first.Kind),
			Candidate: candidateInfo(first.Candidate),
			Final:     first.Terminal(),
		})
	}
}

// AnswerRequest carries the player's reply: sí / no / no sé.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

func handleAnswer(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := sessionFromRequest(r, sessions)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Answer) == "" {
			writeError(w, http.StatusBadRequest, "answer is required")
			return
		}

		result := session.Do(func(g *akinator.Game) akinator.Result {
			return g.ProcessAnswer(req.Answer)
		})

		// A finished game's session is gone; starting again mints a
		// fresh token.
		if result.Terminal() {
			sessions.Delete(tokenFromRequest(r))
		}

		writeJSON(w, http.StatusOK, GameResponse{
			Message:   result.Text,
			Status:    string(result.Kind),
			Candidate: candidateInfo(result.Candidate),
			Final:     result.Terminal(),
		})
	}
}
