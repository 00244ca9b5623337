// Package akinator implements the incremental-filtering guessing
// engine: a dialogue loop that narrows a candidate set of tournaments
// or players through generated yes/no questions until it can name a
// guess or has to give up.
package akinator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/golazoapps/mundialito/internal/mundial"
)

// Attempt budgets per mode. Player mode gets a higher budget because
// its candidate space and attribute dimensionality are larger.
const (
	maxAttemptsTeam   = 8
	maxAttemptsPlayer = 15
)

// Status is the lifecycle of one game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
	StatusGaveUp     Status = "gave_up"
)

var ErrInvalidMode = errors.New("mode must be equipo or jugador")

// Config carries the dependencies for a game. Rand and Logger are
// optional; a nil Rand gets a time-seeded source, so tests inject a
// fixed seed for determinism.
type Config struct {
	Mode       mundial.Mode
	Candidates []Candidate
	Rand       *rand.Rand
	Logger     *slog.Logger
}

// Game is the state machine for one guessing round. It is owned by a
// single session and not safe for concurrent use; the hosting layer
// serializes access per session.
type Game struct {
	mode        mundial.Mode
	rng         *rand.Rand
	logger      *slog.Logger
	candidates  []Candidate
	asked       []category
	last        *question
	pending     *Candidate
	attempts    int
	maxAttempts int
	status      Status
}

// New starts a fresh game over the given candidate pool. The pool is
// copied: the game never mutates the caller's slice.
func New(cfg Config) (*Game, error) {
	if !cfg.Mode.Valid() {
		return nil, ErrInvalidMode
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	maxAttempts := maxAttemptsTeam
	if cfg.Mode == mundial.ModePlayer {
		maxAttempts = maxAttemptsPlayer
	}

	g := &Game{
		mode:        cfg.Mode,
		rng:         rng,
		logger:      logger,
		candidates:  append([]Candidate(nil), cfg.Candidates...),
		maxAttempts: maxAttempts,
		status:      StatusInProgress,
	}
	g.logger.Info("game started", "mode", cfg.Mode, "candidates", len(g.candidates))
	return g, nil
}

// Intro returns the opening prompt. It does not ask a question and
// does not consume an attempt.
func (g *Game) Intro() Result {
	text := "¡Piensa en un equipo campeón del mundo! Intentaré adivinarlo. Responde con 'sí', 'no' o 'no sé'."
	if g.mode == mundial.ModePlayer {
		text = "¡Piensa en un jugador campeón del mundo! Intentaré adivinarlo. Responde con 'sí', 'no' o 'no sé'."
	}
	return Result{Kind: KindIntro, Text: text}
}

// Mode returns the immutable game mode.
func (g *Game) Mode() mundial.Mode { return g.mode }

// Status returns the game's lifecycle state.
func (g *Game) Status() Status { return g.status }

// Attempts returns how many interactions have been spent.
func (g *Game) Attempts() int { return g.attempts }

// Remaining returns the size of the live candidate set.
func (g *Game) Remaining() int { return len(g.candidates) }

// NextQuestion produces the next interaction. Every call consumes one
// attempt, whether it asks a discriminating question or jumps straight
// to a guess.
func (g *Game) NextQuestion() Result {
	g.attempts++

	if len(g.candidates) == 0 {
		g.status = StatusGaveUp
		return Result{Kind: KindGaveUp, Text: "No tengo más candidatos. ¿Quieres intentar otra vez?"}
	}

	// Few candidates left, or attempt budget spent: name one directly.
	if len(g.candidates) <= 2 || g.attempts >= g.maxAttempts {
		candidate := g.candidates[0]
		g.pending = &candidate
		g.last = nil
		return Result{
			Kind:      KindGuess,
			Text:      g.guessText(candidate),
			Candidate: &candidate,
		}
	}

	g.pending = nil
	var q question
	if g.mode == mundial.ModePlayer {
		q = g.nextPlayerQuestion()
	} else {
		q = g.nextTeamQuestion()
	}
	g.last = &q
	g.logger.Debug("question generated", "category", q.category, "attempt", g.attempts)
	return Result{Kind: KindQuestion, Text: q.text}
}

func (g *Game) guessText(c Candidate) string {
	if g.mode == mundial.ModeTeam {
		return fmt.Sprintf("¿Estás pensando en %s del Mundial %d?", c.Country, c.Year)
	}
	return fmt.Sprintf("¿Estás pensando en %s que jugó con %s en %d?", c.Name, c.Country, c.Year)
}

// Answer normalization. Anything outside the fixed token sets counts
// as "don't know": the question is re-asked rather than silently
// filtering on a negative.
type answer int

const (
	answerUnknown answer = iota
	answerYes
	answerNo
)

func parseAnswer(text string) answer {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "sí", "si", "s", "yes", "y":
		return answerYes
	case "no", "n":
		return answerNo
	}
	return answerUnknown
}

// ProcessAnswer consumes the player's reply to the last question or
// guess and returns the follow-up interaction.
func (g *Game) ProcessAnswer(text string) Result {
	ans := parseAnswer(text)

	// A pending guess resolves first: confirmation wins the game, a
	// rejection discards the named candidate and moves on.
	if g.pending != nil {
		return g.resolveGuess(ans)
	}

	if len(g.candidates) == 0 || g.attempts >= g.maxAttempts {
		g.status = StatusGaveUp
		return Result{Kind: KindGaveUp, Text: "No puedo adivinar en qué estabas pensando. ¿Quieres intentar de nuevo?"}
	}

	if ans == answerUnknown {
		// No signal, no filtering. Re-asking still costs an attempt.
		return g.NextQuestion()
	}

	if g.last != nil {
		g.filter(*g.last, ans == answerYes)
	}
	return g.NextQuestion()
}

func (g *Game) resolveGuess(ans answer) Result {
	guessed := *g.pending
	g.pending = nil

	if ans == answerYes {
		g.status = StatusWon
		text := fmt.Sprintf("¡Lo adiviné! Estabas pensando en %s del Mundial %d. ¿Quieres jugar de nuevo?", guessed.Country, guessed.Year)
		if g.mode == mundial.ModePlayer {
			text = fmt.Sprintf("¡Lo adiviné! Estabas pensando en %s de %s (%d). ¿Quieres jugar de nuevo?", guessed.Name, guessed.Country, guessed.Year)
		}
		return Result{Kind: KindWon, Text: text, Candidate: &guessed}
	}

	// Drop the rejected candidate and let the next interaction guess
	// the remainder or give up.
	kept := g.candidates[:0]
	for _, c := range g.candidates {
		if c != guessed {
			kept = append(kept, c)
		}
	}
	g.candidates = kept

	if len(g.candidates) == 0 || g.attempts >= g.maxAttempts {
		g.status = StatusLost
		return Result{Kind: KindLost, Text: "¡Vaya! Me he equivocado. ¿Quieres intentar de nuevo?"}
	}
	return g.NextQuestion()
}
