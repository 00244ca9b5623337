package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golazoapps/mundialito/internal/worldcup"
)

// RegisterTeamRequest upserts a champion the engine didn't know about.
type RegisterTeamRequest struct {
	Country string `json:"country"`
	Year    int    `json:"year"`
}

// RegisterResponse reports whether the record was created or already
// present. Duplicates are successful no-ops.
type RegisterResponse struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}

func handleRegisterTeam(logger *slog.Logger, cache *worldcup.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterTeamRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Country = strings.TrimSpace(req.Country)
		if req.Country == "" || req.Year == 0 {
			writeError(w, http.StatusBadRequest, "country and year are required")
			return
		}

		_, created, err := cache.RegisterTeam(r.Context(), req.Country, req.Year)
		if err != nil {
			logger.Error("registering team", "country", req.Country, "year", req.Year, "error", err)
			writeError(w, http.StatusBadGateway, "no se pudo registrar el equipo")
			return
		}

		message := "El equipo ya estaba registrado."
		if created {
			message = "¡Equipo registrado! La próxima vez lo adivinaré."
		}
		writeJSON(w, http.StatusOK, RegisterResponse{Created: created, Message: message})
	}
}

// RegisterPlayerRequest upserts a player into an existing champion's
// roster.
type RegisterPlayerRequest struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Year       int    `json:"year"`
	PositionID int    `json:"positionId"`
	Starter    bool   `json:"starter"`
}

func handleRegisterPlayer(logger *slog.Logger, cache *worldcup.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Country = strings.TrimSpace(req.Country)
		if req.Name == "" || req.Country == "" || req.Year == 0 || req.PositionID == 0 {
			writeError(w, http.StatusBadRequest, "name, country, year, and positionId are required")
			return
		}

		_, created, err := cache.RegisterPlayer(r.Context(), req.Name, req.Country, req.Year, req.PositionID, req.Starter)
		if errors.Is(err, worldcup.ErrTournamentUnknown) {
			writeError(w, http.StatusNotFound, "no conozco un mundial de ese año y país; registra el equipo primero")
			return
		}
		if err != nil {
			logger.Error("registering player", "name", req.Name, "error", err)
			writeError(w, http.StatusBadGateway, "no se pudo registrar el jugador")
			return
		}

		message := "El jugador ya estaba registrado."
		if created {
			message = "¡Jugador registrado! La próxima vez lo adivinaré."
		}
		writeJSON(w, http.StatusOK, RegisterResponse{Created: created, Message: message})
	}
}
