package dataapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the data API under /api.
func Routes(logger *slog.Logger, store *Store) chi.Router {
	r := chi.NewRouter()

	r.Get("/paises", handleCountries(logger, store))
	r.Post("/paises", handleCreateCountry(logger, store))
	r.Get("/mundiales", handleTournaments(logger, store))
	r.Post("/mundiales", handleCreateTournament(logger, store))
	r.Get("/mundiales/{id}", handleTournamentDetail(logger, store))
	r.Get("/posiciones", handlePositions(logger, store))
	r.Get("/jugadores/buscar", handleSearchPlayers(logger, store))
	r.Post("/jugadores", handleCreatePlayer(logger, store))

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func internalError(logger *slog.Logger, w http.ResponseWriter, op string, err error) {
	logger.Error(op, "error", err)
	writeError(w, http.StatusInternalServerError, "error interno del servidor")
}

func handleCountries(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		countries, err := store.Countries(r.Context())
		if err != nil {
			internalError(logger, w, "listing countries", err)
			return
		}
		writeJSON(w, http.StatusOK, countries)
	}
}

func handleTournaments(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := store.Tournaments(r.Context())
		if err != nil {
			internalError(logger, w, "listing tournaments", err)
			return
		}
		writeJSON(w, http.StatusOK, tournaments)
	}
}

func handleTournamentDetail(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "id inválido")
			return
		}
		detail, err := store.TournamentByID(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "Mundial no encontrado")
			return
		}
		if err != nil {
			internalError(logger, w, "fetching tournament", err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func handlePositions(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions, err := store.Positions(r.Context())
		if err != nil {
			internalError(logger, w, "listing positions", err)
			return
		}
		writeJSON(w, http.StatusOK, positions)
	}
}

func handleSearchPlayers(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if len([]rune(query)) < 3 {
			writeError(w, http.StatusBadRequest, "La búsqueda debe tener al menos 3 caracteres")
			return
		}
		hits, err := store.SearchPlayers(r.Context(), query)
		if err != nil {
			internalError(logger, w, "searching players", err)
			return
		}
		writeJSON(w, http.StatusOK, hits)
	}
}

func handleCreateCountry(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"nombre"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, "El nombre del país es obligatorio")
			return
		}
		country, err := store.CreateCountry(r.Context(), req.Name)
		if err != nil {
			internalError(logger, w, "creating country", err)
			return
		}
		writeJSON(w, http.StatusOK, country)
	}
}

func handleCreateTournament(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Year      int `json:"anio"`
			CountryID int `json:"pais_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Year == 0 || req.CountryID == 0 {
			writeError(w, http.StatusBadRequest, "El año y el país son obligatorios")
			return
		}
		tournament, err := store.CreateTournament(r.Context(), req.Year, req.CountryID)
		if err != nil {
			internalError(logger, w, "creating tournament", err)
			return
		}
		writeJSON(w, http.StatusOK, tournament)
	}
}

func handleCreatePlayer(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name         string `json:"nombre"`
			TournamentID int    `json:"mundial_id"`
			PositionID   int    `json:"posicion_id"`
			Starter      bool   `json:"titular"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.TournamentID == 0 || req.PositionID == 0 {
			writeError(w, http.StatusBadRequest, "El nombre, mundial y posición son obligatorios")
			return
		}
		player, err := store.CreatePlayer(r.Context(), req.Name, req.TournamentID, req.PositionID, req.Starter)
		if err != nil {
			internalError(logger, w, "creating player", err)
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}
