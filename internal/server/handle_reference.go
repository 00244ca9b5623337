package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/golazoapps/mundialito/internal/worldcup"
)

// Reference-data passthrough, serving the cached collections in the
// data API's wire shape.

type CountryItem struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

type TournamentItem struct {
	ID      int    `json:"id"`
	Year    int    `json:"anio"`
	Country string `json:"pais"`
}

type PlayerItem struct {
	Name         string `json:"nombre"`
	Position     string `json:"posicion"`
	PositionAbbr string `json:"posicion_abr,omitempty"`
	Country      string `json:"pais"`
	Year         int    `json:"anio"`
	Starter      bool   `json:"titular"`
}

type PositionItem struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

type TournamentDetailResponse struct {
	TournamentItem
	Players []PlayerItem `json:"jugadores"`
}

func handleCountries(cache *worldcup.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := []CountryItem{}
		for _, c := range cache.Countries(r.Context()) {
			items = append(items, CountryItem{ID: c.ID, Name: c.Name})
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleTournaments(cache *worldcup.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := []TournamentItem{}
		for _, t := range cache.Tournaments(r.Context()) {
			items = append(items, TournamentItem{ID: t.ID, Year: t.Year, Country: t.Country})
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleTournamentDetail(cache *worldcup.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "id inválido")
			return
		}

		var found *TournamentDetailResponse
		for _, t := range cache.Tournaments(r.Context()) {
			if t.ID == id {
				found = &TournamentDetailResponse{
					TournamentItem: TournamentItem{ID: t.ID, Year: t.Year, Country: t.Country},
					Players:        []PlayerItem{},
				}
				break
			}
		}
		if found == nil {
			writeError(w, http.StatusNotFound, "Mundial no encontrado")
			return
		}

		for _, p := range cache.Players(r.Context()) {
			if p.TournamentID == id {
				found.Players = append(found.Players, PlayerItem{
					Name:         p.Name,
					Position:     p.Position,
					PositionAbbr: p.PositionAbbr,
					Country:      p.Country,
					Year:         p.Year,
					Starter:      p.Starter,
				})
			}
		}
		writeJSON(w, http.StatusOK, found)
	}
}

func handlePositions(cache *worldcup.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := []PositionItem{}
		for _, p := range cache.Positions(r.Context()) {
			items = append(items, PositionItem{ID: p.ID, Name: p.Name})
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleSearchPlayers(logger *slog.Logger, client *worldcup.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		players, err := client.SearchPlayers(r.Context(), query)
		if errors.Is(err, worldcup.ErrQueryShort) {
			writeError(w, http.StatusBadRequest, "La búsqueda debe tener al menos 3 caracteres")
			return
		}
		if err != nil {
			logger.Error("searching players", "query", query, "error", err)
			writeError(w, http.StatusBadGateway, "error consultando la API de datos")
			return
		}

		items := []PlayerItem{}
		for _, p := range players {
			items = append(items, PlayerItem{
				Name:     p.Name,
				Position: p.Position,
				Country:  p.Country,
				Year:     p.Year,
				Starter:  p.Starter,
			})
		}
		writeJSON(w, http.StatusOK, items)
	}
}
