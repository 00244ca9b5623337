package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/golazoapps/mundialito/internal/agent"
	"github.com/golazoapps/mundialito/internal/worldcup"
)

func addRoutes(r chi.Router, logger *slog.Logger, cache *worldcup.Cache, client *worldcup.Client, responder *agent.Agent, sessions *Registry) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Mundialito API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, client))

	// Akinator game — sessions resolved from the Bearer token.
	r.Route("/api/game", func(r chi.Router) {
		r.Post("/start", handleStart(logger, cache, sessions))
		r.Post("/answer", handleAnswer(sessions))
		r.Post("/register/team", handleRegisterTeam(logger, cache))
		r.Post("/register/player", handleRegisterPlayer(logger, cache))
	})

	// Free-text query agent.
	r.Post("/api/query", handleQuery(responder))

	// Reference data passthrough.
	r.Get("/api/paises", handleCountries(cache))
	r.Get("/api/mundiales", handleTournaments(cache))
	r.Get("/api/mundiales/{id}", handleTournamentDetail(cache))
	r.Get("/api/posiciones", handlePositions(cache))
	r.Get("/api/jugadores/buscar", handleSearchPlayers(logger, client))
}
