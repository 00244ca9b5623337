package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Mundialito API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Akinator-style guessing game over World Cup champions, plus a free-text query agent.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Reports reachability of the reference data API.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/game/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/game/start")
	postStart.SetSummary("Start a game")
	postStart.SetDescription("Starts a fresh guessing round in equipo or jugador mode. Returns a session token and the first question. A Bearer token reuses the session for a new round.")
	postStart.AddReqStructure(StartRequest{})
	postStart.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postStart)

	// POST /api/game/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/game/answer")
	postAnswer.SetSummary("Answer the current question")
	postAnswer.SetDescription("Submits sí / no / no sé for the last question or guess. Requires Bearer token. Branch on status, not on the message text.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postAnswer)

	// POST /api/game/register/team
	postTeam, _ := r.NewOperationContext(http.MethodPost, "/api/game/register/team")
	postTeam.SetSummary("Register a champion")
	postTeam.SetDescription("Upserts a champion the engine failed to guess. Duplicates succeed as no-ops.")
	postTeam.AddReqStructure(RegisterTeamRequest{})
	postTeam.AddRespStructure(RegisterResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postTeam)

	// POST /api/game/register/player
	postPlayer, _ := r.NewOperationContext(http.MethodPost, "/api/game/register/player")
	postPlayer.SetSummary("Register a player")
	postPlayer.SetDescription("Upserts a player into an existing champion's roster.")
	postPlayer.AddReqStructure(RegisterPlayerRequest{})
	postPlayer.AddRespStructure(RegisterResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postPlayer)

	// POST /api/query
	postQuery, _ := r.NewOperationContext(http.MethodPost, "/api/query")
	postQuery.SetSummary("Ask the agent")
	postQuery.SetDescription("Free-text question about champions, editions, or players.")
	postQuery.AddReqStructure(QueryRequest{})
	postQuery.AddRespStructure(QueryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postQuery.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postQuery)

	// GET /api/paises
	getCountries, _ := r.NewOperationContext(http.MethodGet, "/api/paises")
	getCountries.SetSummary("List champion countries")
	getCountries.AddRespStructure([]CountryItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCountries)

	// GET /api/mundiales
	getTournaments, _ := r.NewOperationContext(http.MethodGet, "/api/mundiales")
	getTournaments.SetSummary("List World Cup editions")
	getTournaments.AddRespStructure([]TournamentItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getTournaments)

	// GET /api/mundiales/{id}
	getTournament, _ := r.NewOperationContext(http.MethodGet, "/api/mundiales/{id}")
	getTournament.SetSummary("Get one edition with its roster")
	getTournament.AddRespStructure(TournamentDetailResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getTournament.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTournament)

	// GET /api/posiciones
	getPositions, _ := r.NewOperationContext(http.MethodGet, "/api/posiciones")
	getPositions.SetSummary("List positions")
	getPositions.AddRespStructure([]PositionItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getPositions)

	// GET /api/jugadores/buscar
	searchPlayers, _ := r.NewOperationContext(http.MethodGet, "/api/jugadores/buscar")
	searchPlayers.SetSummary("Search players by name")
	searchPlayers.SetDescription("Requires at least 3 characters in the q query parameter.")
	searchPlayers.AddRespStructure([]PlayerItem{}, openapi.WithHTTPStatus(http.StatusOK))
	searchPlayers.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(searchPlayers)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
