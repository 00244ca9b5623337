package server

import (
	"net/http"
	"strings"

	"github.com/golazoapps/mundialito/internal/agent"
)

// QueryRequest is a free-text question about champions or players.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the agent's phrased answer.
type QueryResponse struct {
	Answer string `json:"answer"`
}

func handleQuery(responder *agent.Agent) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QueryRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Query) == "" {
			writeError(w, http.StatusBadRequest, "query is required")
			return
		}

		writeJSON(w, http.StatusOK, QueryResponse{
			Answer: responder.Answer(r.Context(), req.Query),
		})
	}
}
