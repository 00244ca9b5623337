package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/golazoapps/mundialito/internal/worldcup"
)

// HealthResponse reports the status of backend dependencies.
type HealthResponse struct {
	DataAPI string `json:"data_api"`
}

func handleHealth(logger *slog.Logger, client *worldcup.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		resp := HealthResponse{DataAPI: "ok"}
		status := http.StatusOK

		if _, err := client.Positions(ctx); err != nil {
			logger.Error("health check failed", "name", "data_api", "error", err)
			resp.DataAPI = "error"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, resp)
	}
}
