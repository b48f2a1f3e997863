package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

func handleHealth(checks map[string]HealthCheck) http.HandlerFunc {
	type result struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		results := make(map[string]result, len(checks))
		status := http.StatusOK

		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.Error().Err(err).Str("name", name).Msg("health check failed")
				results[name] = result{Status: "error"}
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = result{Status: "ok"}
		}

		writeJSON(w, status, results)
	}
}
