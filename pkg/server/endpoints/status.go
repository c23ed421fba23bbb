package endpoints

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salesupport/salesupport/pkg/server"
)

// RegisterStatusEndpoints attaches the unauthenticated banner, health,
// and metrics routes.
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleBanner(s)).Methods("GET")
	s.Router.HandleFunc("/health", handleHealth(s)).Methods("GET")
	s.Router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func handleBanner(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{
			"app":     s.Settings.AppName,
			"status":  "running",
			"version": "0.1.0",
		})
	}
}

func handleHealth(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.HealthStore.Ping(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "degraded",
				"database": "unreachable",
			})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "ok",
		})
	}
}
