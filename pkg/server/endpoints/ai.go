package endpoints

import (
	"net/http"

	"github.com/salesupport/salesupport/pkg/ai"
	"github.com/salesupport/salesupport/pkg/server"
)

// RegisterAIEndpoints attaches the assistant routes. Every handler is a
// thin decode/respond shim over the deterministic engine.
func RegisterAIEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/ai").Subrouter()
	router.Use(authn.Middleware)

	router.HandleFunc("/recommend", handleRecommend(s)).Methods("POST")
	router.HandleFunc("/suggest_message", handleSuggestMessage(s)).Methods("POST")
	router.HandleFunc("/reminder_text", handleReminderText(s)).Methods("POST")
	router.HandleFunc("/invoice/parse", handleInvoiceParse(s)).Methods("POST")
	router.HandleFunc("/idle_prompt", handleIdlePrompt(s)).Methods("POST")
}

func handleRecommend(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ai.RecommendRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		respondWithJSON(w, http.StatusOK, ai.RecommendResponse{
			Recommendation: s.Engine.GenerateNextStep(req),
			Reminder:       s.Engine.ScheduleReminder(req),
		})
	}
}

func handleSuggestMessage(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ai.SuggestMessageRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		respondWithJSON(w, http.StatusOK, s.Engine.SuggestMessage(req))
	}
}

func handleReminderText(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ai.ReminderTextRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.ClientID == 0 {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}
		respondWithJSON(w, http.StatusOK, s.Engine.GenerateReminderText(req))
	}
}

func handleInvoiceParse(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ai.InvoiceParseRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		respondWithJSON(w, http.StatusOK, s.Engine.ParseInvoice(req))
	}
}

func handleIdlePrompt(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ai.IdlePromptRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		respondWithJSON(w, http.StatusOK, s.Engine.GenerateIdlePrompt(req))
	}
}
