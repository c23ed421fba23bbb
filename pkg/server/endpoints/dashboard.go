package endpoints

import (
	"net/http"
	"time"

	"github.com/salesupport/salesupport/pkg/ai"
	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/server"
)

type dashboardRecommendation struct {
	ClientID uint      `json:"client_id"`
	Message  string    `json:"message"`
	RemindAt time.Time `json:"remind_at"`
}

type dashboardResponse struct {
	Totals struct {
		Clients          int64   `json:"clients"`
		Interactions     int64   `json:"interactions"`
		PendingReminders int64   `json:"pending_reminders"`
		Revenue          float64 `json:"revenue"`
	} `json:"totals"`
	Trends struct {
		InteractionsLastWeek int64 `json:"interactions_last_week"`
	} `json:"trends"`
	AIRecommendations  []dashboardRecommendation `json:"aiRecommendations"`
	RecentInteractions interface{}               `json:"recentInteractions"`
}

// RegisterDashboardEndpoints attaches /dashboard/stats.
func RegisterDashboardEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/dashboard").Subrouter()
	router.Use(authn.Middleware)

	router.HandleFunc("/stats", handleDashboardStats(s)).Methods("GET")
}

func handleDashboardStats(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		stats, err := s.DashboardStore.Stats(id.UserID(), time.Now().UTC())
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		var resp dashboardResponse
		resp.Totals.Clients = stats.TotalClients
		resp.Totals.Interactions = stats.TotalInteractions
		resp.Totals.PendingReminders = stats.PendingReminders
		resp.Totals.Revenue = stats.Revenue
		resp.Trends.InteractionsLastWeek = stats.InteractionsLastWeek

		resp.AIRecommendations = make([]dashboardRecommendation, 0, len(stats.UpcomingReminders))
		for _, reminder := range stats.UpcomingReminders {
			rec := s.Engine.GenerateNextStep(ai.RecommendRequest{ClientID: reminder.ClientID})
			resp.AIRecommendations = append(resp.AIRecommendations, dashboardRecommendation{
				ClientID: reminder.ClientID,
				Message:  rec.Message,
				RemindAt: reminder.RemindAt,
			})
		}
		resp.RecentInteractions = stats.RecentInteractions

		respondWithJSON(w, http.StatusOK, resp)
	}
}
