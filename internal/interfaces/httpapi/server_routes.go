package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/home", handler.GetHome)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/performers", handler.ListPerformers)
	mux.HandleFunc("GET /v1/gallery", handler.ListGallery)
	mux.HandleFunc("GET /v1/news", handler.ListNews)
	mux.HandleFunc("GET /v1/alerts", handler.ListAlerts)
	mux.HandleFunc("GET /v1/scoreboard", handler.ListScoreboard)
}

func registerIntakeRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/registrations", handler.SubmitRegistration)
	mux.HandleFunc("POST /functions/v1/submit-registration", handler.SubmitRegistration)
	mux.HandleFunc("POST /v1/visits", handler.TrackVisit)
}

// Admin routes accept every method so that authentication runs before the
// method check; a non-POST call that passes auth gets "Unknown action".
func registerAdminRoutes(mux *http.ServeMux, handler *Handler, auth AdminAuth, logger *logging.Logger) {
	dispatch := RequireAdmin(auth, logger, http.HandlerFunc(handler.AdminDispatch))
	mux.Handle("/v1/admin", dispatch)
	mux.Handle("/functions/v1/admin-api", dispatch)
}
