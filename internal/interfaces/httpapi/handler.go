package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

// Services are the use cases the HTTP layer serves.
type Services struct {
	Standings     *usecase.StandingService
	Matches       *usecase.MatchService
	Performers    *usecase.PerformerService
	Gallery       *usecase.GalleryService
	News          *usecase.NewsService
	Alerts        *usecase.AlertService
	Scoreboard    *usecase.ScoreboardService
	Home          *usecase.HomeService
	Visitors      *usecase.VisitorService
	Analytics     *usecase.AnalyticsService
	Registrations *usecase.RegistrationService
}

type HandlerConfig struct {
	// ExposeAdminErrors forwards raw failure messages to the admin console.
	ExposeAdminErrors bool
	UploadMaxBytes    int64
}

type Handler struct {
	svc          Services
	logger       *logging.Logger
	exposeErrors bool
	maxUpload    int64
	adminActions map[string]adminAction
}

func NewHandler(svc Services, cfg HandlerConfig, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	maxUpload := cfg.UploadMaxBytes
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}

	h := &Handler{
		svc:          svc,
		logger:       logger,
		exposeErrors: cfg.ExposeAdminErrors,
		maxUpload:    maxUpload,
	}
	h.adminActions = h.buildAdminActions()
	return h
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeData(ctx, w, map[string]string{"status": "ok"})
}
