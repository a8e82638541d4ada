package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	"github.com/riskibarqy/league-portal/internal/infrastructure/account/identity"
	"github.com/riskibarqy/league-portal/internal/infrastructure/geo"
	objectmemory "github.com/riskibarqy/league-portal/internal/infrastructure/objectstore/memory"
	"github.com/riskibarqy/league-portal/internal/infrastructure/objectstore/s3"
	"github.com/riskibarqy/league-portal/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// App owns the HTTP server and everything it depends on.
type App struct {
	cfg       config.Config
	logger    *logging.Logger
	server    *http.Server
	db        *sqlx.DB
	scheduler gocron.Scheduler
}

// New wires storage, services and the router. Nothing listens until Start.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}

	var repos repositories
	switch cfg.RepositoryBackend {
	case config.BackendMemory:
		repos = memoryRepositories()
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, crerr.Wrap(err, "open database")
		}
		a.db = db
		repos = postgresRepositories(db)
	}
	repos = withReadCache(repos, cfg)

	store, err := newObjectStore(ctx, cfg, logger)
	if err != nil {
		a.closeDB()
		return nil, err
	}

	ids := idgen.NewUUIDGenerator()
	standings := usecase.NewStandingService(repos.standings)
	matches := usecase.NewMatchService(repos.matches, ids, cfg.MatchDefaultVenue)
	performers := usecase.NewPerformerService(repos.performers, store, ids)
	galleryService := usecase.NewGalleryService(repos.gallery, store, repos.orphans, ids, logger, cfg.GalleryHomepageLimit)
	newsService := usecase.NewNewsService(repos.news, ids, cfg.NewsLimit)
	alerts := usecase.NewAlertService(repos.alerts, ids)
	scoreboardService := usecase.NewScoreboardService(repos.scoreboard, ids, cfg.ScoreboardLimit)

	handler := httpapi.NewHandler(httpapi.Services{
		Standings:     standings,
		Matches:       matches,
		Performers:    performers,
		Gallery:       galleryService,
		News:          newsService,
		Alerts:        alerts,
		Scoreboard:    scoreboardService,
		Home:          usecase.NewHomeService(standings, matches, performers, galleryService, newsService, alerts, scoreboardService),
		Visitors:      usecase.NewVisitorService(repos.visitors, newLocator(cfg, logger), ids, logger, cfg.GeoDefaultCountry),
		Analytics:     usecase.NewAnalyticsService(repos.visitors, cfg.AnalyticsLogLimit, cfg.AnalyticsLocation),
		Registrations: usecase.NewRegistrationService(repos.registrations, ids, cfg.RegistrationListLimit),
	}, httpapi.HandlerConfig{
		ExposeAdminErrors: cfg.AdminExposeErrors,
		UploadMaxBytes:    cfg.UploadMaxBytes,
	}, logger)

	auth := httpapi.AdminAuth{Password: cfg.AdminPassword}
	if cfg.IdentityEnabled {
		auth.Verifier = identity.NewClient(identity.ClientConfig{
			HTTPClient: &http.Client{
				Timeout:   cfg.IdentityTimeout,
				Transport: otelhttp.NewTransport(http.DefaultTransport),
			},
			BaseURL:        cfg.IdentityBaseURL,
			IntrospectPath: cfg.IdentityIntrospectPath,
			Timeout:        cfg.IdentityTimeout,
			Logger:         logger,
			CircuitBreaker: cfg.IdentityCircuit,
		})
	}

	a.server = &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler, httpapi.RouterConfig{
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			Admin:              auth,
		}, logger),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	if cfg.OrphanSweepEnabled {
		sweeper := usecase.NewOrphanSweeper(repos.orphans, store, logger, cfg.OrphanSweepBatch, cfg.OrphanSweepWorkers)
		sched, err := newSweepScheduler(sweeper, cfg.OrphanSweepInterval, logger)
		if err != nil {
			a.closeDB()
			return nil, crerr.Wrap(err, "create orphan sweep scheduler")
		}
		a.scheduler = sched
	}

	return a, nil
}

func newObjectStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (media.ObjectStore, error) {
	if cfg.ObjectStoreBackend == config.BackendMemory {
		return objectmemory.NewStore(cfg.S3Bucket, cfg.S3PublicBaseURL), nil
	}
	store, err := s3.New(ctx, s3.Config{
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Bucket:          cfg.S3Bucket,
		PublicBaseURL:   cfg.S3PublicBaseURL,
		MaxObjectBytes:  cfg.UploadMaxBytes,
		Logger:          logger,
	})
	if err != nil {
		return nil, crerr.Wrap(err, "create object store")
	}
	return store, nil
}

// newLocator returns nil when geolocation is off; visits then record the default location.
func newLocator(cfg config.Config, logger *logging.Logger) visitor.Locator {
	if !cfg.GeoEnabled {
		return nil
	}
	return geo.NewClient(geo.ClientConfig{
		LookupURL:      cfg.GeoLookupURL,
		Timeout:        cfg.GeoTimeout,
		Logger:         logger,
		CircuitBreaker: cfg.GeoCircuit,
	})
}

func (a *App) Handler() http.Handler { return a.server.Handler }

// Start begins serving and scheduling. Listener failures are sent on the returned channel.
func (a *App) Start() <-chan error {
	errs := make(chan error, 1)
	if a.scheduler != nil {
		a.scheduler.Start()
		a.logger.Info("orphan sweep scheduled", "interval", a.cfg.OrphanSweepInterval.String())
	}
	go func() {
		a.logger.Info("http server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()
	return errs
}

// Shutdown drains in-flight requests, stops the scheduler and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, crerr.Wrap(err, "shutdown http server"))
	}
	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(); err != nil {
			errs = append(errs, crerr.Wrap(err, "shutdown scheduler"))
		}
	}
	if err := a.closeDB(); err != nil {
		errs = append(errs, crerr.Wrap(err, "close database"))
	}
	return errors.Join(errs...)
}

func (a *App) closeDB() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
