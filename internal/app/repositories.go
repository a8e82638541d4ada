package app

import (
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/domain/alert"
	"github.com/riskibarqy/league-portal/internal/domain/gallery"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/performer"
	"github.com/riskibarqy/league-portal/internal/domain/registration"
	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	repocache "github.com/riskibarqy/league-portal/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/league-portal/internal/platform/cache"
)

type repositories struct {
	standings     standing.Repository
	matches       match.Repository
	performers    performer.Repository
	gallery       gallery.Repository
	news          news.Repository
	alerts        alert.Repository
	scoreboard    scoreboard.Repository
	visitors      visitor.Repository
	registrations registration.Repository
	orphans       media.OrphanRepository
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		standings:     postgres.NewStandingRepository(db),
		matches:       postgres.NewMatchRepository(db),
		performers:    postgres.NewPerformerRepository(db),
		gallery:       postgres.NewGalleryRepository(db),
		news:          postgres.NewNewsRepository(db),
		alerts:        postgres.NewAlertRepository(db),
		scoreboard:    postgres.NewScoreboardRepository(db),
		visitors:      postgres.NewVisitorRepository(db),
		registrations: postgres.NewRegistrationRepository(db),
		orphans:       postgres.NewStorageOrphanRepository(db),
	}
}

func memoryRepositories() repositories {
	return repositories{
		standings:     memory.NewStandingRepository(nil),
		matches:       memory.NewMatchRepository(),
		performers:    memory.NewPerformerRepository(),
		gallery:       memory.NewGalleryRepository(),
		news:          memory.NewNewsRepository(),
		alerts:        memory.NewAlertRepository(),
		scoreboard:    memory.NewScoreboardRepository(),
		visitors:      memory.NewVisitorRepository(),
		registrations: memory.NewRegistrationRepository(),
		orphans:       memory.NewStorageOrphanRepository(),
	}
}

// withReadCache wraps the publicly read content tables. Visitor logs, registrations and
// orphans are admin-only or write-heavy and stay uncached.
func withReadCache(repos repositories, cfg config.Config) repositories {
	if !cfg.CacheEnabled {
		return repos
	}
	store := basecache.NewStore(cfg.CacheTTL)
	repos.standings = repocache.NewStandingRepository(repos.standings, store)
	repos.matches = repocache.NewMatchRepository(repos.matches, store)
	repos.performers = repocache.NewPerformerRepository(repos.performers, store)
	repos.gallery = repocache.NewGalleryRepository(repos.gallery, store)
	repos.news = repocache.NewNewsRepository(repos.news, store)
	repos.alerts = repocache.NewAlertRepository(repos.alerts, store)
	repos.scoreboard = repocache.NewScoreboardRepository(repos.scoreboard, store)
	return repos
}
