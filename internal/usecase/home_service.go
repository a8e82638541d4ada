package usecase

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/domain/alert"
	"github.com/riskibarqy/league-portal/internal/domain/gallery"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/performer"
	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/sourcegraph/conc/pool"
)

// HomeFeed is everything the landing page renders in one response.
type HomeFeed struct {
	Standings  []standing.Standing
	Matches    []match.Match
	Performers []performer.Performer
	Gallery    []gallery.Image
	News       []news.Item
	Alerts     []alert.Alert
	Scoreboard []scoreboard.Update
}

type HomeService struct {
	standings  *StandingService
	matches    *MatchService
	performers *PerformerService
	gallery    *GalleryService
	news       *NewsService
	alerts     *AlertService
	scoreboard *ScoreboardService
}

func NewHomeService(
	standings *StandingService,
	matches *MatchService,
	performers *PerformerService,
	galleryService *GalleryService,
	newsService *NewsService,
	alerts *AlertService,
	scoreboardService *ScoreboardService,
) *HomeService {
	return &HomeService{
		standings:  standings,
		matches:    matches,
		performers: performers,
		gallery:    galleryService,
		news:       newsService,
		alerts:     alerts,
		scoreboard: scoreboardService,
	}
}

// Get loads every section concurrently. The first failing section cancels the rest.
func (s *HomeService) Get(ctx context.Context) (HomeFeed, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.Get")
	defer span.End()

	var feed HomeFeed
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		feed.Standings, err = s.standings.List(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		feed.Matches, err = s.matches.List(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		feed.Performers, err = s.performers.List(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		feed.Gallery, err = s.gallery.List(ctx, true)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		feed.News, err = s.news.List(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		feed.Alerts, err = s.alerts.ListActive(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		feed.Scoreboard, err = s.scoreboard.List(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		return HomeFeed{}, err
	}
	return feed, nil
}
