package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/league-portal/internal/domain/alert"
	"github.com/riskibarqy/league-portal/internal/domain/gallery"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/performer"
	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	basecache "github.com/riskibarqy/league-portal/internal/platform/cache"
)

const (
	standingsPrefix  = "standings:"
	matchesPrefix    = "matches:"
	performersPrefix = "performers:"
	galleryPrefix    = "gallery:"
	newsPrefix       = "news:"
	alertsPrefix     = "alerts:"
	scoreboardPrefix = "scoreboard:"
)

// cachedList loads a list through the store and hands every caller its own copy.
func cachedList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) List(ctx context.Context) ([]standing.Standing, error) {
	return cachedList(ctx, r.cache, standingsPrefix+"list", r.next.List)
}

func (r *StandingRepository) Upsert(ctx context.Context, s standing.Standing) error {
	if err := r.next.Upsert(ctx, s); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, standingsPrefix)
	return nil
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return cachedList(ctx, r.cache, matchesPrefix+"list", r.next.List)
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	if err := r.next.Create(ctx, m); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, matchesPrefix)
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.cache.Invalidate(ctx, matchesPrefix)
	return found, nil
}

type PerformerRepository struct {
	next  performer.Repository
	cache *basecache.Store
}

func NewPerformerRepository(next performer.Repository, cache *basecache.Store) *PerformerRepository {
	return &PerformerRepository{next: next, cache: cache}
}

func (r *PerformerRepository) List(ctx context.Context) ([]performer.Performer, error) {
	return cachedList(ctx, r.cache, performersPrefix+"list", r.next.List)
}

func (r *PerformerRepository) Upsert(ctx context.Context, p performer.Performer) (performer.Performer, error) {
	stored, err := r.next.Upsert(ctx, p)
	if err != nil {
		return performer.Performer{}, err
	}
	r.cache.Invalidate(ctx, performersPrefix)
	return stored, nil
}

type GalleryRepository struct {
	next  gallery.Repository
	cache *basecache.Store
}

func NewGalleryRepository(next gallery.Repository, cache *basecache.Store) *GalleryRepository {
	return &GalleryRepository{next: next, cache: cache}
}

func (r *GalleryRepository) List(ctx context.Context, filter gallery.ListFilter) ([]gallery.Image, error) {
	key := galleryPrefix + "list:" + strconv.FormatBool(filter.HomepageOnly) + ":" + strconv.Itoa(filter.Limit)
	return cachedList(ctx, r.cache, key, func(ctx context.Context) ([]gallery.Image, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *GalleryRepository) Create(ctx context.Context, img gallery.Image) error {
	if err := r.next.Create(ctx, img); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, galleryPrefix)
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) (gallery.Image, bool, error) {
	img, found, err := r.next.Delete(ctx, id)
	if err != nil {
		return gallery.Image{}, false, err
	}
	r.cache.Invalidate(ctx, galleryPrefix)
	return img, found, nil
}

func (r *GalleryRepository) SetShowOnHomepage(ctx context.Context, id string, show bool) (bool, error) {
	found, err := r.next.SetShowOnHomepage(ctx, id, show)
	if err != nil {
		return false, err
	}
	r.cache.Invalidate(ctx, galleryPrefix)
	return found, nil
}

type NewsRepository struct {
	next  news.Repository
	cache *basecache.Store
}

func NewNewsRepository(next news.Repository, cache *basecache.Store) *NewsRepository {
	return &NewsRepository{next: next, cache: cache}
}

func (r *NewsRepository) List(ctx context.Context, limit int) ([]news.Item, error) {
	return cachedList(ctx, r.cache, newsPrefix+"list:"+strconv.Itoa(limit), func(ctx context.Context) ([]news.Item, error) {
		return r.next.List(ctx, limit)
	})
}

func (r *NewsRepository) Create(ctx context.Context, item news.Item) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, newsPrefix)
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.cache.Invalidate(ctx, newsPrefix)
	return found, nil
}

type AlertRepository struct {
	next  alert.Repository
	cache *basecache.Store
}

func NewAlertRepository(next alert.Repository, cache *basecache.Store) *AlertRepository {
	return &AlertRepository{next: next, cache: cache}
}

func (r *AlertRepository) ListActive(ctx context.Context) ([]alert.Alert, error) {
	return cachedList(ctx, r.cache, alertsPrefix+"active", r.next.ListActive)
}

func (r *AlertRepository) Create(ctx context.Context, a alert.Alert) error {
	if err := r.next.Create(ctx, a); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, alertsPrefix)
	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.cache.Invalidate(ctx, alertsPrefix)
	return found, nil
}

func (r *AlertRepository) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	found, err := r.next.SetActive(ctx, id, active)
	if err != nil {
		return false, err
	}
	r.cache.Invalidate(ctx, alertsPrefix)
	return found, nil
}

type ScoreboardRepository struct {
	next  scoreboard.Repository
	cache *basecache.Store
}

func NewScoreboardRepository(next scoreboard.Repository, cache *basecache.Store) *ScoreboardRepository {
	return &ScoreboardRepository{next: next, cache: cache}
}

func (r *ScoreboardRepository) List(ctx context.Context, limit int) ([]scoreboard.Update, error) {
	return cachedList(ctx, r.cache, scoreboardPrefix+"list:"+strconv.Itoa(limit), func(ctx context.Context) ([]scoreboard.Update, error) {
		return r.next.List(ctx, limit)
	})
}

func (r *ScoreboardRepository) Create(ctx context.Context, u scoreboard.Update) error {
	if err := r.next.Create(ctx, u); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, scoreboardPrefix)
	return nil
}

func (r *ScoreboardRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.cache.Invalidate(ctx, scoreboardPrefix)
	return found, nil
}
