package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/alert"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
)

type NewsRepository struct {
	mu    sync.RWMutex
	items []news.Item
}

func NewNewsRepository() *NewsRepository {
	return &NewsRepository{}
}

func (r *NewsRepository) List(_ context.Context, limit int) ([]news.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := newestFirst(r.items, func(n news.Item) time.Time { return n.CreatedAt })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPinned && !out[j].IsPinned
	})
	return limitTo(out, limit), nil
}

func (r *NewsRepository) Create(_ context.Context, item news.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

func (r *NewsRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed bool
	r.items, removed = removeByID(r.items, id, func(n news.Item) string { return n.ID })
	return removed, nil
}

type AlertRepository struct {
	mu    sync.RWMutex
	items []alert.Alert
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

func (r *AlertRepository) ListActive(_ context.Context) ([]alert.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := newestFirst(r.items, func(a alert.Alert) time.Time { return a.CreatedAt })
	out := make([]alert.Alert, 0, len(sorted))
	for _, a := range sorted {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AlertRepository) Create(_ context.Context, a alert.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, a)
	return nil
}

func (r *AlertRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed bool
	r.items, removed = removeByID(r.items, id, func(a alert.Alert) string { return a.ID })
	return removed, nil
}

func (r *AlertRepository) SetActive(_ context.Context, id string, active bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].IsActive = active
			return true, nil
		}
	}
	return false, nil
}

type ScoreboardRepository struct {
	mu    sync.RWMutex
	items []scoreboard.Update
}

func NewScoreboardRepository() *ScoreboardRepository {
	return &ScoreboardRepository{}
}

func (r *ScoreboardRepository) List(_ context.Context, limit int) ([]scoreboard.Update, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := newestFirst(r.items, func(u scoreboard.Update) time.Time { return u.CreatedAt })
	return limitTo(out, limit), nil
}

func (r *ScoreboardRepository) Create(_ context.Context, u scoreboard.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, u)
	return nil
}

func (r *ScoreboardRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed bool
	r.items, removed = removeByID(r.items, id, func(u scoreboard.Update) string { return u.ID })
	return removed, nil
}
