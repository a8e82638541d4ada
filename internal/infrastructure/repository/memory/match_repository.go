package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-portal/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]match.Match(nil), r.items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchDate != out[j].MatchDate {
			return out[i].MatchDate < out[j].MatchDate
		}
		return out[i].MatchTime < out[j].MatchTime
	})
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, m)
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed bool
	r.items, removed = removeByID(r.items, id, func(m match.Match) string { return m.ID })
	return removed, nil
}
