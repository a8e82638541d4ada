package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-portal/internal/domain/performer"
)

type PerformerRepository struct {
	mu         sync.RWMutex
	byCategory map[performer.Category]performer.Performer
}

func NewPerformerRepository() *PerformerRepository {
	return &PerformerRepository{byCategory: make(map[performer.Category]performer.Performer)}
}

func (r *PerformerRepository) List(_ context.Context) ([]performer.Performer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]performer.Performer, 0, len(r.byCategory))
	for _, c := range performer.Categories {
		if item, ok := r.byCategory[c]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *PerformerRepository) Upsert(_ context.Context, p performer.Performer) (performer.Performer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byCategory[p.Category]; ok {
		p.ID = existing.ID
	}
	r.byCategory[p.Category] = p
	return p, nil
}
