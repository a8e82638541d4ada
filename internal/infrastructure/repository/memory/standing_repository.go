package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-portal/internal/domain/standing"
)

type StandingRepository struct {
	mu     sync.RWMutex
	byTeam map[string]standing.Standing
}

func NewStandingRepository(seed []standing.Standing) *StandingRepository {
	byTeam := make(map[string]standing.Standing, len(seed))
	for _, item := range seed {
		byTeam[item.TeamName] = item
	}
	return &StandingRepository{byTeam: byTeam}
}

func (r *StandingRepository) List(_ context.Context) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0, len(r.byTeam))
	for _, item := range r.byTeam {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Won != out[j].Won {
			return out[i].Won > out[j].Won
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out, nil
}

func (r *StandingRepository) Upsert(_ context.Context, s standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byTeam[s.TeamName] = s
	return nil
}
