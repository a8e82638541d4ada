package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/domain/registration"
	"github.com/riskibarqy/league-portal/internal/domain/visitor"
)

type VisitorRepository struct {
	mu       sync.RWMutex
	logs     []visitor.Log
	sessions map[string]struct{}
}

func NewVisitorRepository() *VisitorRepository {
	return &VisitorRepository{sessions: make(map[string]struct{})}
}

func (r *VisitorRepository) Create(_ context.Context, l visitor.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.SessionID != nil {
		if _, seen := r.sessions[*l.SessionID]; seen {
			return visitor.ErrSessionRecorded
		}
		r.sessions[*l.SessionID] = struct{}{}
	}
	r.logs = append(r.logs, l)
	return nil
}

func (r *VisitorRepository) ListRecent(_ context.Context, limit int) ([]visitor.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := newestFirst(r.logs, func(l visitor.Log) time.Time { return l.CreatedAt })
	return limitTo(out, limit), nil
}

type RegistrationRepository struct {
	mu   sync.RWMutex
	rows []registration.Registration
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{}
}

func (r *RegistrationRepository) Create(_ context.Context, reg registration.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, reg)
	return nil
}

func (r *RegistrationRepository) ListRecent(_ context.Context, limit int) ([]registration.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := newestFirst(r.rows, func(reg registration.Registration) time.Time { return reg.CreatedAt })
	return limitTo(out, limit), nil
}

type StorageOrphanRepository struct {
	mu      sync.Mutex
	orphans map[string]media.Orphan
	now     func() time.Time
}

func NewStorageOrphanRepository() *StorageOrphanRepository {
	return &StorageOrphanRepository{orphans: make(map[string]media.Orphan), now: time.Now}
}

func (r *StorageOrphanRepository) Record(_ context.Context, o media.Orphan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orphans[o.ID] = o
	return nil
}

func (r *StorageOrphanRepository) ListPending(_ context.Context, limit int) ([]media.Orphan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]media.Orphan, 0, len(r.orphans))
	for _, o := range r.orphans {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return limitTo(out, limit), nil
}

func (r *StorageOrphanRepository) Resolve(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.orphans, id)
	return nil
}

func (r *StorageOrphanRepository) MarkFailed(_ context.Context, id, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orphans[id]
	if !ok {
		return nil
	}
	o.Attempts++
	o.LastError = lastError
	o.UpdatedAt = r.now().UTC()
	r.orphans[id] = o
	return nil
}
