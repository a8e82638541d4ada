package media

import "context"

type OrphanRepository interface {
	Record(ctx context.Context, o Orphan) error
	// ListPending returns the oldest orphans first.
	ListPending(ctx context.Context, limit int) ([]Orphan, error)
	Resolve(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, lastError string) error
}
