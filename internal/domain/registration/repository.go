package registration

import "context"

type Repository interface {
	Create(ctx context.Context, r Registration) error
	ListRecent(ctx context.Context, limit int) ([]Registration, error)
}
