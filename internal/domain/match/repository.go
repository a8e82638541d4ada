package match

import "context"

type Repository interface {
	// List orders by match date then match time, earliest first.
	List(ctx context.Context) ([]Match, error)
	Create(ctx context.Context, m Match) error
	Delete(ctx context.Context, id string) (bool, error)
}
