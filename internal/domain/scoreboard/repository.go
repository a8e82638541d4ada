package scoreboard

import "context"

type Repository interface {
	// List returns newest first.
	List(ctx context.Context, limit int) ([]Update, error)
	Create(ctx context.Context, u Update) error
	Delete(ctx context.Context, id string) (bool, error)
}
