package news

import "context"

type Repository interface {
	// List returns pinned items first, then newest first.
	List(ctx context.Context, limit int) ([]Item, error)
	Create(ctx context.Context, item Item) error
	Delete(ctx context.Context, id string) (bool, error)
}
