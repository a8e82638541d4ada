package gallery

import "context"

// ListFilter narrows a gallery listing. Limit <= 0 means no limit.
type ListFilter struct {
	HomepageOnly bool
	Limit        int
}

type Repository interface {
	// List returns newest first.
	List(ctx context.Context, filter ListFilter) ([]Image, error)
	Create(ctx context.Context, img Image) error
	// Delete removes the row and returns it so callers can clean up the stored object.
	Delete(ctx context.Context, id string) (Image, bool, error)
	SetShowOnHomepage(ctx context.Context, id string, show bool) (bool, error)
}
