package performer

import "context"

type Repository interface {
	List(ctx context.Context) ([]Performer, error)
	// Upsert replaces every column of the row for p.Category atomically and returns the
	// stored row. The id of an existing row is kept.
	Upsert(ctx context.Context, p Performer) (Performer, error)
}
