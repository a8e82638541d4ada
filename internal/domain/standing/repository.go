package standing

import "context"

type Repository interface {
	// List orders by points desc, won desc, team name asc.
	List(ctx context.Context) ([]Standing, error)
	// Upsert inserts or overwrites the row keyed by TeamName in one statement.
	Upsert(ctx context.Context, s Standing) error
}
