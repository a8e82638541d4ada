package alert

import "context"

type Repository interface {
	// ListActive returns active alerts, newest first.
	ListActive(ctx context.Context) ([]Alert, error)
	Create(ctx context.Context, a Alert) error
	Delete(ctx context.Context, id string) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
}
