package visitor

import "context"

type Repository interface {
	// Create returns ErrSessionRecorded when log.SessionID is already stored.
	Create(ctx context.Context, log Log) error
	// ListRecent returns at most limit rows, newest first.
	ListRecent(ctx context.Context, limit int) ([]Log, error)
}

// Locator resolves a client IP to a coarse location.
type Locator interface {
	Locate(ctx context.Context, ip string) (Location, error)
}
