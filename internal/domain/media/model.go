package media

import (
	"context"
	"io"
	"time"
)

// Object is an upload ready to be written to the object store.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStore persists public media (gallery photos, performer portraits).
type ObjectStore interface {
	// Put stores obj and returns its public URL.
	Put(ctx context.Context, obj Object) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL extracts the object key from a public URL produced by this store.
	// ok is false when the URL does not point into the store's bucket.
	KeyFromURL(publicURL string) (key string, ok bool)
}

// Orphan is a stored object whose row is gone but whose delete failed.
type Orphan struct {
	ID        string
	ObjectKey string
	Reason    string
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}
