package memory

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/infrastructure/objectstore"
)

const defaultBaseURL = "http://objects.local"

// Store keeps objects in memory. It backs local runs and handler tests.
type Store struct {
	mu        sync.RWMutex
	bucket    string
	baseURL   string
	objects   map[string][]byte
	deleteErr error
}

func NewStore(bucket, baseURL string) *Store {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Store{bucket: bucket, baseURL: baseURL, objects: make(map[string][]byte)}
}

func (s *Store) Put(_ context.Context, obj media.Object) (string, error) {
	if obj.Body == nil {
		return "", fmt.Errorf("object body is required")
	}
	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return "", fmt.Errorf("read object %s: %w", obj.Key, err)
	}

	s.mu.Lock()
	s.objects[obj.Key] = data
	s.mu.Unlock()
	return objectstore.PublicURL(s.baseURL, s.bucket, obj.Key), nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	return nil
}

func (s *Store) KeyFromURL(publicURL string) (string, bool) {
	return objectstore.KeyFromURL(publicURL, s.bucket)
}

// Has reports whether key is stored.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// FailDeletes makes every Delete return err until called again with nil.
func (s *Store) FailDeletes(err error) {
	s.mu.Lock()
	s.deleteErr = err
	s.mu.Unlock()
}
