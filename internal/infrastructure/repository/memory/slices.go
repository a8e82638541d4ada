package memory

import (
	"sort"
	"time"
)

// removeByID drops the first element whose id matches, preserving order.
func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}

// newestFirst returns a sorted copy of items by created time, most recent first.
func newestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}

func limitTo[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
