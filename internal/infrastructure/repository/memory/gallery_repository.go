package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/gallery"
)

type GalleryRepository struct {
	mu    sync.RWMutex
	items []gallery.Image
}

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{}
}

func (r *GalleryRepository) List(_ context.Context, filter gallery.ListFilter) ([]gallery.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := newestFirst(r.items, func(img gallery.Image) time.Time { return img.CreatedAt })
	out := make([]gallery.Image, 0, len(sorted))
	for _, img := range sorted {
		if filter.HomepageOnly && !img.ShowOnHomepage {
			continue
		}
		out = append(out, img)
	}
	return limitTo(out, filter.Limit), nil
}

func (r *GalleryRepository) Create(_ context.Context, img gallery.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, img)
	return nil
}

func (r *GalleryRepository) Delete(_ context.Context, id string) (gallery.Image, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, img := range r.items {
		if img.ID == id {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return img, true, nil
		}
	}
	return gallery.Image{}, false, nil
}

func (r *GalleryRepository) SetShowOnHomepage(_ context.Context, id string, show bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].ShowOnHomepage = show
			return true, nil
		}
	}
	return false, nil
}
