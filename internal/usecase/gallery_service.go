package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/gallery"
	"github.com/riskibarqy/league-portal/internal/domain/media"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type UploadGalleryInput struct {
	File           UploadInput
	AltText        string
	ShowOnHomepage bool
}

type DeleteGalleryInput struct {
	ID       string
	ImageURL string
}

// DeleteGalleryResult reports what happened to the stored object after the row was removed.
type DeleteGalleryResult struct {
	ObjectKey      string
	ObjectDeleted  bool
	OrphanRecorded bool
}

type GalleryService struct {
	repo          gallery.Repository
	store         media.ObjectStore
	orphans       media.OrphanRepository
	ids           idgen.Generator
	logger        *logging.Logger
	homepageLimit int
	now           func() time.Time
}

func NewGalleryService(
	repo gallery.Repository,
	store media.ObjectStore,
	orphans media.OrphanRepository,
	ids idgen.Generator,
	logger *logging.Logger,
	homepageLimit int,
) *GalleryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GalleryService{
		repo:          repo,
		store:         store,
		orphans:       orphans,
		ids:           ids,
		logger:        logger,
		homepageLimit: homepageLimit,
		now:           time.Now,
	}
}

// List returns the whole gallery newest first, or only the capped homepage selection.
func (s *GalleryService) List(ctx context.Context, homepageOnly bool) ([]gallery.Image, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.List")
	defer span.End()

	filter := gallery.ListFilter{HomepageOnly: homepageOnly}
	if homepageOnly {
		filter.Limit = s.homepageLimit
	}
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return items, nil
}

// Upload stores the file then inserts the row. A failed insert leaves the object behind
// and records it for the sweeper.
func (s *GalleryService) Upload(ctx context.Context, in UploadGalleryInput) (gallery.Image, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.Upload")
	defer span.End()

	if err := in.File.validate(); err != nil {
		return gallery.Image{}, err
	}

	now := s.now()
	key := objectKey("", in.File.Filename, now)
	url, err := putObject(ctx, s.store, key, in.File)
	if err != nil {
		return gallery.Image{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return gallery.Image{}, fmt.Errorf("generate gallery id: %w", err)
	}
	img := gallery.Image{
		ID:             id,
		ImageURL:       url,
		AltText:        strings.TrimSpace(in.AltText),
		ShowOnHomepage: in.ShowOnHomepage,
		CreatedAt:      now.UTC(),
	}
	if err := s.repo.Create(ctx, img); err != nil {
		s.recordOrphan(ctx, key, "gallery insert failed", err)
		return gallery.Image{}, fmt.Errorf("create gallery image: %w", err)
	}
	return img, nil
}

// Delete removes the row first, then the stored object on a best-effort basis.
// A URL outside the bucket skips object deletion; an object delete failure is queued
// for the sweeper and does not fail the call.
func (s *GalleryService) Delete(ctx context.Context, in DeleteGalleryInput) (DeleteGalleryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.Delete")
	defer span.End()

	id := strings.TrimSpace(in.ID)
	if id == "" {
		return DeleteGalleryResult{}, invalidInput("id is required")
	}

	deleted, found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return DeleteGalleryResult{}, fmt.Errorf("delete gallery image %s: %w", id, err)
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" && found {
		imageURL = deleted.ImageURL
	}
	key, ok := s.store.KeyFromURL(imageURL)
	if !ok {
		s.logger.InfoContext(ctx, "gallery object delete skipped", "id", id, "image_url", imageURL)
		return DeleteGalleryResult{}, nil
	}

	result := DeleteGalleryResult{ObjectKey: key}
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "gallery object delete failed", "id", id, "object_key", key, "error", err)
		result.OrphanRecorded = s.recordOrphan(ctx, key, "gallery delete failed", err)
		return result, nil
	}
	result.ObjectDeleted = true
	return result, nil
}

func (s *GalleryService) SetShowOnHomepage(ctx context.Context, id string, show bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.SetShowOnHomepage")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return invalidInput("id is required")
	}
	found, err := s.repo.SetShowOnHomepage(ctx, id, show)
	if err != nil {
		return fmt.Errorf("update gallery image %s: %w", id, err)
	}
	if !found {
		return notFound("gallery image not found")
	}
	return nil
}

func (s *GalleryService) recordOrphan(ctx context.Context, key, reason string, cause error) bool {
	if s.orphans == nil {
		return false
	}
	id, err := s.ids.NewID()
	if err != nil {
		s.logger.ErrorContext(ctx, "generate orphan id failed", "object_key", key, "error", err)
		return false
	}
	now := s.now().UTC()
	err = s.orphans.Record(ctx, media.Orphan{
		ID:        id,
		ObjectKey: key,
		Reason:    reason,
		LastError: cause.Error(),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "record storage orphan failed", "object_key", key, "error", err)
		return false
	}
	return true
}
