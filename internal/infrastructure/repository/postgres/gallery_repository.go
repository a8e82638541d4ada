package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/gallery"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type GalleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) List(ctx context.Context, filter gallery.ListFilter) ([]gallery.Image, error) {
	builder := qb.Select(galleryColumns...).From("gallery_images")
	if filter.HomepageOnly {
		builder = builder.Where(qb.IsTrue("show_on_homepage"))
	}
	query, args, err := builder.
		OrderBy("created_at DESC").
		Limit(filter.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select gallery query: %w", err)
	}

	var rows []galleryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select gallery images: %w", err)
	}

	out := make([]gallery.Image, 0, len(rows))
	for _, row := range rows {
		out = append(out, galleryFromRow(row))
	}
	return out, nil
}

func (r *GalleryRepository) Create(ctx context.Context, img gallery.Image) error {
	query, args, err := qb.InsertModel("gallery_images", galleryTableModel{
		ID:             img.ID,
		ImageURL:       img.ImageURL,
		AltText:        img.AltText,
		ShowOnHomepage: img.ShowOnHomepage,
		CreatedAt:      img.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert gallery image query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) (gallery.Image, bool, error) {
	if !validID(id) {
		return gallery.Image{}, false, nil
	}
	query, args, err := qb.DeleteFrom("gallery_images").
		Where(qb.Eq("id", id)).
		Returning(galleryColumns...).
		ToSQL()
	if err != nil {
		return gallery.Image{}, false, fmt.Errorf("build delete gallery image query: %w", err)
	}

	var row galleryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gallery.Image{}, false, nil
		}
		return gallery.Image{}, false, fmt.Errorf("delete gallery image id=%s: %w", id, err)
	}
	return galleryFromRow(row), true, nil
}

func (r *GalleryRepository) SetShowOnHomepage(ctx context.Context, id string, show bool) (bool, error) {
	return setFlag(ctx, r.db, "gallery_images", "show_on_homepage", id, show)
}
