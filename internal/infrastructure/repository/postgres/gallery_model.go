package postgres

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/gallery"
)

var galleryColumns = []string{"id", "image_url", "alt_text", "show_on_homepage", "created_at"}

type galleryTableModel struct {
	ID             string    `db:"id"`
	ImageURL       string    `db:"image_url"`
	AltText        string    `db:"alt_text"`
	ShowOnHomepage bool      `db:"show_on_homepage"`
	CreatedAt      time.Time `db:"created_at"`
}

func galleryFromRow(row galleryTableModel) gallery.Image {
	return gallery.Image{
		ID:             row.ID,
		ImageURL:       row.ImageURL,
		AltText:        row.AltText,
		ShowOnHomepage: row.ShowOnHomepage,
		CreatedAt:      row.CreatedAt,
	}
}
