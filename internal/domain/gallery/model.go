package gallery

import "time"

type Image struct {
	ID             string
	ImageURL       string
	AltText        string
	ShowOnHomepage bool
	CreatedAt      time.Time
}
