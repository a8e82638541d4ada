package news

import (
	"fmt"
	"strings"
	"time"
)

const DefaultCategory = "General"

type Item struct {
	ID        string
	Title     string
	Content   string
	Category  string
	IsPinned  bool
	CreatedAt time.Time
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(i.Content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
