package performer

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryOrange Category = "orange"
	CategoryPurple Category = "purple"
	CategoryMVP    Category = "mvp"
)

// Categories lists the award slots in display order.
var Categories = []Category{CategoryOrange, CategoryPurple, CategoryMVP}

func (c Category) Valid() bool {
	switch c {
	case CategoryOrange, CategoryPurple, CategoryMVP:
		return true
	}
	return false
}

// DefaultStatLabel is the headline stat shown for a category when none is given.
func (c Category) DefaultStatLabel() string {
	switch c {
	case CategoryPurple:
		return "Wickets"
	case CategoryMVP:
		return "Points"
	default:
		return "Runs"
	}
}

// Performer holds the single current holder of an award category.
type Performer struct {
	ID            string
	Category      Category
	Name          string
	Team          string
	Runs          int
	Wickets       int
	MatchesPlayed int
	MatchesWon    int
	PhotoURL      *string
	StatValue     int
	StatLabel     string
	UpdatedAt     time.Time
}

func (p Performer) Validate() error {
	if !p.Category.Valid() {
		return fmt.Errorf("category must be one of orange, purple, mvp")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("team is required")
	}
	return nil
}
