package standing

import (
	"fmt"
	"strings"
	"time"
)

// Standing is one team's row in the league points table. TeamName is the natural key.
type Standing struct {
	TeamName  string
	Played    int
	Won       int
	Lost      int
	Points    int
	UpdatedAt time.Time
}

func (s Standing) Validate() error {
	if strings.TrimSpace(s.TeamName) == "" {
		return fmt.Errorf("team_name is required")
	}
	if s.Played < 0 || s.Won < 0 || s.Lost < 0 {
		return fmt.Errorf("played, won and lost cannot be negative")
	}
	return nil
}
