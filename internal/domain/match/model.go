package match

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Match is a scheduled fixture. MatchDate is YYYY-MM-DD and MatchTime is free text ("7:00 PM").
type Match struct {
	ID        string
	Team1     string
	Team2     string
	MatchDate string
	MatchTime string
	Location  string
	CreatedAt time.Time
}

func (m Match) Validate() error {
	switch {
	case strings.TrimSpace(m.Team1) == "":
		return fmt.Errorf("team1 is required")
	case strings.TrimSpace(m.Team2) == "":
		return fmt.Errorf("team2 is required")
	case strings.TrimSpace(m.MatchDate) == "":
		return fmt.Errorf("match_date is required")
	case !datePattern.MatchString(m.MatchDate):
		return fmt.Errorf("match_date must be YYYY-MM-DD")
	case strings.TrimSpace(m.MatchTime) == "":
		return fmt.Errorf("match_time is required")
	}
	return nil
}
