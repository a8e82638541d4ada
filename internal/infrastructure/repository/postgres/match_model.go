package postgres

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/match"
)

// match_date is a DATE column; it is read back as text so the domain keeps YYYY-MM-DD.
var matchColumns = []string{
	"id", "team1", "team2",
	"to_char(match_date, 'YYYY-MM-DD') AS match_date",
	"match_time", "location", "created_at",
}

type matchTableModel struct {
	ID        string    `db:"id"`
	Team1     string    `db:"team1"`
	Team2     string    `db:"team2"`
	MatchDate string    `db:"match_date"`
	MatchTime string    `db:"match_time"`
	Location  string    `db:"location"`
	CreatedAt time.Time `db:"created_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:        row.ID,
		Team1:     row.Team1,
		Team2:     row.Team2,
		MatchDate: row.MatchDate,
		MatchTime: row.MatchTime,
		Location:  row.Location,
		CreatedAt: row.CreatedAt,
	}
}
