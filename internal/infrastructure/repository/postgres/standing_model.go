package postgres

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/standing"
)

var standingColumns = []string{"team_name", "played", "won", "lost", "points", "updated_at"}

type standingTableModel struct {
	TeamName  string    `db:"team_name"`
	Played    int       `db:"played"`
	Won       int       `db:"won"`
	Lost      int       `db:"lost"`
	Points    int       `db:"points"`
	UpdatedAt time.Time `db:"updated_at"`
}

func standingFromRow(row standingTableModel) standing.Standing {
	return standing.Standing{
		TeamName:  row.TeamName,
		Played:    row.Played,
		Won:       row.Won,
		Lost:      row.Lost,
		Points:    row.Points,
		UpdatedAt: row.UpdatedAt,
	}
}
