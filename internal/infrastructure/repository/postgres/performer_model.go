package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/performer"
)

var performerColumns = []string{
	"id", "category", "name", "team", "runs", "wickets", "matches_played", "matches_won",
	"photo_url", "stat_value", "stat_label", "updated_at",
}

type performerTableModel struct {
	ID            string         `db:"id"`
	Category      string         `db:"category"`
	Name          string         `db:"name"`
	Team          string         `db:"team"`
	Runs          int            `db:"runs"`
	Wickets       int            `db:"wickets"`
	MatchesPlayed int            `db:"matches_played"`
	MatchesWon    int            `db:"matches_won"`
	PhotoURL      sql.NullString `db:"photo_url"`
	StatValue     int            `db:"stat_value"`
	StatLabel     string         `db:"stat_label"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func performerToRow(p performer.Performer) performerTableModel {
	return performerTableModel{
		ID:            p.ID,
		Category:      string(p.Category),
		Name:          p.Name,
		Team:          p.Team,
		Runs:          p.Runs,
		Wickets:       p.Wickets,
		MatchesPlayed: p.MatchesPlayed,
		MatchesWon:    p.MatchesWon,
		PhotoURL:      nullableString(p.PhotoURL),
		StatValue:     p.StatValue,
		StatLabel:     p.StatLabel,
		UpdatedAt:     p.UpdatedAt,
	}
}

func performerFromRow(row performerTableModel) performer.Performer {
	return performer.Performer{
		ID:            row.ID,
		Category:      performer.Category(row.Category),
		Name:          row.Name,
		Team:          row.Team,
		Runs:          row.Runs,
		Wickets:       row.Wickets,
		MatchesPlayed: row.MatchesPlayed,
		MatchesWon:    row.MatchesWon,
		PhotoURL:      stringPtr(row.PhotoURL),
		StatValue:     row.StatValue,
		StatLabel:     row.StatLabel,
		UpdatedAt:     row.UpdatedAt,
	}
}
