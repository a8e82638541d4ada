package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) List(ctx context.Context) ([]standing.Standing, error) {
	query, args, err := qb.Select(standingColumns...).From("points_table").
		OrderBy("points DESC", "won DESC", "team_name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingFromRow(row))
	}
	return out, nil
}

func (r *StandingRepository) Upsert(ctx context.Context, s standing.Standing) error {
	query, args, err := qb.InsertModel("points_table", standingTableModel{
		TeamName:  s.TeamName,
		Played:    s.Played,
		Won:       s.Won,
		Lost:      s.Lost,
		Points:    s.Points,
		UpdatedAt: s.UpdatedAt,
	}).
		OnConflictUpdate("team_name").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert standing query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert standing team=%s: %w", s.TeamName, err)
	}
	return nil
}
