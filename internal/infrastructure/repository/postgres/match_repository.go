package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("upcoming_matches").
		OrderBy("upcoming_matches.match_date ASC", "match_time ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertModel("upcoming_matches", matchTableModel{
		ID:        m.ID,
		Team1:     m.Team1,
		Team2:     m.Team2,
		MatchDate: m.MatchDate,
		MatchTime: m.MatchTime,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "upcoming_matches", id)
}
