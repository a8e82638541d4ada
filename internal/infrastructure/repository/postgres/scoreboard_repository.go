package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type ScoreboardRepository struct {
	db *sqlx.DB
}

func NewScoreboardRepository(db *sqlx.DB) *ScoreboardRepository {
	return &ScoreboardRepository{db: db}
}

func (r *ScoreboardRepository) List(ctx context.Context, limit int) ([]scoreboard.Update, error) {
	query, args, err := qb.Select(scoreboardColumns...).From("scoreboard_updates").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scoreboard query: %w", err)
	}

	var rows []scoreboardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scoreboard updates: %w", err)
	}

	out := make([]scoreboard.Update, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoreboard.Update{ID: row.ID, Message: row.Message, CreatedAt: row.CreatedAt})
	}
	return out, nil
}

func (r *ScoreboardRepository) Create(ctx context.Context, u scoreboard.Update) error {
	query, args, err := qb.InsertModel("scoreboard_updates", scoreboardTableModel{
		ID:        u.ID,
		Message:   u.Message,
		CreatedAt: u.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert scoreboard query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert scoreboard update: %w", err)
	}
	return nil
}

func (r *ScoreboardRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "scoreboard_updates", id)
}
