package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/performer"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type PerformerRepository struct {
	db *sqlx.DB
}

func NewPerformerRepository(db *sqlx.DB) *PerformerRepository {
	return &PerformerRepository{db: db}
}

func (r *PerformerRepository) List(ctx context.Context) ([]performer.Performer, error) {
	query, args, err := qb.Select(performerColumns...).From("top_performers").
		OrderBy("category").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select performers query: %w", err)
	}

	var rows []performerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select performers: %w", err)
	}

	out := make([]performer.Performer, 0, len(rows))
	for _, row := range rows {
		out = append(out, performerFromRow(row))
	}
	return out, nil
}

// Upsert relies on the UNIQUE (category) constraint so two writers cannot create two rows.
func (r *PerformerRepository) Upsert(ctx context.Context, p performer.Performer) (performer.Performer, error) {
	query, args, err := qb.InsertModel("top_performers", performerToRow(p)).
		OnConflictUpdate("category").
		Preserve("id").
		Returning(performerColumns...).
		ToSQL()
	if err != nil {
		return performer.Performer{}, fmt.Errorf("build upsert performer query: %w", err)
	}

	var row performerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return performer.Performer{}, fmt.Errorf("upsert performer category=%s: %w", p.Category, err)
	}
	return performerFromRow(row), nil
}
