package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/alert"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type AlertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) ListActive(ctx context.Context) ([]alert.Alert, error) {
	query, args, err := qb.Select(alertColumns...).From("alerts").
		Where(qb.IsTrue("is_active")).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active alerts query: %w", err)
	}

	var rows []alertTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active alerts: %w", err)
	}

	out := make([]alert.Alert, 0, len(rows))
	for _, row := range rows {
		out = append(out, alertFromRow(row))
	}
	return out, nil
}

func (r *AlertRepository) Create(ctx context.Context, a alert.Alert) error {
	query, args, err := qb.InsertModel("alerts", alertTableModel{
		ID:        a.ID,
		Message:   a.Message,
		AlertType: string(a.Type),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert alert query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "alerts", id)
}

func (r *AlertRepository) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	return setFlag(ctx, r.db, "alerts", "is_active", id, active)
}
