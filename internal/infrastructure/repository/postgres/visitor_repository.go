package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

var visitorColumns = []string{
	"id", "session_id", "page", "referrer", "user_agent", "state", "city", "country", "device_type", "created_at",
}

type visitorLogTableModel struct {
	ID         string         `db:"id"`
	SessionID  sql.NullString `db:"session_id"`
	Page       string         `db:"page"`
	Referrer   sql.NullString `db:"referrer"`
	UserAgent  string         `db:"user_agent"`
	State      string         `db:"state"`
	City       string         `db:"city"`
	Country    string         `db:"country"`
	DeviceType string         `db:"device_type"`
	CreatedAt  time.Time      `db:"created_at"`
}

type VisitorRepository struct {
	db *sqlx.DB
}

func NewVisitorRepository(db *sqlx.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Create(ctx context.Context, l visitor.Log) error {
	query, args, err := qb.InsertModel("visitor_logs", visitorLogTableModel{
		ID:         l.ID,
		SessionID:  nullableString(l.SessionID),
		Page:       l.Page,
		Referrer:   nullableString(l.Referrer),
		UserAgent:  l.UserAgent,
		State:      l.State,
		City:       l.City,
		Country:    l.Country,
		DeviceType: string(l.DeviceType),
		CreatedAt:  l.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert visitor log query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isSessionConflict(err) {
			return visitor.ErrSessionRecorded
		}
		return fmt.Errorf("insert visitor log: %w", err)
	}
	return nil
}

const visitorSessionIndex = "uq_visitor_logs_session_id"

func isSessionConflict(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == visitorSessionIndex
}

func (r *VisitorRepository) ListRecent(ctx context.Context, limit int) ([]visitor.Log, error) {
	query, args, err := qb.Select(visitorColumns...).From("visitor_logs").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select visitor logs query: %w", err)
	}

	var rows []visitorLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select visitor logs: %w", err)
	}

	out := make([]visitor.Log, 0, len(rows))
	for _, row := range rows {
		out = append(out, visitor.Log{
			ID:         row.ID,
			SessionID:  stringPtr(row.SessionID),
			Page:       row.Page,
			Referrer:   stringPtr(row.Referrer),
			UserAgent:  row.UserAgent,
			State:      row.State,
			City:       row.City,
			Country:    row.Country,
			DeviceType: visitor.DeviceType(row.DeviceType),
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}
