package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/media"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

var orphanColumns = []string{"id", "object_key", "reason", "attempts", "last_error", "created_at", "updated_at"}

type storageOrphanTableModel struct {
	ID        string    `db:"id"`
	ObjectKey string    `db:"object_key"`
	Reason    string    `db:"reason"`
	Attempts  int       `db:"attempts"`
	LastError string    `db:"last_error"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type StorageOrphanRepository struct {
	db *sqlx.DB
}

func NewStorageOrphanRepository(db *sqlx.DB) *StorageOrphanRepository {
	return &StorageOrphanRepository{db: db}
}

func (r *StorageOrphanRepository) Record(ctx context.Context, o media.Orphan) error {
	query, args, err := qb.InsertModel("storage_orphans", storageOrphanTableModel(o)).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert storage orphan query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert storage orphan key=%s: %w", o.ObjectKey, err)
	}
	return nil
}

func (r *StorageOrphanRepository) ListPending(ctx context.Context, limit int) ([]media.Orphan, error) {
	query, args, err := qb.Select(orphanColumns...).From("storage_orphans").
		OrderBy("created_at ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select storage orphans query: %w", err)
	}

	var rows []storageOrphanTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select storage orphans: %w", err)
	}

	out := make([]media.Orphan, 0, len(rows))
	for _, row := range rows {
		out = append(out, media.Orphan(row))
	}
	return out, nil
}

// Resolve drops the orphan once its object is gone.
func (r *StorageOrphanRepository) Resolve(ctx context.Context, id string) error {
	if _, err := deleteByID(ctx, r.db, "storage_orphans", id); err != nil {
		return err
	}
	return nil
}

func (r *StorageOrphanRepository) MarkFailed(ctx context.Context, id, lastError string) error {
	if !validID(id) {
		return nil
	}
	query, args, err := qb.Update("storage_orphans").
		SetExpr("attempts", "attempts + 1").
		Set("last_error", lastError).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark storage orphan failed query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark storage orphan failed id=%s: %w", id, err)
	}
	return nil
}
