package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context, limit int) ([]news.Item, error) {
	query, args, err := qb.Select(newsColumns...).From("news").
		OrderBy("is_pinned DESC", "created_at DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select news query: %w", err)
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select news: %w", err)
	}

	out := make([]news.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, newsFromRow(row))
	}
	return out, nil
}

func (r *NewsRepository) Create(ctx context.Context, item news.Item) error {
	query, args, err := qb.InsertModel("news", newsTableModel{
		ID:        item.ID,
		Title:     item.Title,
		Content:   item.Content,
		Category:  item.Category,
		IsPinned:  item.IsPinned,
		CreatedAt: item.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert news query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "news", id)
}
