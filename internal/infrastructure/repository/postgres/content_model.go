package postgres

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/alert"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
)

var (
	newsColumns       = []string{"id", "title", "content", "category", "is_pinned", "created_at"}
	alertColumns      = []string{"id", "message", "alert_type", "is_active", "created_at"}
	scoreboardColumns = []string{"id", "message", "created_at"}
)

type newsTableModel struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Category  string    `db:"category"`
	IsPinned  bool      `db:"is_pinned"`
	CreatedAt time.Time `db:"created_at"`
}

func newsFromRow(row newsTableModel) news.Item {
	return news.Item{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Category:  row.Category,
		IsPinned:  row.IsPinned,
		CreatedAt: row.CreatedAt,
	}
}

type alertTableModel struct {
	ID        string    `db:"id"`
	Message   string    `db:"message"`
	AlertType string    `db:"alert_type"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

func alertFromRow(row alertTableModel) alert.Alert {
	return alert.Alert{
		ID:        row.ID,
		Message:   row.Message,
		Type:      alert.Type(row.AlertType),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

type scoreboardTableModel struct {
	ID        string    `db:"id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
