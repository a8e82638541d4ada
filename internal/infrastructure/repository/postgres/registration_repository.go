package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/registration"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

var registrationColumns = []string{
	"id", "name", "dob", "phone", "email", "document_type", "document_number", "player_type", "address", "created_at",
}

type registrationTableModel struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	DOB            string    `db:"dob"`
	Phone          string    `db:"phone"`
	Email          string    `db:"email"`
	DocumentType   string    `db:"document_type"`
	DocumentNumber string    `db:"document_number"`
	PlayerType     string    `db:"player_type"`
	Address        string    `db:"address"`
	CreatedAt      time.Time `db:"created_at"`
}

type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg registration.Registration) error {
	query, args, err := qb.InsertModel("registrations", registrationTableModel(reg)).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert registration query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) ListRecent(ctx context.Context, limit int) ([]registration.Registration, error) {
	query, args, err := qb.Select(registrationColumns...).From("registrations").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select registrations query: %w", err)
	}

	var rows []registrationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select registrations: %w", err)
	}

	out := make([]registration.Registration, 0, len(rows))
	for _, row := range rows {
		out = append(out, registration.Registration(row))
	}
	return out, nil
}
