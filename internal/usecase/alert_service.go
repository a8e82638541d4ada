package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/alert"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

type AddAlertInput struct {
	Message  string
	Type     string
	IsActive *bool
}

type AlertService struct {
	repo alert.Repository
	ids  idgen.Generator
	now  func() time.Time
}

func NewAlertService(repo alert.Repository, ids idgen.Generator) *AlertService {
	return &AlertService{repo: repo, ids: ids, now: time.Now}
}

// ListActive is the public view; inactive alerts never leave the service.
func (s *AlertService) ListActive(ctx context.Context) ([]alert.Alert, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AlertService.ListActive")
	defer span.End()

	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	out := make([]alert.Alert, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			out = append(out, item)
		}
	}
	return out, nil
}

// Add creates an alert. Type defaults to info and new alerts are active unless told otherwise.
func (s *AlertService) Add(ctx context.Context, in AddAlertInput) (alert.Alert, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AlertService.Add")
	defer span.End()

	item := alert.Alert{
		Message:   strings.TrimSpace(in.Message),
		Type:      alert.Type(strings.ToLower(strings.TrimSpace(in.Type))),
		IsActive:  true,
		CreatedAt: s.now().UTC(),
	}
	if item.Type == "" {
		item.Type = alert.TypeInfo
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if err := item.Validate(); err != nil {
		return alert.Alert{}, invalidInput("%s", err.Error())
	}

	id, err := s.ids.NewID()
	if err != nil {
		return alert.Alert{}, fmt.Errorf("generate alert id: %w", err)
	}
	item.ID = id

	if err := s.repo.Create(ctx, item); err != nil {
		return alert.Alert{}, fmt.Errorf("create alert: %w", err)
	}
	return item, nil
}

func (s *AlertService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AlertService.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return invalidInput("id is required")
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete alert %s: %w", id, err)
	}
	return nil
}

func (s *AlertService) SetActive(ctx context.Context, id string, active bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AlertService.SetActive")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return invalidInput("id is required")
	}
	found, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return fmt.Errorf("update alert %s: %w", id, err)
	}
	if !found {
		return notFound("alert not found")
	}
	return nil
}
