package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

type ScoreboardService struct {
	repo  scoreboard.Repository
	ids   idgen.Generator
	limit int
	now   func() time.Time
}

func NewScoreboardService(repo scoreboard.Repository, ids idgen.Generator, limit int) *ScoreboardService {
	return &ScoreboardService{repo: repo, ids: ids, limit: limit, now: time.Now}
}

func (s *ScoreboardService) List(ctx context.Context) ([]scoreboard.Update, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.List")
	defer span.End()

	items, err := s.repo.List(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list scoreboard updates: %w", err)
	}
	return items, nil
}

func (s *ScoreboardService) Add(ctx context.Context, message string) (scoreboard.Update, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.Add")
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return scoreboard.Update{}, invalidInput("message is required")
	}
	id, err := s.ids.NewID()
	if err != nil {
		return scoreboard.Update{}, fmt.Errorf("generate scoreboard id: %w", err)
	}
	item := scoreboard.Update{ID: id, Message: message, CreatedAt: s.now().UTC()}
	if err := s.repo.Create(ctx, item); err != nil {
		return scoreboard.Update{}, fmt.Errorf("create scoreboard update: %w", err)
	}
	return item, nil
}

func (s *ScoreboardService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return invalidInput("id is required")
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete scoreboard update %s: %w", id, err)
	}
	return nil
}
