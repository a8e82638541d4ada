package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/standing"
)

type UpsertStandingInput struct {
	TeamName string
	Played   int
	Won      int
	Lost     int
	Points   int
}

type StandingService struct {
	repo standing.Repository
	now  func() time.Time
}

func NewStandingService(repo standing.Repository) *StandingService {
	return &StandingService{repo: repo, now: time.Now}
}

func (s *StandingService) List(ctx context.Context) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	return items, nil
}

// Upsert writes the team's row, replacing any previous values for the same team name.
func (s *StandingService) Upsert(ctx context.Context, in UpsertStandingInput) (standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Upsert")
	defer span.End()

	row := standing.Standing{
		TeamName:  strings.TrimSpace(in.TeamName),
		Played:    in.Played,
		Won:       in.Won,
		Lost:      in.Lost,
		Points:    in.Points,
		UpdatedAt: s.now().UTC(),
	}
	if err := row.Validate(); err != nil {
		return standing.Standing{}, invalidInput("%s", err.Error())
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		return standing.Standing{}, fmt.Errorf("upsert standing %s: %w", row.TeamName, err)
	}
	return row, nil
}
