package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

type AddMatchInput struct {
	Team1     string
	Team2     string
	MatchDate string
	MatchTime string
	Location  string
}

type MatchService struct {
	repo         match.Repository
	ids          idgen.Generator
	defaultVenue string
	now          func() time.Time
}

func NewMatchService(repo match.Repository, ids idgen.Generator, defaultVenue string) *MatchService {
	return &MatchService{
		repo:         repo,
		ids:          ids,
		defaultVenue: defaultVenue,
		now:          time.Now,
	}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// Add schedules a match. An empty location falls back to the home venue.
func (s *MatchService) Add(ctx context.Context, in AddMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Add")
	defer span.End()

	item := match.Match{
		Team1:     strings.TrimSpace(in.Team1),
		Team2:     strings.TrimSpace(in.Team2),
		MatchDate: strings.TrimSpace(in.MatchDate),
		MatchTime: strings.TrimSpace(in.MatchTime),
		Location:  strings.TrimSpace(in.Location),
		CreatedAt: s.now().UTC(),
	}
	if item.Location == "" {
		item.Location = s.defaultVenue
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, invalidInput("%s", err.Error())
	}

	id, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	item.ID = id

	if err := s.repo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return item, nil
}

// Delete is idempotent: removing an unknown id succeeds.
func (s *MatchService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return invalidInput("id is required")
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete match %s: %w", id, err)
	}
	return nil
}
