package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/domain/performer"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

const performerPhotoPrefix = "performers/"

// UpsertPerformerInput carries every column of a performer row. Fields left at their
// zero value overwrite what was stored before.
type UpsertPerformerInput struct {
	Category      string
	Name          string
	Team          string
	Runs          int
	Wickets       int
	MatchesPlayed int
	MatchesWon    int
	PhotoURL      string
	StatValue     int
	StatLabel     string
}

type PerformerService struct {
	repo  performer.Repository
	store media.ObjectStore
	ids   idgen.Generator
	now   func() time.Time
}

func NewPerformerService(repo performer.Repository, store media.ObjectStore, ids idgen.Generator) *PerformerService {
	return &PerformerService{
		repo:  repo,
		store: store,
		ids:   ids,
		now:   time.Now,
	}
}

// List returns the current holders in orange, purple, mvp order.
func (s *PerformerService) List(ctx context.Context) ([]performer.Performer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformerService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list performers: %w", err)
	}
	rank := make(map[performer.Category]int, len(performer.Categories))
	for i, c := range performer.Categories {
		rank[c] = i
	}
	sort.SliceStable(items, func(i, j int) bool {
		return rank[items[i].Category] < rank[items[j].Category]
	})
	return items, nil
}

// Upsert replaces the holder of a category with a complete new row.
func (s *PerformerService) Upsert(ctx context.Context, in UpsertPerformerInput) (performer.Performer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformerService.Upsert")
	defer span.End()

	item := performer.Performer{
		Category:      performer.Category(strings.ToLower(strings.TrimSpace(in.Category))),
		Name:          strings.TrimSpace(in.Name),
		Team:          strings.TrimSpace(in.Team),
		Runs:          in.Runs,
		Wickets:       in.Wickets,
		MatchesPlayed: in.MatchesPlayed,
		MatchesWon:    in.MatchesWon,
		StatValue:     in.StatValue,
		StatLabel:     strings.TrimSpace(in.StatLabel),
		UpdatedAt:     s.now().UTC(),
	}
	if photo := strings.TrimSpace(in.PhotoURL); photo != "" {
		item.PhotoURL = &photo
	}
	if err := item.Validate(); err != nil {
		return performer.Performer{}, invalidInput("%s", err.Error())
	}
	if item.StatLabel == "" {
		item.StatLabel = item.Category.DefaultStatLabel()
	}

	id, err := s.ids.NewID()
	if err != nil {
		return performer.Performer{}, fmt.Errorf("generate performer id: %w", err)
	}
	item.ID = id

	stored, err := s.repo.Upsert(ctx, item)
	if err != nil {
		return performer.Performer{}, fmt.Errorf("upsert performer %s: %w", item.Category, err)
	}
	return stored, nil
}

// UploadPhoto stores a portrait under performers/ and returns its public URL.
func (s *PerformerService) UploadPhoto(ctx context.Context, in UploadInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformerService.UploadPhoto")
	defer span.End()

	if err := in.validate(); err != nil {
		return "", err
	}
	return putObject(ctx, s.store, objectKey(performerPhotoPrefix, in.Filename, s.now()), in)
}
