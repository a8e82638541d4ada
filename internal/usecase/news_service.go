package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/news"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

type AddNewsInput struct {
	Title    string
	Content  string
	Category string
	IsPinned bool
}

type NewsService struct {
	repo  news.Repository
	ids   idgen.Generator
	limit int
	now   func() time.Time
}

func NewNewsService(repo news.Repository, ids idgen.Generator, limit int) *NewsService {
	return &NewsService{repo: repo, ids: ids, limit: limit, now: time.Now}
}

func (s *NewsService) List(ctx context.Context) ([]news.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.List")
	defer span.End()

	items, err := s.repo.List(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

func (s *NewsService) Add(ctx context.Context, in AddNewsInput) (news.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Add")
	defer span.End()

	item := news.Item{
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Category:  strings.TrimSpace(in.Category),
		IsPinned:  in.IsPinned,
		CreatedAt: s.now().UTC(),
	}
	if item.Category == "" {
		item.Category = news.DefaultCategory
	}
	if err := item.Validate(); err != nil {
		return news.Item{}, invalidInput("%s", err.Error())
	}

	id, err := s.ids.NewID()
	if err != nil {
		return news.Item{}, fmt.Errorf("generate news id: %w", err)
	}
	item.ID = id

	if err := s.repo.Create(ctx, item); err != nil {
		return news.Item{}, fmt.Errorf("create news: %w", err)
	}
	return item, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return invalidInput("id is required")
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news %s: %w", id, err)
	}
	return nil
}
