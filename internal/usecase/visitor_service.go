package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type TrackVisitInput struct {
	SessionID string
	Page      string
	Referrer  string
	UserAgent string
	ClientIP  string
}

type VisitorService struct {
	repo           visitor.Repository
	locator        visitor.Locator
	ids            idgen.Generator
	logger         *logging.Logger
	defaultCountry string
	now            func() time.Time
}

// NewVisitorService accepts a nil locator, in which case every visit is recorded with the defaults.
func NewVisitorService(
	repo visitor.Repository,
	locator visitor.Locator,
	ids idgen.Generator,
	logger *logging.Logger,
	defaultCountry string,
) *VisitorService {
	if logger == nil {
		logger = logging.Default()
	}
	return &VisitorService{
		repo:           repo,
		locator:        locator,
		ids:            ids,
		logger:         logger,
		defaultCountry: defaultCountry,
		now:            time.Now,
	}
}

// Track records one visit. Geolocation failures degrade to default values and never fail the call.
func (s *VisitorService) Track(ctx context.Context, in TrackVisitInput) (visitor.Log, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VisitorService.Track")
	defer span.End()

	page := strings.TrimSpace(in.Page)
	if page == "" {
		page = "/"
	}
	ua := visitor.TruncateUserAgent(strings.TrimSpace(in.UserAgent))

	entry := visitor.Log{
		SessionID:  visitor.NormalizeSessionID(in.SessionID),
		Page:       page,
		UserAgent:  ua,
		DeviceType: visitor.ClassifyDevice(ua),
		CreatedAt:  s.now().UTC(),
	}
	if ref := strings.TrimSpace(in.Referrer); ref != "" {
		entry.Referrer = &ref
	}

	loc := s.locate(ctx, in.ClientIP)
	entry.State, entry.City, entry.Country = loc.State, loc.City, loc.Country

	id, err := s.ids.NewID()
	if err != nil {
		return visitor.Log{}, fmt.Errorf("generate visitor log id: %w", err)
	}
	entry.ID = id

	if err := s.repo.Create(ctx, entry); err != nil {
		return visitor.Log{}, fmt.Errorf("create visitor log: %w", err)
	}
	return entry, nil
}

func (s *VisitorService) locate(ctx context.Context, ip string) visitor.Location {
	fallback := visitor.Location{State: visitor.Unknown, City: visitor.Unknown, Country: s.defaultCountry}
	if s.locator == nil || strings.TrimSpace(ip) == "" {
		return fallback
	}

	loc, err := s.locator.Locate(ctx, ip)
	if err != nil {
		s.logger.DebugContext(ctx, "visitor geolocation failed", "error", err)
		return fallback
	}
	if strings.TrimSpace(loc.State) == "" {
		loc.State = visitor.Unknown
	}
	if strings.TrimSpace(loc.City) == "" {
		loc.City = visitor.Unknown
	}
	if strings.TrimSpace(loc.Country) == "" {
		loc.Country = visitor.Unknown
	}
	return loc
}
