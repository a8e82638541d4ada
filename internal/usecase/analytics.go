package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/visitor"
)

const (
	topStatesLimit    = 8
	topCountriesLimit = 5
	trailingDays      = 7
)

// Count is one row of a frequency table.
type Count struct {
	Key   string
	Count int
}

// DayCount is the number of visits on one local calendar day.
type DayCount struct {
	Date  string
	Count int
}

type AnalyticsSummary struct {
	Total     int
	Today     int
	States    []Count
	Devices   []Count
	Countries []Count
	LastDays  []DayCount
}

type Analytics struct {
	Logs    []visitor.Log
	Summary AnalyticsSummary
}

type AnalyticsService struct {
	repo  visitor.Repository
	limit int
	loc   *time.Location
	now   func() time.Time
}

func NewAnalyticsService(repo visitor.Repository, limit int, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{repo: repo, limit: limit, loc: loc, now: time.Now}
}

// Get loads the newest visits and summarises them.
func (s *AnalyticsService) Get(ctx context.Context) (Analytics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Get")
	defer span.End()

	logs, err := s.repo.ListRecent(ctx, s.limit)
	if err != nil {
		return Analytics{}, fmt.Errorf("list visitor logs: %w", err)
	}
	return Analytics{
		Logs:    logs,
		Summary: Summarize(logs, s.now(), s.loc),
	}, nil
}

// Summarize aggregates visits relative to now in loc. Frequency tables are ordered by
// count desc then key asc; the day series always has seven entries ending today.
func Summarize(logs []visitor.Log, now time.Time, loc *time.Location) AnalyticsSummary {
	if loc == nil {
		loc = time.UTC
	}
	today := now.In(loc).Format(time.DateOnly)

	states := map[string]int{}
	devices := map[string]int{}
	countries := map[string]int{}
	perDay := map[string]int{}
	out := AnalyticsSummary{Total: len(logs)}

	for _, l := range logs {
		day := l.CreatedAt.In(loc).Format(time.DateOnly)
		if day == today {
			out.Today++
		}
		perDay[day]++
		states[orUnknown(l.State)]++
		devices[orUnknown(string(l.DeviceType))]++
		countries[orUnknown(l.Country)]++
	}

	out.States = topCounts(states, topStatesLimit)
	out.Devices = topCounts(devices, 0)
	out.Countries = topCounts(countries, topCountriesLimit)

	// Walk calendar dates, not 24h steps, so a DST change cannot skip a day.
	y, m, d := now.In(loc).Date()
	out.LastDays = make([]DayCount, 0, trailingDays)
	for i := trailingDays - 1; i >= 0; i-- {
		date := time.Date(y, m, d-i, 12, 0, 0, 0, loc).Format(time.DateOnly)
		out.LastDays = append(out.LastDays, DayCount{Date: date, Count: perDay[date]})
	}
	return out
}

func topCounts(freq map[string]int, limit int) []Count {
	out := make([]Count, 0, len(freq))
	for k, v := range freq {
		out = append(out, Count{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return visitor.Unknown
	}
	return v
}
