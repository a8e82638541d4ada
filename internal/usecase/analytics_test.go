package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	visitormock "github.com/riskibarqy/league-portal/internal/mocks/domain/visitor"
	"github.com/stretchr/testify/mock"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func TestSummarize_TodayAndLastDaysUseLocalCalendar(t *testing.T) {
	t.Parallel()

	loc := mustLocation(t, "Asia/Kolkata")
	// 01:30 on 2026-03-11 in Kolkata.
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	logs := []visitor.Log{
		{State: "Bihar", Country: "India", DeviceType: visitor.DeviceMobile, CreatedAt: time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)},
		{State: "Bihar", Country: "India", DeviceType: visitor.DeviceDesktop, CreatedAt: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)},
		{State: "Delhi", Country: "India", DeviceType: visitor.DeviceMobile, CreatedAt: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)},
	}

	got := Summarize(logs, now, loc)

	if got.Total != 3 {
		t.Fatalf("unexpected total: %d", got.Total)
	}
	if got.Today != 1 {
		t.Fatalf("unexpected today count: %d", got.Today)
	}
	if len(got.LastDays) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got.LastDays))
	}
	if got.LastDays[0].Date != "2026-03-05" || got.LastDays[6].Date != "2026-03-11" {
		t.Fatalf("unexpected day window: %s..%s", got.LastDays[0].Date, got.LastDays[6].Date)
	}
	if got.LastDays[6].Count != 1 || got.LastDays[5].Count != 1 {
		t.Fatalf("unexpected daily counts: %+v", got.LastDays)
	}
	for _, d := range got.LastDays {
		if d.Date == "2026-03-04" {
			t.Fatalf("visit outside the window must not appear: %+v", got.LastDays)
		}
	}
}

func TestSummarize_OrdersByCountThenKey(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var logs []visitor.Log
	add := func(state string, n int) {
		for i := 0; i < n; i++ {
			logs = append(logs, visitor.Log{State: state, Country: "India", DeviceType: visitor.DeviceDesktop, CreatedAt: now})
		}
	}
	add("Delhi", 1)
	add("Bihar", 3)
	add("Assam", 1)
	add("", 2)

	got := Summarize(logs, now, time.UTC)
	want := []Count{{"Bihar", 3}, {"Unknown", 2}, {"Assam", 1}, {"Delhi", 1}}
	if len(got.States) != len(want) {
		t.Fatalf("unexpected states: %+v", got.States)
	}
	for i := range want {
		if got.States[i] != want[i] {
			t.Fatalf("states[%d] = %+v, want %+v", i, got.States[i], want[i])
		}
	}
}

func TestSummarize_CapsStatesAndCountries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var logs []visitor.Log
	for i := 0; i < 12; i++ {
		logs = append(logs, visitor.Log{
			State:      fmt.Sprintf("State %02d", i),
			Country:    fmt.Sprintf("Country %02d", i),
			DeviceType: visitor.DeviceTablet,
			CreatedAt:  now,
		})
	}

	got := Summarize(logs, now, time.UTC)
	if len(got.States) != 8 {
		t.Fatalf("expected 8 states, got %d", len(got.States))
	}
	if len(got.Countries) != 5 {
		t.Fatalf("expected 5 countries, got %d", len(got.Countries))
	}
	if got.States[0].Key != "State 00" {
		t.Fatalf("ties must break by key: %+v", got.States)
	}
	if len(got.Devices) != 1 || got.Devices[0] != (Count{"tablet", 12}) {
		t.Fatalf("unexpected devices: %+v", got.Devices)
	}
}

func TestAnalyticsService_Get_UsesConfiguredLimit(t *testing.T) {
	t.Parallel()

	repo := visitormock.NewRepository(t)
	service := NewAnalyticsService(repo, 1000, time.UTC)
	repo.On("ListRecent", mock.Anything, 1000).Return([]visitor.Log{}, nil).Once()

	got, err := service.Get(context.Background())
	if err != nil {
		t.Fatalf("get analytics: %v", err)
	}
	if got.Summary.Total != 0 || len(got.Summary.LastDays) != 7 {
		t.Fatalf("unexpected empty summary: %+v", got.Summary)
	}
}
