package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	visitormock "github.com/riskibarqy/league-portal/internal/mocks/domain/visitor"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestVisitorService_Track_GeoFailureUsesDefaults(t *testing.T) {
	t.Parallel()

	repo := visitormock.NewRepository(t)
	locator := visitormock.NewLocator(t)
	service := NewVisitorService(repo, locator, &sequenceIDs{prefix: "v"}, logging.NewNop(), "India")

	locator.On("Locate", mock.Anything, "203.0.113.9").Return(visitor.Location{}, errors.New("rate limited")).Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(l visitor.Log) bool {
			return l.State == visitor.Unknown && l.City == visitor.Unknown && l.Country == "India" &&
				l.Referrer == nil && l.Page == "/" && l.DeviceType == visitor.DeviceMobile
		})).
		Return(nil).
		Once()

	_, err := service.Track(context.Background(), TrackVisitInput{
		UserAgent: "Mozilla/5.0 (Linux; Android 14) Mobile Safari",
		ClientIP:  "203.0.113.9",
	})
	if err != nil {
		t.Fatalf("track: %v", err)
	}
}

func TestVisitorService_Track_FillsMissingGeoFields(t *testing.T) {
	t.Parallel()

	repo := visitormock.NewRepository(t)
	locator := visitormock.NewLocator(t)
	service := NewVisitorService(repo, locator, &sequenceIDs{prefix: "v"}, logging.NewNop(), "India")

	locator.On("Locate", mock.Anything, "198.51.100.4").Return(visitor.Location{State: "Bihar"}, nil).Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(l visitor.Log) bool {
			return l.State == "Bihar" && l.City == visitor.Unknown && l.Country == visitor.Unknown &&
				l.Referrer != nil && *l.Referrer == "https://google.com/" &&
				len(l.UserAgent) == visitor.MaxUserAgentLen
		})).
		Return(nil).
		Once()

	_, err := service.Track(context.Background(), TrackVisitInput{
		Page:      "/gallery",
		Referrer:  "https://google.com/",
		UserAgent: strings.Repeat("u", 900),
		ClientIP:  "198.51.100.4",
	})
	if err != nil {
		t.Fatalf("track: %v", err)
	}
}

func TestVisitorService_Track_NoLocatorSkipsLookup(t *testing.T) {
	t.Parallel()

	repo := visitormock.NewRepository(t)
	service := NewVisitorService(repo, nil, &sequenceIDs{prefix: "v"}, logging.NewNop(), "India")
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	got, err := service.Track(context.Background(), TrackVisitInput{Page: "/", ClientIP: "203.0.113.9"})
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if got.Country != "India" || got.DeviceType != visitor.DeviceDesktop {
		t.Fatalf("unexpected log: %+v", got)
	}
}

func TestVisitorService_Track_RepeatSessionIsReported(t *testing.T) {
	t.Parallel()

	repo := visitormock.NewRepository(t)
	service := NewVisitorService(repo, nil, &sequenceIDs{prefix: "v"}, logging.NewNop(), "India")
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(l visitor.Log) bool {
			return l.SessionID != nil && *l.SessionID == "tab-7"
		})).
		Return(visitor.ErrSessionRecorded).
		Once()

	_, err := service.Track(context.Background(), TrackVisitInput{SessionID: " tab-7 ", Page: "/"})
	if !errors.Is(err, visitor.ErrSessionRecorded) {
		t.Fatalf("expected ErrSessionRecorded, got %v", err)
	}
}
