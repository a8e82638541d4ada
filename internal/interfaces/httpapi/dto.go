package httpapi

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/alert"
	"github.com/riskibarqy/league-portal/internal/domain/gallery"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/performer"
	"github.com/riskibarqy/league-portal/internal/domain/registration"
	"github.com/riskibarqy/league-portal/internal/domain/scoreboard"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

type standingDTO struct {
	TeamName  string    `json:"team_name"`
	Played    int       `json:"played"`
	Won       int       `json:"won"`
	Lost      int       `json:"lost"`
	Points    int       `json:"points"`
	UpdatedAt time.Time `json:"updated_at"`
}

type matchDTO struct {
	ID        string    `json:"id"`
	Team1     string    `json:"team1"`
	Team2     string    `json:"team2"`
	MatchDate string    `json:"match_date"`
	MatchTime string    `json:"match_time"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type performerDTO struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Name          string    `json:"name"`
	Team          string    `json:"team"`
	Runs          int       `json:"runs"`
	Wickets       int       `json:"wickets"`
	MatchesPlayed int       `json:"matches_played"`
	MatchesWon    int       `json:"matches_won"`
	PhotoURL      *string   `json:"photo_url"`
	StatValue     int       `json:"stat_value"`
	StatLabel     string    `json:"stat_label"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type galleryImageDTO struct {
	ID             string    `json:"id"`
	ImageURL       string    `json:"image_url"`
	AltText        string    `json:"alt_text"`
	ShowOnHomepage bool      `json:"show_on_homepage"`
	CreatedAt      time.Time `json:"created_at"`
}

type newsDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
}

type alertDTO struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	AlertType string    `json:"alert_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type scoreboardDTO struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type visitorLogDTO struct {
	ID         string    `json:"id"`
	Page       string    `json:"page"`
	Referrer   *string   `json:"referrer"`
	UserAgent  string    `json:"user_agent"`
	State      string    `json:"state"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	DeviceType string    `json:"device_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type registrationDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DOB            string    `json:"dob"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	PlayerType     string    `json:"player_type"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}

type countDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type dayCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type analyticsSummaryDTO struct {
	Total     int           `json:"total"`
	Today     int           `json:"today"`
	ByState   []countDTO    `json:"by_state"`
	ByDevice  []countDTO    `json:"by_device"`
	ByCountry []countDTO    `json:"by_country"`
	Last7Days []dayCountDTO `json:"last_7_days"`
}

type homeDTO struct {
	Standings  []standingDTO     `json:"standings"`
	Matches    []matchDTO        `json:"matches"`
	Performers []performerDTO    `json:"performers"`
	Gallery    []galleryImageDTO `json:"gallery"`
	News       []newsDTO         `json:"news"`
	Alerts     []alertDTO        `json:"alerts"`
	Scoreboard []scoreboardDTO   `json:"scoreboard"`
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		TeamName:  v.TeamName,
		Played:    v.Played,
		Won:       v.Won,
		Lost:      v.Lost,
		Points:    v.Points,
		UpdatedAt: v.UpdatedAt,
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:        v.ID,
		Team1:     v.Team1,
		Team2:     v.Team2,
		MatchDate: v.MatchDate,
		MatchTime: v.MatchTime,
		Location:  v.Location,
		CreatedAt: v.CreatedAt,
	}
}

func performerToDTO(v performer.Performer) performerDTO {
	return performerDTO{
		ID:            v.ID,
		Category:      string(v.Category),
		Name:          v.Name,
		Team:          v.Team,
		Runs:          v.Runs,
		Wickets:       v.Wickets,
		MatchesPlayed: v.MatchesPlayed,
		MatchesWon:    v.MatchesWon,
		PhotoURL:      v.PhotoURL,
		StatValue:     v.StatValue,
		StatLabel:     v.StatLabel,
		UpdatedAt:     v.UpdatedAt,
	}
}

func galleryImageToDTO(v gallery.Image) galleryImageDTO {
	return galleryImageDTO{
		ID:             v.ID,
		ImageURL:       v.ImageURL,
		AltText:        v.AltText,
		ShowOnHomepage: v.ShowOnHomepage,
		CreatedAt:      v.CreatedAt,
	}
}

func newsToDTO(v news.Item) newsDTO {
	return newsDTO{
		ID:        v.ID,
		Title:     v.Title,
		Content:   v.Content,
		Category:  v.Category,
		IsPinned:  v.IsPinned,
		CreatedAt: v.CreatedAt,
	}
}

func alertToDTO(v alert.Alert) alertDTO {
	return alertDTO{
		ID:        v.ID,
		Message:   v.Message,
		AlertType: string(v.Type),
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

func scoreboardToDTO(v scoreboard.Update) scoreboardDTO {
	return scoreboardDTO{ID: v.ID, Message: v.Message, CreatedAt: v.CreatedAt}
}

func visitorLogToDTO(v visitor.Log) visitorLogDTO {
	return visitorLogDTO{
		ID:         v.ID,
		Page:       v.Page,
		Referrer:   v.Referrer,
		UserAgent:  v.UserAgent,
		State:      v.State,
		City:       v.City,
		Country:    v.Country,
		DeviceType: string(v.DeviceType),
		CreatedAt:  v.CreatedAt,
	}
}

func registrationToDTO(v registration.Registration) registrationDTO {
	return registrationDTO{
		ID:             v.ID,
		Name:           v.Name,
		DOB:            v.DOB,
		Phone:          v.Phone,
		Email:          v.Email,
		DocumentType:   v.DocumentType,
		DocumentNumber: v.DocumentNumber,
		PlayerType:     v.PlayerType,
		Address:        v.Address,
		CreatedAt:      v.CreatedAt,
	}
}

func countsToDTO(items []usecase.Count) []countDTO {
	out := make([]countDTO, 0, len(items))
	for _, c := range items {
		out = append(out, countDTO{Name: c.Key, Count: c.Count})
	}
	return out
}

func analyticsSummaryToDTO(v usecase.AnalyticsSummary) analyticsSummaryDTO {
	days := make([]dayCountDTO, 0, len(v.LastDays))
	for _, d := range v.LastDays {
		days = append(days, dayCountDTO{Date: d.Date, Count: d.Count})
	}
	return analyticsSummaryDTO{
		Total:     v.Total,
		Today:     v.Today,
		ByState:   countsToDTO(v.States),
		ByDevice:  countsToDTO(v.Devices),
		ByCountry: countsToDTO(v.Countries),
		Last7Days: days,
	}
}

// mapSlice converts items with fn and never returns nil, so empty lists encode as [].
func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func homeToDTO(v usecase.HomeFeed) homeDTO {
	return homeDTO{
		Standings:  mapSlice(v.Standings, standingToDTO),
		Matches:    mapSlice(v.Matches, matchToDTO),
		Performers: mapSlice(v.Performers, performerToDTO),
		Gallery:    mapSlice(v.Gallery, galleryImageToDTO),
		News:       mapSlice(v.News, newsToDTO),
		Alerts:     mapSlice(v.Alerts, alertToDTO),
		Scoreboard: mapSlice(v.Scoreboard, scoreboardToDTO),
	}
}
