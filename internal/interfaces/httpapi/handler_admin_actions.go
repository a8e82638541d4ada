package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/league-portal/internal/usecase"
)

type idRequest struct {
	ID string `json:"id"`
}

type deleteGalleryRequest struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
}

type toggleGalleryRequest struct {
	ID             string `json:"id"`
	ShowOnHomepage *bool  `json:"show_on_homepage"`
}

type upsertPointsRequest struct {
	TeamName string `json:"team_name"`
	Played   int    `json:"played"`
	Won      int    `json:"won"`
	Lost     int    `json:"lost"`
	Points   int    `json:"points"`
}

type addMatchRequest struct {
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
	Location  string `json:"location"`
}

type upsertPerformerRequest struct {
	Category      string `json:"category"`
	Name          string `json:"name"`
	Team          string `json:"team"`
	Runs          int    `json:"runs"`
	Wickets       int    `json:"wickets"`
	MatchesPlayed int    `json:"matches_played"`
	MatchesWon    int    `json:"matches_won"`
	PhotoURL      string `json:"photo_url"`
	StatValue     int    `json:"stat_value"`
	StatLabel     string `json:"stat_label"`
}

type addNewsRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	IsPinned bool   `json:"is_pinned"`
}

type scoreboardRequest struct {
	Message string `json:"message"`
}

type addAlertRequest struct {
	Message   string `json:"message"`
	AlertType string `json:"alert_type"`
	IsActive  *bool  `json:"is_active"`
}

type toggleAlertRequest struct {
	ID       string `json:"id"`
	IsActive *bool  `json:"is_active"`
}

func (h *Handler) adminUploadGallery(ctx context.Context, r *http.Request) (map[string]any, error) {
	file, release, err := h.formFile(r)
	defer release()
	if err != nil {
		return nil, err
	}

	img, err := h.svc.Gallery.Upload(ctx, usecase.UploadGalleryInput{
		File:           file,
		AltText:        r.FormValue("alt_text"),
		ShowOnHomepage: r.FormValue("show_on_homepage") == "true",
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"url": img.ImageURL, "image": galleryImageToDTO(img)}, nil
}

func (h *Handler) adminDeleteGallery(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req deleteGalleryRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	result, err := h.svc.Gallery.Delete(ctx, usecase.DeleteGalleryInput{ID: req.ID, ImageURL: req.ImageURL})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"object_deleted":  result.ObjectDeleted,
		"orphan_recorded": result.OrphanRecorded,
	}, nil
}

func (h *Handler) adminToggleGalleryHomepage(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req toggleGalleryRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	if req.ShowOnHomepage == nil {
		return nil, badRequest("show_on_homepage is required")
	}
	if err := h.svc.Gallery.SetShowOnHomepage(ctx, req.ID, *req.ShowOnHomepage); err != nil {
		return nil, err
	}
	return nil, nil
}

func (h *Handler) adminUpsertPoints(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req upsertPointsRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	row, err := h.svc.Standings.Upsert(ctx, usecase.UpsertStandingInput{
		TeamName: req.TeamName,
		Played:   req.Played,
		Won:      req.Won,
		Lost:     req.Lost,
		Points:   req.Points,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"standing": standingToDTO(row)}, nil
}

func (h *Handler) adminAddMatch(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req addMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	m, err := h.svc.Matches.Add(ctx, usecase.AddMatchInput{
		Team1:     req.Team1,
		Team2:     req.Team2,
		MatchDate: req.MatchDate,
		MatchTime: req.MatchTime,
		Location:  req.Location,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"match": matchToDTO(m)}, nil
}

func (h *Handler) adminDeleteMatch(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req idRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	return nil, h.svc.Matches.Delete(ctx, req.ID)
}

func (h *Handler) adminUpsertPerformer(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req upsertPerformerRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	p, err := h.svc.Performers.Upsert(ctx, usecase.UpsertPerformerInput{
		Category:      req.Category,
		Name:          req.Name,
		Team:          req.Team,
		Runs:          req.Runs,
		Wickets:       req.Wickets,
		MatchesPlayed: req.MatchesPlayed,
		MatchesWon:    req.MatchesWon,
		PhotoURL:      req.PhotoURL,
		StatValue:     req.StatValue,
		StatLabel:     req.StatLabel,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"performer": performerToDTO(p)}, nil
}

func (h *Handler) adminUploadPerformerPhoto(ctx context.Context, r *http.Request) (map[string]any, error) {
	file, release, err := h.formFile(r)
	defer release()
	if err != nil {
		return nil, err
	}
	url, err := h.svc.Performers.UploadPhoto(ctx, file)
	if err != nil {
		return nil, err
	}
	return map[string]any{"url": url}, nil
}

func (h *Handler) adminAddNews(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req addNewsRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	item, err := h.svc.News.Add(ctx, usecase.AddNewsInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"news": newsToDTO(item)}, nil
}

func (h *Handler) adminDeleteNews(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req idRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	return nil, h.svc.News.Delete(ctx, req.ID)
}

func (h *Handler) adminAddScoreboard(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req scoreboardRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	item, err := h.svc.Scoreboard.Add(ctx, req.Message)
	if err != nil {
		return nil, err
	}
	return map[string]any{"update": scoreboardToDTO(item)}, nil
}

func (h *Handler) adminDeleteScoreboard(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req idRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	return nil, h.svc.Scoreboard.Delete(ctx, req.ID)
}

func (h *Handler) adminAddAlert(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req addAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	item, err := h.svc.Alerts.Add(ctx, usecase.AddAlertInput{
		Message:  req.Message,
		Type:     req.AlertType,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"alert": alertToDTO(item)}, nil
}

func (h *Handler) adminDeleteAlert(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req idRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	return nil, h.svc.Alerts.Delete(ctx, req.ID)
}

func (h *Handler) adminToggleAlert(ctx context.Context, r *http.Request) (map[string]any, error) {
	var req toggleAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	if req.IsActive == nil {
		return nil, badRequest("is_active is required")
	}
	return nil, h.svc.Alerts.SetActive(ctx, req.ID, *req.IsActive)
}

func (h *Handler) adminGetAnalytics(ctx context.Context, _ *http.Request) (map[string]any, error) {
	report, err := h.svc.Analytics.Get(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"logs":    mapSlice(report.Logs, visitorLogToDTO),
		"summary": analyticsSummaryToDTO(report.Summary),
	}, nil
}

func (h *Handler) adminListRegistrations(ctx context.Context, _ *http.Request) (map[string]any, error) {
	items, err := h.svc.Registrations.ListRecent(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"registrations": mapSlice(items, registrationToDTO)}, nil
}
