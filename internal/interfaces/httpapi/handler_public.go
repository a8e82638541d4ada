package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	items, err := h.svc.Standings.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, mapSlice(items, standingToDTO))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	items, err := h.svc.Matches.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, mapSlice(items, matchToDTO))
}

func (h *Handler) ListPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPerformers")
	defer span.End()

	items, err := h.svc.Performers.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list performers failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, mapSlice(items, performerToDTO))
}

func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGallery")
	defer span.End()

	homepageOnly, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("homepage")))
	items, err := h.svc.Gallery.List(ctx, homepageOnly)
	if err != nil {
		h.logger.ErrorContext(ctx, "list gallery failed", "homepage", homepageOnly, "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, mapSlice(items, galleryImageToDTO))
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	items, err := h.svc.News.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, mapSlice(items, newsToDTO))
}

func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAlerts")
	defer span.End()

	items, err := h.svc.Alerts.ListActive(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list alerts failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, mapSlice(items, alertToDTO))
}

func (h *Handler) ListScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScoreboard")
	defer span.End()

	items, err := h.svc.Scoreboard.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list scoreboard failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, mapSlice(items, scoreboardToDTO))
}

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	feed, err := h.svc.Home.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get home feed failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}
	writeData(ctx, w, homeToDTO(feed))
}
