package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const (
	visitorCookieName   = "brl_visitor_tracked"
	registrationMessage = "Registration submitted successfully"
	maxIntakeBodyBytes  = 64 << 10
)

// decodeObject reads a JSON object body. Field values keep their JSON types.
func decodeObject(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxIntakeBodyBytes))
	if err != nil {
		return nil, err
	}
	var body map[string]any
	if err := jsoniter.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errors.New("body must be a JSON object")
	}
	return body, nil
}

// formString returns body[key] when it is a JSON string; any other type counts as missing.
func formString(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}

func (h *Handler) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRegistration")
	defer span.End()

	body, err := decodeObject(r)
	if err != nil {
		writeErrorMessage(ctx, w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	reg, err := h.svc.Registrations.Submit(ctx, usecase.RegistrationInput{
		Name:           formString(body, "name"),
		DOB:            formString(body, "dob"),
		Phone:          formString(body, "phone"),
		Email:          formString(body, "email"),
		DocumentType:   formString(body, "documentType"),
		DocumentNumber: formString(body, "documentNumber"),
		PlayerType:     formString(body, "playerType"),
		Address:        formString(body, "address"),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			writeErrorMessage(ctx, w, http.StatusBadRequest, clientMessage(err))
			return
		}
		h.logger.ErrorContext(ctx, "submit registration failed", "error", err)
		writePublicError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration submitted", "registration_id", reg.ID, "player_type", reg.PlayerType)
	writeSuccess(ctx, w, map[string]any{"message": registrationMessage})
}

type trackVisitRequest struct {
	SessionID string `json:"session_id"`
	Page      string `json:"page"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
}

// TrackVisit always answers 204. A row is written once per browser session, keyed by the
// client-held session_id when sent and by the session cookie otherwise.
func (h *Handler) TrackVisit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TrackVisit")
	defer span.End()

	if _, err := r.Cookie(visitorCookieName); err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req trackVisitRequest
	if raw, err := io.ReadAll(io.LimitReader(r.Body, maxIntakeBodyBytes)); err == nil && len(raw) > 0 {
		if err := jsoniter.Unmarshal(raw, &req); err != nil {
			h.logger.DebugContext(ctx, "visit body ignored", "error", err)
			req = trackVisitRequest{}
		}
	}
	if req.Referrer == "" {
		req.Referrer = r.Header.Get("Referer")
	}
	if req.UserAgent == "" {
		req.UserAgent = r.Header.Get("User-Agent")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    "1",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	// The write completes even if the client goes away mid-request.
	trackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	_, err := h.svc.Visitors.Track(trackCtx, usecase.TrackVisitInput{
		SessionID: req.SessionID,
		Page:      req.Page,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		ClientIP:  resolveClientIP(r),
	})
	switch {
	case errors.Is(err, visitor.ErrSessionRecorded):
		h.logger.DebugContext(ctx, "visit already recorded for session")
	case err != nil:
		h.logger.WarnContext(ctx, "track visit failed", "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
