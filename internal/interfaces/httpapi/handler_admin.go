package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/league-portal/internal/usecase"
)

const multipartMemory = 8 << 20

// adminAction performs one logical operation and returns the extra success payload.
type adminAction func(ctx context.Context, r *http.Request) (map[string]any, error)

func (h *Handler) buildAdminActions() map[string]adminAction {
	return map[string]adminAction{
		"verify-auth":             h.adminVerifyAuth,
		"upload-gallery":          h.adminUploadGallery,
		"delete-gallery":          h.adminDeleteGallery,
		"toggle-gallery-homepage": h.adminToggleGalleryHomepage,
		"upsert-points":           h.adminUpsertPoints,
		"add-match":               h.adminAddMatch,
		"delete-match":            h.adminDeleteMatch,
		"upsert-performer":        h.adminUpsertPerformer,
		"upload-performer-photo":  h.adminUploadPerformerPhoto,
		"add-news":                h.adminAddNews,
		"delete-news":             h.adminDeleteNews,
		"add-scoreboard":          h.adminAddScoreboard,
		"delete-scoreboard":       h.adminDeleteScoreboard,
		"add-alert":               h.adminAddAlert,
		"delete-alert":            h.adminDeleteAlert,
		"toggle-alert":            h.adminToggleAlert,
		"get-analytics":           h.adminGetAnalytics,
		"list-registrations":      h.adminListRegistrations,
	}
}

// AdminDispatch routes an authenticated admin call by its action query parameter.
// Every action is a single attempt; nothing is retried.
func (h *Handler) AdminDispatch(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimSpace(r.URL.Query().Get("action"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDispatch", attribute.String("admin.action", action))
	defer span.End()

	run, ok := h.adminActions[action]
	if !ok || r.Method != http.MethodPost {
		writeErrorMessage(ctx, w, http.StatusBadRequest, msgUnknownAction)
		return
	}

	principal, _ := principalFromContext(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartMemory)

	payload, err := run(ctx, r)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) || errors.Is(err, usecase.ErrNotFound) {
			h.logger.WarnContext(ctx, "admin action rejected",
				"action", action, "subject", principal.Subject(), "error", err)
		} else {
			h.logger.ErrorContext(ctx, "admin action failed",
				"action", action, "subject", principal.Subject(), "error", err)
		}
		writeAdminError(ctx, w, err, h.exposeErrors)
		return
	}

	h.logger.InfoContext(ctx, "admin action",
		"action", action,
		"subject", principal.Subject(),
		"auth_method", principal.Method,
	)
	writeSuccess(ctx, w, payload)
}

func badRequest(message string) error {
	return &usecase.ClientError{Kind: usecase.ErrInvalidInput, Problems: []string{message}}
}

func decodeJSON(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return badRequest("Request body too large")
		}
		return badRequest(msgInvalidBody)
	}
	if len(raw) == 0 {
		return badRequest(msgInvalidBody)
	}
	if err := jsoniter.Unmarshal(raw, dst); err != nil {
		return badRequest(msgInvalidBody)
	}
	return nil
}

// formFile reads the multipart "file" field. The returned release func must be called
// once the upload has been consumed.
func (h *Handler) formFile(r *http.Request) (usecase.UploadInput, func(), error) {
	noop := func() {}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return usecase.UploadInput{}, noop, badRequest("File too large")
		}
		return usecase.UploadInput{}, noop, badRequest("No file provided")
	}
	release := func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return usecase.UploadInput{}, release, badRequest("No file provided")
	}
	if header.Size > h.maxUpload {
		_ = file.Close()
		return usecase.UploadInput{}, release, badRequest("File too large")
	}

	in := usecase.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	return in, func() {
		_ = file.Close()
		release()
	}, nil
}

func (h *Handler) adminVerifyAuth(ctx context.Context, _ *http.Request) (map[string]any, error) {
	principal, _ := principalFromContext(ctx)
	return map[string]any{"method": principal.Method}, nil
}
