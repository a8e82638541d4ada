package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const (
	msgUnauthorized   = "Unauthorized"
	msgUnknownAction  = "Unknown action"
	msgInvalidBody    = "Invalid request body"
	msgInternalError  = "Internal server error"
	msgNotFound       = "Not found"
	msgServiceOffline = "Service temporarily unavailable"
)

type errorBody struct {
	Error string `json:"error"`
}

type dataBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeJSON(_ context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeSuccess answers 200 with {"success":true} merged with payload.
func writeSuccess(ctx context.Context, w http.ResponseWriter, payload map[string]any) {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = true
	writeJSON(ctx, w, http.StatusOK, body)
}

// writeData answers 200 with {"success":true,"data":data}.
func writeData(ctx context.Context, w http.ResponseWriter, data any) {
	writeJSON(ctx, w, http.StatusOK, dataBody{Success: true, Data: data})
}

func writeErrorMessage(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, errorBody{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeErrorMessage(ctx, w, http.StatusInternalServerError, msgInternalError)
}

// clientMessage returns the caller-facing text of err. Only ClientError messages are
// returned as-is; anything else is reduced to its wrapped chain.
func clientMessage(err error) string {
	var ce *usecase.ClientError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}

// writePublicError maps service errors for unauthenticated endpoints. Unexpected
// failures never leak their detail.
func writePublicError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		writeErrorMessage(ctx, w, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, usecase.ErrNotFound):
		writeErrorMessage(ctx, w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, usecase.ErrUnauthorized):
		writeErrorMessage(ctx, w, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		writeErrorMessage(ctx, w, http.StatusServiceUnavailable, msgServiceOffline)
	default:
		writeInternalError(ctx, w)
	}
}

// writeAdminError maps dispatcher failures: validation and unknown ids are 400, anything
// else is 500 with the raw message when exposeRaw is set.
func writeAdminError(ctx context.Context, w http.ResponseWriter, err error, exposeRaw bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrNotFound):
		writeErrorMessage(ctx, w, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, usecase.ErrUnauthorized):
		writeErrorMessage(ctx, w, http.StatusUnauthorized, msgUnauthorized)
	case exposeRaw:
		writeErrorMessage(ctx, w, http.StatusInternalServerError, err.Error())
	default:
		writeInternalError(ctx, w)
	}
}
