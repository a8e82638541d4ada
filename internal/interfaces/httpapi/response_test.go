package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestWriteSuccess_MergesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, map[string]any{"url": "https://cdn.example/gallery/1-a.png", "success": false})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["url"] != "https://cdn.example/gallery/1-a.png" {
		t.Fatalf("expected url in payload, got %v", body["url"])
	}
}

func TestWriteData_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeData(context.Background(), rec, []string{"a"})

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true")
	}
	if _, ok := body["data"].([]any); !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
}

func TestWriteAdminError(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		expose    bool
		status    int
		wantError string
	}{
		{
			name:      "client error message",
			err:       fmt.Errorf("upsert: %w", &usecase.ClientError{Kind: usecase.ErrInvalidInput, Problems: []string{"team_name is required"}}),
			status:    http.StatusBadRequest,
			wantError: "team_name is required",
		},
		{
			name:      "not found is a bad request",
			err:       &usecase.ClientError{Kind: usecase.ErrNotFound, Problems: []string{"alert not found"}},
			status:    http.StatusBadRequest,
			wantError: "alert not found",
		},
		{
			name:      "raw storage message",
			err:       errors.New("pq: relation \"news\" does not exist"),
			expose:    true,
			status:    http.StatusInternalServerError,
			wantError: "pq: relation \"news\" does not exist",
		},
		{
			name:      "hidden storage message",
			err:       errors.New("pq: relation \"news\" does not exist"),
			status:    http.StatusInternalServerError,
			wantError: msgInternalError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeAdminError(context.Background(), rec, tc.err, tc.expose)
			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
			if got := decodeBody(t, rec)["error"]; got != tc.wantError {
				t.Fatalf("expected error %q, got %v", tc.wantError, got)
			}
		})
	}
}

func TestWritePublicError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writePublicError(context.Background(), rec, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != msgInternalError {
		t.Fatalf("expected generic message, got %v", got)
	}
}
