package httpapi

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/league-portal/internal/domain/user"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const adminPasswordHeader = "x-admin-password"

type principalKey struct{}

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// principalFromContext returns the admin RequireAdmin authenticated for this request.
func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}

// TokenVerifier verifies admin bearer tokens against the identity provider.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (user.Principal, error)
}

// AdminAuth holds the credentials RequireAdmin accepts. An empty Password disables the
// shared secret; a nil Verifier disables bearer tokens.
type AdminAuth struct {
	Password string
	Verifier TokenVerifier
}

// RequireAdmin authenticates before any routing or body parsing. A matching shared secret
// wins; otherwise a bearer token is checked when a verifier is configured.
func RequireAdmin(auth AdminAuth, logger *logging.Logger, next http.Handler) http.Handler {
	password := []byte(auth.Password)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if provided := r.Header.Get(adminPasswordHeader); provided != "" && len(password) > 0 {
			if subtle.ConstantTimeCompare([]byte(provided), password) == 1 {
				principal := user.Principal{Method: user.MethodSharedSecret}
				next.ServeHTTP(w, r.WithContext(withPrincipal(ctx, principal)))
				return
			}
		}

		if token, ok := bearerToken(r); ok && auth.Verifier != nil {
			principal, err := auth.Verifier.VerifyAccessToken(ctx, token)
			if err == nil {
				principal.Method = user.MethodBearer
				next.ServeHTTP(w, r.WithContext(withPrincipal(ctx, principal)))
				return
			}
			if !errors.Is(err, usecase.ErrUnauthorized) {
				logger.WarnContext(ctx, "admin token verification failed", "error", err)
			}
		}

		logger.InfoContext(ctx, "admin request rejected", "path", r.URL.Path, "action", r.URL.Query().Get("action"))
		writeErrorMessage(ctx, w, http.StatusUnauthorized, msgUnauthorized)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogging writes one line per request. Server errors log at error so they reach the
// remote sink; health checks are not logged.
func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if isHealthPath(r.URL.Path) {
			return
		}
		kv := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"client_ip", resolveClientIP(r),
			"duration_ms", time.Since(started).Milliseconds(),
		}
		if rec.status >= http.StatusInternalServerError {
			logger.ErrorContext(r.Context(), "http request", kv...)
			return
		}
		logger.InfoContext(r.Context(), "http request", kv...)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "league-portal-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return !isHealthPath(r.URL.Path)
		}),
	)
}

var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/health":  {},
	"/livez":   {},
	"/readyz":  {},
}

func isHealthPath(path string) bool {
	_, ok := healthPaths[strings.ToLower(strings.TrimSpace(path))]
	return ok
}

// CORS answers every preflight with 200 and an empty body, ahead of authentication.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowAll := false
	allowMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
			continue
		}
		allowMap[candidate] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		switch {
		case allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "":
			if _, ok := allowMap[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "authorization,x-client-info,apikey,content-type,"+adminPasswordHeader)
			w.Header().Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
