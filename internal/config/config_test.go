package config

import (
	"testing"
	"time"
)

// setBaseEnv sets the minimum environment that loads cleanly in dev with in-memory backends.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_STORAGE_BACKEND", BackendMemory)
	t.Setenv("OBJECT_STORE_BACKEND", BackendMemory)
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("BETTERSTACK_ENABLED", "false")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.GalleryHomepageLimit != 7 {
		t.Fatalf("unexpected gallery homepage limit: %d", cfg.GalleryHomepageLimit)
	}
	if cfg.AnalyticsLogLimit != 1000 {
		t.Fatalf("unexpected analytics log limit: %d", cfg.AnalyticsLogLimit)
	}
	if cfg.GeoTimeout != 3*time.Second {
		t.Fatalf("unexpected geo timeout: %s", cfg.GeoTimeout)
	}
	if cfg.GeoDefaultCountry != "India" {
		t.Fatalf("unexpected geo default country: %q", cfg.GeoDefaultCountry)
	}
	if cfg.MatchDefaultVenue != "Nagendrajha Stadium" {
		t.Fatalf("unexpected default venue: %q", cfg.MatchDefaultVenue)
	}
	if cfg.S3Bucket != "gallery" {
		t.Fatalf("unexpected bucket: %q", cfg.S3Bucket)
	}
	if cfg.AnalyticsLocation == nil || cfg.AnalyticsLocation.String() != "Asia/Kolkata" {
		t.Fatalf("unexpected analytics location: %v", cfg.AnalyticsLocation)
	}
	if !cfg.AdminExposeErrors {
		t.Fatalf("expected admin errors to be exposed by default")
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_AdminPasswordRequiredWithoutIdentity(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("IDENTITY_ENABLED", "false")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ADMIN_PASSWORD is empty and identity is disabled")
	}
}

func TestLoad_IdentityReplacesSharedSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("IDENTITY_ENABLED", "true")
	t.Setenv("IDENTITY_BASE_URL", "https://id.example.test")
	t.Setenv("IDENTITY_CIRCUIT_FAILURE_COUNT", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.IdentityEnabled || cfg.IdentityCircuit.FailureThreshold != 4 {
		t.Fatalf("unexpected identity config: %+v", cfg.IdentityCircuit)
	}
}

func TestLoad_S3RequiresCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("OBJECT_STORE_BACKEND", BackendS3)
	t.Setenv("S3_ENDPOINT", "https://acc.r2.cloudflarestorage.com")
	t.Setenv("S3_ACCESS_KEY_ID", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when s3 credentials are missing")
	}

	t.Setenv("S3_ACCESS_KEY_ID", "id")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.S3PublicBaseURL != "https://acc.r2.cloudflarestorage.com" {
		t.Fatalf("expected public base url to fall back to endpoint, got %q", cfg.S3PublicBaseURL)
	}
}

func TestLoad_MemoryBackendRejectedInProd(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", EnvProd)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for memory backend in prod")
	}
}

func TestLoad_GeoLookupURLNeedsPlaceholder(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GEO_LOOKUP_URL", "https://ipapi.co/json/")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for geo lookup url without placeholder")
	}
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GALLERY_HOMEPAGE_LIMIT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero gallery limit")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_RejectsInvalidCircuitConfig(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GEO_CIRCUIT_FAILURE_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero failure threshold")
	}
}
