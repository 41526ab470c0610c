package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "3000" || cfg.APIBasePath != "/api" || cfg.GinMode != "release" {
		t.Fatalf("server defaults unexpected: %+v", cfg)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.Path != "zapcont.db" {
		t.Fatalf("db defaults unexpected: %+v", cfg.DB)
	}
	if cfg.MessagesByDayMode != "approximate" {
		t.Fatalf("daily mode default = %q", cfg.MessagesByDayMode)
	}
	if cfg.Archive.Enabled {
		t.Fatalf("archive must be off by default")
	}
	if cfg.NFEIO.Timeout != 0 {
		t.Fatalf("upstream timeout default should be 0, got %v", cfg.NFEIO.Timeout)
	}
}

func TestLoad_Success_Overrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("GIN_MODE", "weird") // normalizes to "release"

	t.Setenv("LOG_LEVEL", "warning") // normalizes to "warn"
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")
	t.Setenv("API_BASE_PATH", "api/")

	t.Setenv("DB_DRIVER", "postgresql")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/zap?sslmode=disable")

	t.Setenv("RATE_RPS", "x")      // parse failure -> default
	t.Setenv("RATE_BURST", "nope") // parse failure -> default

	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")
	t.Setenv("IDEMPOTENCY_TTL", "48h")
	t.Setenv("METRICS_DAILY_MODE", "EXACT")

	t.Setenv("NFEIO_API_URL", "https://api.nfe.io/v1/")
	t.Setenv("NFEIO_V2_API_URL", "https://api.nfse.io/v2")
	t.Setenv("NFEIO_API_KEY", "k")
	t.Setenv("NFEIO_TIMEOUT", "30s")

	t.Setenv("ARCHIVE_ENABLED", "1")
	t.Setenv("ARCHIVE_BUCKET", "nfe-renditions")

	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("OTEL_SERVICE_NAME", "svc")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8088" ||
		cfg.ReadTimeout != 2*time.Second ||
		cfg.ReadHeaderTimeout != 1*time.Second ||
		cfg.WriteTimeout != 3*time.Second ||
		cfg.IdleTimeout != 4*time.Second ||
		cfg.MaxHeaderBytes != 8192 ||
		cfg.MaxBodyBytes != 4096 ||
		cfg.GinMode != "release" {
		t.Fatalf("server fields unexpected: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.APIBasePath != "/api" {
		t.Fatalf("logging/docs unexpected: %+v", cfg)
	}
	if cfg.DB.Driver != "postgres" || cfg.DB.URL == "" {
		t.Fatalf("db unexpected: %+v", cfg.DB)
	}
	if cfg.RateRPS != 10.0 || cfg.RateBurst != 20 {
		t.Fatalf("rate limiting unexpected: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.com", "http://b"}) {
		t.Fatalf("cors origins unexpected: %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security unexpected: %+v", cfg.Security)
	}
	if cfg.IdempotencyTTL != 48*time.Hour || cfg.MessagesByDayMode != "exact" {
		t.Fatalf("ttl/mode unexpected: %v %q", cfg.IdempotencyTTL, cfg.MessagesByDayMode)
	}
	if cfg.NFEIO.APIURL != "https://api.nfe.io/v1" || cfg.NFEIO.V1APIURL != "https://api.nfe.io/v1" {
		t.Fatalf("v1 fallback unexpected: %+v", cfg.NFEIO)
	}
	if cfg.NFEIO.V2APIURL != "https://api.nfse.io/v2" || cfg.NFEIO.APIKey != "k" || cfg.NFEIO.Timeout != 30*time.Second {
		t.Fatalf("nfeio unexpected: %+v", cfg.NFEIO)
	}
	if !cfg.Archive.Enabled || cfg.Archive.Bucket != "nfe-renditions" || cfg.Archive.Region != "sa-east-1" {
		t.Fatalf("archive unexpected: %+v", cfg.Archive)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.Insecure || cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Fatalf("otel unexpected: %+v", cfg.OTEL)
	}
}

func TestLoadNFEIO_ReadsCurrentEnvironment(t *testing.T) {
	t.Setenv("NFEIO_API_URL", "https://one")
	first := LoadNFEIO()
	t.Setenv("NFEIO_API_URL", "https://two")
	t.Setenv("NFEIO_V1_API_URL", "https://v1")
	second := LoadNFEIO()

	if first.APIURL != "https://one" || first.V1APIURL != "https://one" {
		t.Fatalf("first read unexpected: %+v", first)
	}
	if second.APIURL != "https://two" || second.V1APIURL != "https://v1" {
		t.Fatalf("second read unexpected: %+v", second)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"invalid LOG_LEVEL", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"empty PORT", map[string]string{"PORT": "   "}, "PORT must not be empty"},
		{"non-positive timeouts", map[string]string{"READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{"max header bytes", map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{"max body bytes", map[string]string{"MAX_BODY_BYTES": "-1"}, "MAX_BODY_BYTES"},
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}, "DB_DRIVER"},
		{"empty sqlite path", map[string]string{"DB_PATH": "  "}, "DB_PATH"},
		{"postgres without url", map[string]string{"DB_DRIVER": "postgres"}, "DATABASE_URL"},
		{"negative rps", map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{"burst below one", map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{"negative hsts", map[string]string{"HSTS_MAX_AGE": "-1h"}, "HSTS_MAX_AGE"},
		{"zero idempotency ttl", map[string]string{"IDEMPOTENCY_TTL": "0s"}, "IDEMPOTENCY_TTL"},
		{"bad daily mode", map[string]string{"METRICS_DAILY_MODE": "random"}, "METRICS_DAILY_MODE"},
		{"negative upstream timeout", map[string]string{"NFEIO_TIMEOUT": "-5s"}, "NFEIO_TIMEOUT"},
		{"archive without bucket", map[string]string{"ARCHIVE_ENABLED": "true"}, "ARCHIVE_BUCKET"},
		{"sampler out of range", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	if got := splitCSV(""); got != nil {
		t.Fatalf("splitCSV(\"\") = %#v", got)
	}
	if got := normalizeBasePath(""); got != "/" {
		t.Fatalf("normalizeBasePath(\"\") = %q", got)
	}
	if got := normalizeBasePath("/"); got != "/" {
		t.Fatalf("normalizeBasePath(\"/\") = %q", got)
	}
	if got := normalizeBasePath(" api/v2/ "); got != "/api/v2" {
		t.Fatalf("normalizeBasePath = %q", got)
	}
	t.Setenv("X_BOOL", "maybe")
	if !getbool("X_BOOL", true) {
		t.Fatalf("unparseable bool should return default")
	}
	t.Setenv("X_DUR", "soon")
	if getdur("X_DUR", time.Second) != time.Second {
		t.Fatalf("unparseable duration should return default")
	}
}
