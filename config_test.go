package securerequests

import (
	"log/slog"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.UseTLS {
		t.Error("UseTLS default = false, want true")
	}
	if cfg.Unsafe {
		t.Error("Unsafe default = true, want false")
	}
	if !cfg.CertificateNeedFetch {
		t.Error("CertificateNeedFetch default = false, want true")
	}
	if cfg.CertificateURL != "https://curl.se/ca/cacert.pem" {
		t.Errorf("CertificateURL = %q", cfg.CertificateURL)
	}
	if cfg.CertificateChecksumURL != "https://curl.se/ca/cacert.pem.sha256" {
		t.Errorf("CertificateChecksumURL = %q", cfg.CertificateChecksumURL)
	}
	if cfg.CertificatePath != "cacert.pem" {
		t.Errorf("CertificatePath = %q", cfg.CertificatePath)
	}
	if !cfg.CertificateRedactURL {
		t.Error("CertificateRedactURL default = false, want true")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogPath != "secureRequests.log" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.FollowRedirects {
		t.Error("FollowRedirects default = false, want true")
	}
}

// ---------------------------------------------------------------------------
// Environment parsing
// ---------------------------------------------------------------------------

func TestConfigFromEnvBoolTokens(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"t", true},
		{"y", true},
		{"Yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"banana", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvUnsafe, tt.value)
		cfg := ConfigFromEnv()
		if cfg.Unsafe != tt.want {
			t.Errorf("Unsafe with %s=%q is %v, want %v", EnvUnsafe, tt.value, cfg.Unsafe, tt.want)
		}
	}
}

func TestConfigFromEnvSetButUnrecognizedDisablesDefault(t *testing.T) {
	// UseTLS defaults to true; an unrecognized token still counts as set,
	// which means false.
	t.Setenv(EnvUseTLS, "banana")
	if cfg := ConfigFromEnv(); cfg.UseTLS {
		t.Error("UseTLS = true with an unrecognized token set")
	}
}

func TestConfigFromEnvUnsetKeepsDefaults(t *testing.T) {
	cfg := ConfigFromEnv()
	if !cfg.UseTLS || cfg.Unsafe || !cfg.CertificateNeedFetch {
		t.Errorf("unset environment changed defaults: %+v", cfg)
	}
}

func TestConfigFromEnvStrings(t *testing.T) {
	t.Setenv(EnvCertificateURL, "https://bundles.internal/ca.pem")
	t.Setenv(EnvCertificatePath, "/tmp/ca.pem")
	t.Setenv(EnvProxyURL, "http://proxy.internal:8080")
	t.Setenv(EnvCookieStorePath, "/tmp/cookies.db")

	cfg := ConfigFromEnv()
	if cfg.CertificateURL != "https://bundles.internal/ca.pem" {
		t.Errorf("CertificateURL = %q", cfg.CertificateURL)
	}
	if cfg.CertificatePath != "/tmp/ca.pem" {
		t.Errorf("CertificatePath = %q", cfg.CertificatePath)
	}
	if cfg.ProxyURL != "http://proxy.internal:8080" {
		t.Errorf("ProxyURL = %q", cfg.ProxyURL)
	}
	if cfg.CookieStorePath != "/tmp/cookies.db" {
		t.Errorf("CookieStorePath = %q", cfg.CookieStorePath)
	}
}

func TestConfigFromEnvLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelDebug}, // unrecognized keeps the default
	}
	for _, tt := range tests {
		t.Setenv(EnvLogLevel, tt.value)
		if cfg := ConfigFromEnv(); cfg.LogLevel != tt.want {
			t.Errorf("LogLevel with %q = %v, want %v", tt.value, cfg.LogLevel, tt.want)
		}
	}
}

func TestConfigFromEnvNumericValues(t *testing.T) {
	t.Setenv(EnvMaxRPS, "2.5")
	t.Setenv(EnvTimeout, "5s")

	cfg := ConfigFromEnv()
	if cfg.MaxRPS != 2.5 {
		t.Errorf("MaxRPS = %v, want 2.5", cfg.MaxRPS)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}

	// Garbage falls back to the defaults.
	t.Setenv(EnvMaxRPS, "fast")
	t.Setenv(EnvTimeout, "soon")
	cfg = ConfigFromEnv()
	if cfg.MaxRPS != 0 {
		t.Errorf("MaxRPS = %v, want default 0", cfg.MaxRPS)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.Timeout)
	}
}
