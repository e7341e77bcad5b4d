package securerequests

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every scalar setting the client reads at construction time.
// It is a plain value: set the fields you care about and pass it to New.
// The zero value is not useful; start from DefaultConfig or ConfigFromEnv.
type Config struct {
	// UseTLS enables the hardened TLS settings on the session transport.
	UseTLS bool

	// Unsafe disables certificate verification entirely.
	Unsafe bool

	// CertificateNeedFetch triggers a CA bundle fetch during New.
	CertificateNeedFetch bool

	// CertificateURL is the bundle distribution endpoint.
	CertificateURL string

	// CertificatePath is where the fetched PEM bundle is persisted.
	CertificatePath string

	// CertificateChecksumURL is the companion SHA-256 digest endpoint,
	// consulted when CertificateVerifyChecksum is set and
	// CertificateChecksum is empty.
	CertificateChecksumURL string

	// CertificateChecksum is an explicit expected SHA-256 hex digest for
	// the bundle. Takes precedence over CertificateChecksumURL.
	CertificateChecksum string

	// CertificateVerifyChecksum enables digest verification of the fetched
	// bundle.
	CertificateVerifyChecksum bool

	// CertificateRedactURL redacts the bundle URL in log output.
	CertificateRedactURL bool

	// LogToFile writes log lines to LogPath instead of stderr.
	LogToFile bool

	// LogLevel is the minimum level emitted.
	LogLevel slog.Level

	// LogPath is the log file location when LogToFile is set.
	LogPath string

	// LogExtensive adds the full header and option dump to request logs.
	LogExtensive bool

	// Silent suppresses all log output.
	Silent bool

	// SuppressWarnings mutes the warning emitted when a request goes out
	// without certificate verification.
	SuppressWarnings bool

	// CookieStorePath enables SQLite-backed cookie persistence when
	// non-empty.
	CookieStorePath string

	// MaxRPS is the maximum requests per second (0 = unlimited).
	MaxRPS float64

	// Timeout is the default timeout for all requests.
	Timeout time.Duration

	// ProxyURL is an HTTP or SOCKS5 proxy for all requests.
	ProxyURL string

	// FollowRedirects controls whether redirects are followed by default.
	FollowRedirects bool
}

// DefaultConfig returns the hardcoded defaults.
func DefaultConfig() *Config {
	return &Config{
		UseTLS:               true,
		Unsafe:               false,
		CertificateNeedFetch: true,
		CertificateURL:       "https://curl.se/ca/cacert.pem",
		CertificatePath:      "cacert.pem",
		CertificateChecksumURL: "https://curl.se/ca/cacert.pem.sha256",
		CertificateRedactURL:   true,
		LogLevel:               slog.LevelDebug,
		LogPath:                "secureRequests.log",
		Timeout:                30 * time.Second,
		FollowRedirects:        true,
	}
}

// Environment variable names consulted by ConfigFromEnv.
const (
	EnvUseTLS                    = "SECURE_REQUESTS_USE_TLS"
	EnvUnsafe                    = "SECURE_REQUESTS_UNSAFE"
	EnvCertificateNeedFetch      = "SECURE_REQUESTS_CERTIFICATE_NEED_FETCH"
	EnvCertificateURL            = "SECURE_REQUESTS_CERTIFICATE_URL"
	EnvCertificatePath           = "SECURE_REQUESTS_CERTIFICATE_PATH"
	EnvCertificateChecksumURL    = "SECURE_REQUESTS_CERTIFICATE_CHECKSUM_URL"
	EnvCertificateChecksum       = "SECURE_REQUESTS_CERTIFICATE_CHECKSUM"
	EnvCertificateVerifyChecksum = "SECURE_REQUESTS_CERTIFICATE_VERIFY_CHECKSUM"
	EnvCertificateRedactURL      = "SECURE_REQUESTS_CERTIFICATE_REDACT_URL"
	EnvLogToFile                 = "SECURE_REQUESTS_LOG_TO_FILE"
	EnvLogLevel                  = "SECURE_REQUESTS_LOG_LEVEL"
	EnvLogPath                   = "SECURE_REQUESTS_LOG_PATH"
	EnvLogExtensive              = "SECURE_REQUESTS_LOGEXTENSIVE"
	EnvSilent                    = "SECURE_REQUESTS_SILENT"
	EnvSuppressWarnings          = "SECURE_REQUESTS_SUPPRESS_WARNINGS"
	EnvCookieStorePath           = "SECURE_REQUESTS_COOKIE_STORE_PATH"
	EnvMaxRPS                    = "SECURE_REQUESTS_MAX_RPS"
	EnvTimeout                   = "SECURE_REQUESTS_TIMEOUT"
	EnvProxyURL                  = "SECURE_REQUESTS_PROXY_URL"
)

// ConfigFromEnv builds a Config from SECURE_REQUESTS_* environment
// variables, falling back to the defaults for anything unset. An optional
// .env file in the working directory is loaded first; a missing file is not
// an error.
func ConfigFromEnv() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.UseTLS = getEnvBool(EnvUseTLS, cfg.UseTLS)
	cfg.Unsafe = getEnvBool(EnvUnsafe, cfg.Unsafe)
	cfg.CertificateNeedFetch = getEnvBool(EnvCertificateNeedFetch, cfg.CertificateNeedFetch)
	cfg.CertificateURL = getEnvString(EnvCertificateURL, cfg.CertificateURL)
	cfg.CertificatePath = getEnvString(EnvCertificatePath, cfg.CertificatePath)
	cfg.CertificateChecksumURL = getEnvString(EnvCertificateChecksumURL, cfg.CertificateChecksumURL)
	cfg.CertificateChecksum = getEnvString(EnvCertificateChecksum, cfg.CertificateChecksum)
	cfg.CertificateVerifyChecksum = getEnvBool(EnvCertificateVerifyChecksum, cfg.CertificateVerifyChecksum)
	cfg.CertificateRedactURL = getEnvBool(EnvCertificateRedactURL, cfg.CertificateRedactURL)
	cfg.LogToFile = getEnvBool(EnvLogToFile, cfg.LogToFile)
	cfg.LogLevel = getEnvLevel(EnvLogLevel, cfg.LogLevel)
	cfg.LogPath = getEnvString(EnvLogPath, cfg.LogPath)
	cfg.LogExtensive = getEnvBool(EnvLogExtensive, cfg.LogExtensive)
	cfg.Silent = getEnvBool(EnvSilent, cfg.Silent)
	cfg.SuppressWarnings = getEnvBool(EnvSuppressWarnings, cfg.SuppressWarnings)
	cfg.CookieStorePath = getEnvString(EnvCookieStorePath, cfg.CookieStorePath)
	cfg.MaxRPS = getEnvFloat(EnvMaxRPS, cfg.MaxRPS)
	cfg.Timeout = getEnvDuration(EnvTimeout, cfg.Timeout)
	cfg.ProxyURL = getEnvString(EnvProxyURL, cfg.ProxyURL)
	return cfg
}

func getEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvBool treats true/1/t/y/yes (case-insensitive) as true; any other
// set value is false, unset keeps the default.
func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "true", "1", "t", "y", "yes":
		return true
	}
	return false
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	switch strings.ToUpper(os.Getenv(key)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return def
}
