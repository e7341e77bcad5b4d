package securerequests

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Sentinel errors for the certificate fetch decision points.
var (
	errEmptyBundle      = errors.New("certificate: bundle response body is empty")
	errChecksumMismatch = errors.New("certificate: checksum mismatch")
)

// certManager acquires and maintains the CA trust bundle for a Client.
// It owns a bare HTTP client with the system trust store, since the bundle
// fetch itself happens before any custom trust is established.
//
// Failures here never propagate out of Client construction; they degrade
// the trust state instead so the client stays usable unverified.
type certManager struct {
	cfg    *Config
	client *http.Client
	log    *slog.Logger

	// trustPath is the PEM bundle the client should trust.
	// Empty means no certificate verification.
	trustPath string
}

func newCertManager(cfg *Config, log *slog.Logger) *certManager {
	return &certManager{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// TrustPath returns the currently trusted bundle path, or "" when the
// client runs unverified.
func (m *certManager) TrustPath() string { return m.trustPath }

// resolve marks an already-present bundle file as the trust material
// without any network access.
func (m *certManager) resolve() {
	if _, err := os.Stat(m.cfg.CertificatePath); err == nil {
		m.trustPath = m.cfg.CertificatePath
	}
}

// Ensure makes sure a usable CA bundle exists at the configured path, or
// explicitly records that there is none.
//
// If the file already exists and force is false it is adopted as-is. A
// fetch failure or non-200 status degrades the trust state to none. An
// empty 200 body or a checksum mismatch aborts the fetch without touching
// the previous bundle or trust state: a previously valid bundle is never
// overwritten by unverified bytes.
func (m *certManager) Ensure(ctx context.Context, force bool) error {
	if _, err := os.Stat(m.cfg.CertificatePath); err == nil {
		m.trustPath = m.cfg.CertificatePath
		if !force {
			return nil
		}
	}

	body, err := m.fetch(ctx, m.cfg.CertificateURL)
	if err != nil {
		m.trustPath = ""
		m.log.Error("failed to fetch certificate bundle, continuing without verification",
			slog.String("category", "certificate"),
			slog.String("url", m.displayURL(m.cfg.CertificateURL)),
			slog.String("error", err.Error()))
		return err
	}

	if len(body) == 0 {
		m.log.Error("certificate bundle response was empty, keeping previous trust state",
			slog.String("category", "certificate"),
			slog.String("url", m.displayURL(m.cfg.CertificateURL)))
		return errEmptyBundle
	}

	if m.cfg.CertificateVerifyChecksum {
		expected := m.cfg.CertificateChecksum
		if expected == "" {
			expected, err = m.fetchChecksum(ctx)
			if err != nil {
				m.log.Error("failed to fetch bundle checksum, keeping previous trust state",
					slog.String("category", "certificate"),
					slog.String("error", err.Error()))
				return err
			}
		}
		sum := sha256.Sum256(body)
		if !strings.EqualFold(hex.EncodeToString(sum[:]), expected) {
			m.log.Error("certificate bundle checksum mismatch, keeping previous bundle",
				slog.String("category", "certificate"),
				slog.String("expected", expected))
			return errChecksumMismatch
		}
	}

	if err := os.WriteFile(m.cfg.CertificatePath, body, 0o644); err != nil {
		m.log.Error("failed to write certificate bundle",
			slog.String("category", "certificate"),
			slog.String("path", m.cfg.CertificatePath),
			slog.String("error", err.Error()))
		return fmt.Errorf("certificate: write bundle: %w", err)
	}

	m.trustPath = m.cfg.CertificatePath
	m.log.Info("fetched certificate bundle",
		slog.String("category", "certificate"),
		slog.String("path", m.cfg.CertificatePath))
	return nil
}

func (m *certManager) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("certificate: create request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("certificate: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("certificate: fetch: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("certificate: read body: %w", err)
	}
	return body, nil
}

// fetchChecksum retrieves the companion digest file and returns its first
// whitespace-separated token, the hex digest.
func (m *certManager) fetchChecksum(ctx context.Context) (string, error) {
	body, err := m.fetch(ctx, m.cfg.CertificateChecksumURL)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(body))
	if len(fields) == 0 {
		return "", errors.New("certificate: checksum response is empty")
	}
	return fields[0], nil
}

// displayURL redacts everything past the host when configured, so long
// pre-signed or internal bundle URLs never land in logs.
func (m *certManager) displayURL(rawURL string) string {
	if !m.cfg.CertificateRedactURL {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[redacted]"
	}
	return u.Scheme + "://" + u.Host + "/[redacted]"
}

// tlsConfig builds the session TLS settings from the current trust state.
// With a trusted bundle the pool is loaded from disk; without one, and in
// unsafe mode, verification is off. A bundle that fails to load degrades
// to unverified rather than failing construction.
func (m *certManager) tlsConfig(cfg *Config) *tls.Config {
	tc := &tls.Config{}
	if cfg.UseTLS && !cfg.Unsafe {
		tc.MinVersion = tls.VersionTLS12
	}

	if cfg.Unsafe || m.trustPath == "" {
		tc.InsecureSkipVerify = true
		return tc
	}

	pem, err := os.ReadFile(m.trustPath)
	if err != nil {
		m.log.Error("failed to read trusted bundle, continuing without verification",
			slog.String("category", "certificate"),
			slog.String("path", m.trustPath),
			slog.String("error", err.Error()))
		m.trustPath = ""
		tc.InsecureSkipVerify = true
		return tc
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		m.log.Error("trusted bundle contains no usable certificates, continuing without verification",
			slog.String("category", "certificate"),
			slog.String("path", m.trustPath))
		m.trustPath = ""
		tc.InsecureSkipVerify = true
		return tc
	}

	tc.RootCAs = pool
	return tc
}
