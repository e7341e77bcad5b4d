package securerequests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/JulianStiebler/secureRequests/httperr"
)

// supportedMethods is the closed verb set. Anything else is a
// configuration error raised before any I/O.
var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// BasicAuth holds credentials for HTTP basic authentication.
type BasicAuth struct {
	Username string
	Password string
}

// RequestOptions carries the per-request pass-through options. All fields
// are optional; the zero value means "use the client defaults".
type RequestOptions struct {
	// Headers replaces the client's header set for this request.
	Headers map[string]string

	// Params is appended to the URL query string.
	Params url.Values

	// Form is sent as an application/x-www-form-urlencoded body.
	Form url.Values

	// JSON is marshaled and sent as an application/json body.
	JSON any

	// Body is sent verbatim when Form and JSON are unset.
	Body []byte

	// ContentType overrides the Content-Type derived from the body kind.
	ContentType string

	// Cookies are extra cookies for this request only.
	Cookies map[string]string

	// BasicAuth sets the Authorization header from a credential pair.
	BasicAuth *BasicAuth

	// Timeout overrides the client-level timeout for this request.
	// Zero means use the client default.
	Timeout time.Duration

	// FollowRedirects overrides the client-level redirect setting for
	// this request. nil means use the client default.
	FollowRedirects *bool

	// Stream leaves a successful response body unread; the caller reads
	// and closes Response.Raw. Failure responses are still drained so
	// their body text lands in the returned error.
	Stream bool
}

// Response represents a completed HTTP response.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Reason is the reason phrase (e.g., "OK").
	Reason string

	// Headers contains the response headers.
	Headers http.Header

	// Body is the raw response body. Empty when Stream was requested.
	Body []byte

	// Raw is the unread body stream, set only for streamed responses.
	// The caller owns closing it.
	Raw io.ReadCloser

	// ContentLength is the content length from the response header.
	ContentLength int64

	// Duration is the round-trip time for the request.
	Duration time.Duration

	// URL is the final URL after any redirects.
	URL string

	// Protocol is the protocol version (e.g., "HTTP/1.1", "HTTP/2.0").
	Protocol string
}

// BodyString returns the response body as a string.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// Client is the request façade: it owns an HTTP session with the configured
// TLS policy, a browser-like header set, and a cookie dictionary, and routes
// every verb through a single send-and-classify path.
//
// A Client is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	certs      *certManager
	store      *CookieStore
	limiter    *rate.Limiter
	log        *slog.Logger
	logCloser  io.Closer

	headers map[string]string
	cookies map[string]string

	// randInt picks a uniform index; replaceable for deterministic
	// header generation.
	randInt func(n int) int

	seedHeaders map[string]string
}

// Option customizes a Client during New.
type Option func(*Client)

// WithHeaders seeds the generated header set with overrides; keys outside
// the default template are appended as-is.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) { c.seedHeaders = headers }
}

// WithRandInt replaces the uniform choice function used by header
// generation. Pinning it to func(int) int { return 0 } makes generation
// deterministic.
func WithRandInt(fn func(n int) int) Option {
	return func(c *Client) { c.randInt = fn }
}

// WithHTTPClient supplies a pre-built session. The client uses it as-is:
// the TLS trust state and proxy settings from the config are not applied
// on top of it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a ready Client from the config. A nil config means defaults.
//
// Certificate acquisition failures never fail construction: the client
// degrades to unverified operation, per the availability-over-strictness
// policy. Only genuine configuration errors (a malformed proxy URL) are
// returned.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger, logCloser := newLogger(cfg)
	c := &Client{
		cfg:       cfg,
		log:       logger,
		logCloser: logCloser,
		cookies:   make(map[string]string),
		randInt:   rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.certs = newCertManager(cfg, logger)
	if cfg.CertificateNeedFetch {
		if err := c.certs.Ensure(context.Background(), false); err != nil {
			logger.Warn("continuing without certificate verification",
				slog.String("category", "certificate"),
				slog.String("error", err.Error()))
		}
	} else {
		c.certs.resolve()
	}

	if c.httpClient == nil {
		hc, err := c.newSession()
		if err != nil {
			c.closeQuietly()
			return nil, err
		}
		c.httpClient = hc
	}

	if cfg.MaxRPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.MaxRPS), 1)
	}

	c.headers = c.GenerateHeaders(c.seedHeaders)

	if cfg.CookieStorePath != "" {
		store, err := NewCookieStore(cfg.CookieStorePath)
		if err != nil {
			logger.Error("cookie store unavailable, continuing without persistence",
				slog.String("category", "cookie"),
				slog.String("error", err.Error()))
		} else {
			c.store = store
			loaded, err := store.LoadAll(context.Background())
			if err != nil {
				logger.Error("failed to load persisted cookies",
					slog.String("category", "cookie"),
					slog.String("error", err.Error()))
			} else {
				c.cookies = loaded
			}
		}
	}

	return c, nil
}

// newSession builds the underlying HTTP session from the config and the
// resolved trust state.
func (c *Client) newSession() (*http.Client, error) {
	transport := &http.Transport{
		TLSClientConfig:   c.certs.tlsConfig(c.cfg),
		ForceAttemptHTTP2: true,
	}

	if c.cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(c.cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		if proxyURL.Scheme == "" || proxyURL.Host == "" {
			return nil, fmt.Errorf("invalid proxy URL: missing scheme or host")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	hc := &http.Client{
		Transport: transport,
		Timeout:   c.cfg.Timeout,
	}
	if !c.cfg.FollowRedirects {
		hc.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return hc, nil
}

// Close releases the cookie store and log file, if any.
func (c *Client) Close() error {
	var firstErr error
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			firstErr = err
		}
	}
	if c.logCloser != nil {
		if err := c.logCloser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Client) closeQuietly() {
	_ = c.Close()
}

// EnsureCertificate re-runs certificate acquisition. With force the bundle
// is re-fetched even when a local file exists. The session is rebuilt so a
// trust change takes effect on subsequent requests.
func (c *Client) EnsureCertificate(ctx context.Context, force bool) error {
	err := c.certs.Ensure(ctx, force)
	if hc, sessionErr := c.newSession(); sessionErr == nil {
		c.httpClient = hc
	}
	return err
}

// Verified reports whether requests currently go out with certificate
// verification active.
func (c *Client) Verified() bool {
	return c.certs.TrustPath() != "" && !c.cfg.Unsafe
}

// Request issues a single HTTP request. The method must be one of GET,
// POST, PUT, DELETE, or PATCH; anything else returns an error before any
// network access. A non-success response status is returned as an error
// from the httperr package; the caller never receives an error response
// object silently.
func (c *Client) Request(ctx context.Context, method, rawURL string, opts *RequestOptions) (*Response, error) {
	if !supportedMethods[method] {
		return nil, fmt.Errorf("unsupported HTTP method: %q", method)
	}
	return c.send(ctx, method, rawURL, opts)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.send(ctx, http.MethodGet, url, opts)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.send(ctx, http.MethodPost, url, opts)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.send(ctx, http.MethodPut, url, opts)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.send(ctx, http.MethodDelete, url, opts)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.send(ctx, http.MethodPatch, url, opts)
}

// send is the single choke point every verb passes through: rate limiting,
// request assembly, the session call, response classification, and logging.
func (c *Client) send(ctx context.Context, method, rawURL string, opts *RequestOptions) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	var bodyReader io.Reader
	contentType := opts.ContentType
	switch {
	case opts.JSON != nil:
		b, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("encoding json body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
		if contentType == "" {
			contentType = "application/json"
		}
	case opts.Form != nil:
		bodyReader = strings.NewReader(opts.Form.Encode())
		if contentType == "" {
			contentType = "application/x-www-form-urlencoded"
		}
	case len(opts.Body) > 0:
		bodyReader = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if len(opts.Params) > 0 {
		q := req.URL.Query()
		for k, vs := range opts.Params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	// Effective headers: the caller-supplied set wins wholesale.
	headers := c.headers
	if opts.Headers != nil {
		headers = opts.Headers
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	for name, value := range opts.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	if opts.BasicAuth != nil {
		req.SetBasicAuth(opts.BasicAuth.Username, opts.BasicAuth.Password)
	}

	// Per-request overrides get a shallow copy of the session.
	httpClient := c.httpClient
	if opts.Timeout > 0 || opts.FollowRedirects != nil {
		cc := *c.httpClient
		if opts.Timeout > 0 {
			cc.Timeout = opts.Timeout
		}
		if opts.FollowRedirects != nil {
			if *opts.FollowRedirects {
				cc.CheckRedirect = nil
			} else {
				cc.CheckRedirect = func(req *http.Request, via []*http.Request) error {
					return http.ErrUseLastResponse
				}
			}
		}
		httpClient = &cc
	}

	if !c.Verified() && !c.cfg.SuppressWarnings {
		c.log.Warn("request issued without certificate verification",
			slog.String("category", "tls"))
	}

	start := time.Now()
	httpResp, err := httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode:    httpResp.StatusCode,
		Reason:        reasonPhrase(httpResp),
		Headers:       httpResp.Header,
		ContentLength: httpResp.ContentLength,
		Duration:      duration,
		URL:           httpResp.Request.URL.String(),
		Protocol:      fmt.Sprintf("HTTP/%d.%d", httpResp.ProtoMajor, httpResp.ProtoMinor),
	}

	success := httpResp.StatusCode >= 200 && httpResp.StatusCode < 400
	if opts.Stream && success {
		resp.Raw = httpResp.Body
	} else {
		body, readErr := func() ([]byte, error) {
			defer httpResp.Body.Close()
			return io.ReadAll(httpResp.Body)
		}()
		if readErr != nil {
			return nil, fmt.Errorf("reading response body: %w", readErr)
		}
		resp.Body = body
	}

	c.logRequest(method, rawURL, resp, headers, opts)

	if err := httperr.FromResponse(resp.StatusCode, resp.Reason, string(resp.Body)); err != nil {
		return nil, err
	}
	return resp, nil
}

// reasonPhrase strips the numeric prefix from the status line.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return resp.Status[len(prefix):]
	}
	return http.StatusText(resp.StatusCode)
}

// logRequest emits the per-request log line.
func (c *Client) logRequest(method, rawURL string, resp *Response, headers map[string]string, opts *RequestOptions) {
	if c.cfg.Silent {
		return
	}

	safety := "[UNSAFE]"
	if c.Verified() {
		safety = "[SAFE]"
	}
	tlsStatus := "[NO TLS]"
	if c.cfg.UseTLS {
		tlsStatus = "[TLS]"
	}

	msg := fmt.Sprintf("%s%s %s request to %s with Status Code %d - %s",
		safety, tlsStatus, method, rawURL, resp.StatusCode, resp.Reason)

	attrs := []any{
		slog.String("category", "request"),
		slog.String("request_id", uuid.NewString()),
	}
	if c.cfg.LogExtensive {
		attrs = append(attrs,
			slog.Any("headers", headers),
			slog.Any("params", opts.Params),
		)
	}
	c.log.Info(msg, attrs...)
}
