package securerequests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/JulianStiebler/secureRequests/httperr"
)

func boolPtr(b bool) *bool { return &b }

// ---------------------------------------------------------------------------
// Verb validation
// ---------------------------------------------------------------------------

func TestRequestRejectsUnsupportedMethod(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := newTestClient(t)
	for _, method := range []string{"TRACE", "OPTIONS", "HEAD", "get", "Post", ""} {
		resp, err := c.Request(context.Background(), method, srv.URL, nil)
		if err == nil {
			t.Errorf("Request(%q) = nil error, want rejection", method)
		}
		if resp != nil {
			t.Errorf("Request(%q) returned a response", method)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("server saw %d requests, want 0 for unsupported verbs", hits.Load())
	}
}

func TestVerbHelpersUseTheirMethod(t *testing.T) {
	var seen atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.Store(r.Method)
	}))
	defer srv.Close()

	c := newTestClient(t)
	ctx := context.Background()
	calls := []struct {
		name string
		call func() (*Response, error)
		want string
	}{
		{"Get", func() (*Response, error) { return c.Get(ctx, srv.URL, nil) }, http.MethodGet},
		{"Post", func() (*Response, error) { return c.Post(ctx, srv.URL, nil) }, http.MethodPost},
		{"Put", func() (*Response, error) { return c.Put(ctx, srv.URL, nil) }, http.MethodPut},
		{"Delete", func() (*Response, error) { return c.Delete(ctx, srv.URL, nil) }, http.MethodDelete},
		{"Patch", func() (*Response, error) { return c.Patch(ctx, srv.URL, nil) }, http.MethodPatch},
	}
	for _, tc := range calls {
		if _, err := tc.call(); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got := seen.Load(); got != tc.want {
			t.Errorf("%s sent method %v, want %s", tc.name, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Response classification
// ---------------------------------------------------------------------------

func TestSuccessResponsePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Answer", "42")
		fmt.Fprint(w, "hello")
	}))
	defer srv.Close()

	c := newTestClient(t)
	resp, err := c.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.BodyString() != "hello" {
		t.Errorf("Body = %q, want hello", resp.BodyString())
	}
	if resp.Headers.Get("X-Answer") != "42" {
		t.Errorf("X-Answer header = %q", resp.Headers.Get("X-Answer"))
	}
	if resp.Duration <= 0 {
		t.Error("Duration not recorded")
	}
	if resp.Protocol == "" {
		t.Error("Protocol not recorded")
	}
}

func TestFailureStatusBecomesTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "missing")
	}))
	defer srv.Close()

	c := newTestClient(t)
	resp, err := c.Get(context.Background(), srv.URL, nil)
	if resp != nil {
		t.Error("failure status must not return a response object")
	}
	if !errors.Is(err, httperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var httpErr *httperr.Error
	if !errors.As(err, &httpErr) {
		t.Fatal("errors.As(*httperr.Error) = false")
	}
	if httpErr.StatusCode != 404 || httpErr.Body != "missing" {
		t.Errorf("Error = %+v, want status 404 with body text", httpErr)
	}
	for _, want := range []string{"404", "Not Found", "missing"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error message %q missing %q", err.Error(), want)
		}
	}
}

func TestRedirectReturnedWhenNotFollowed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/redir", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "arrived")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t)

	// Client default follows the redirect.
	resp, err := c.Get(context.Background(), srv.URL+"/redir", nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.BodyString() != "arrived" {
		t.Errorf("Body = %q, want redirect followed", resp.BodyString())
	}

	// The per-request override surfaces the 302 itself, unmodified.
	resp, err = c.Get(context.Background(), srv.URL+"/redir", &RequestOptions{
		FollowRedirects: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Get without redirects: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("StatusCode = %d, want 302 surfaced", resp.StatusCode)
	}
}

// ---------------------------------------------------------------------------
// Request assembly
// ---------------------------------------------------------------------------

func TestPerRequestHeadersReplaceWholesale(t *testing.T) {
	var gotCustom, gotFetchMode atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCustom.Store(r.Header.Get("X-Custom"))
		gotFetchMode.Store(r.Header.Get("Sec-Fetch-Mode"))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Get(context.Background(), srv.URL, &RequestOptions{
		Headers: map[string]string{"X-Custom": "yes"},
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotCustom.Load() != "yes" {
		t.Errorf("X-Custom = %v, want yes", gotCustom.Load())
	}
	// The client's generated set does not leak through the override.
	if gotFetchMode.Load() != "" {
		t.Errorf("Sec-Fetch-Mode = %v, want absent", gotFetchMode.Load())
	}
}

func TestFormBody(t *testing.T) {
	var gotBody, gotType atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody.Store(string(b))
		gotType.Store(r.Header.Get("Content-Type"))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Post(context.Background(), srv.URL, &RequestOptions{
		Form: url.Values{"user": {"alice"}, "action": {"login"}},
	})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if gotType.Load() != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %v", gotType.Load())
	}
	body := gotBody.Load().(string)
	if !strings.Contains(body, "user=alice") || !strings.Contains(body, "action=login") {
		t.Errorf("form body = %q", body)
	}
}

func TestJSONBody(t *testing.T) {
	var gotBody, gotType atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody.Store(string(b))
		gotType.Store(r.Header.Get("Content-Type"))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Post(context.Background(), srv.URL, &RequestOptions{
		JSON: map[string]string{"key": "value"},
	})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if gotType.Load() != "application/json" {
		t.Errorf("Content-Type = %v", gotType.Load())
	}
	if gotBody.Load() != `{"key":"value"}` {
		t.Errorf("json body = %v", gotBody.Load())
	}
}

func TestQueryParamsAppended(t *testing.T) {
	var gotQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Get("q"))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Get(context.Background(), srv.URL+"?page=2", &RequestOptions{
		Params: url.Values{"q": {"search term"}},
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotQuery.Load() != "search term" {
		t.Errorf("q = %v, want search term", gotQuery.Load())
	}
}

func TestCookiesSentWithRequest(t *testing.T) {
	var gotSession, gotExtra atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("session_id"); err == nil {
			gotSession.Store(ck.Value)
		}
		if ck, err := r.Cookie("extra"); err == nil {
			gotExtra.Store(ck.Value)
		}
	}))
	defer srv.Close()

	c := newTestClient(t)
	c.UpdateCookie(CookieSessionID, CookieAttributes{CookieAttrDomain: "example.com"})

	_, err := c.Get(context.Background(), srv.URL, &RequestOptions{
		Cookies: map[string]string{"extra": "one-shot"},
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotSession.Load() != "domain=example.com" {
		t.Errorf("session_id cookie = %v", gotSession.Load())
	}
	if gotExtra.Load() != "one-shot" {
		t.Errorf("extra cookie = %v", gotExtra.Load())
	}
}

func TestBasicAuthApplied(t *testing.T) {
	var gotUser, gotPass atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, _ := r.BasicAuth()
		gotUser.Store(u)
		gotPass.Store(p)
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Get(context.Background(), srv.URL, &RequestOptions{
		BasicAuth: &BasicAuth{Username: "alice", Password: "s3cret"},
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotUser.Load() != "alice" || gotPass.Load() != "s3cret" {
		t.Errorf("credentials = %v:%v", gotUser.Load(), gotPass.Load())
	}
}

// ---------------------------------------------------------------------------
// Streaming
// ---------------------------------------------------------------------------

func TestStreamLeavesBodyUnread(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "streamed payload")
	}))
	defer srv.Close()

	c := newTestClient(t)
	resp, err := c.Get(context.Background(), srv.URL, &RequestOptions{Stream: true})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.Body) != 0 {
		t.Error("streamed response must not pre-read the body")
	}
	if resp.Raw == nil {
		t.Fatal("Raw = nil for a streamed success")
	}
	defer resp.Raw.Close()

	b, err := io.ReadAll(resp.Raw)
	if err != nil {
		t.Fatalf("reading stream: %v", err)
	}
	if string(b) != "streamed payload" {
		t.Errorf("stream = %q", b)
	}
}

func TestStreamFailureStillCarriesBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream exploded")
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Get(context.Background(), srv.URL, &RequestOptions{Stream: true})
	if !errors.Is(err, httperr.ErrBadGateway) {
		t.Fatalf("err = %v, want ErrBadGateway", err)
	}
	if !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("error %q missing the drained body text", err.Error())
	}
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNewRejectsMalformedProxy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CertificateNeedFetch = false
	cfg.Silent = true
	cfg.ProxyURL = "not a proxy"

	if _, err := New(cfg); err == nil {
		t.Fatal("New = nil error, want proxy validation failure")
	}
}

func TestWithHTTPClientUsedAsIs(t *testing.T) {
	hc := &http.Client{}
	c, err := New(&Config{Silent: true, FollowRedirects: true}, WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()
	if c.httpClient != hc {
		t.Error("injected session not used as-is")
	}
}

func TestVerifiedReflectsTrustState(t *testing.T) {
	c := newTestClient(t)
	if c.Verified() {
		t.Error("Verified = true with no bundle on disk")
	}

	writeBundle(t, c.cfg.CertificatePath, selfSignedPEM(t))
	if err := c.EnsureCertificate(context.Background(), false); err != nil {
		t.Fatalf("EnsureCertificate: %v", err)
	}
	if !c.Verified() {
		t.Error("Verified = false after adopting an existing bundle")
	}

	c.cfg.Unsafe = true
	if c.Verified() {
		t.Error("Verified = true in unsafe mode")
	}
}
