// Package securerequests is a convenience wrapper around net/http for
// issuing requests with a managed TLS trust bundle, browser-like headers,
// typed header/cookie keys, and per-status error classification.
//
// A Client is built once from a Config and then used for every request:
//
//	cfg := securerequests.DefaultConfig()
//	cfg.CertificateVerifyChecksum = true
//	client, err := securerequests.New(cfg)
//	if err != nil {
//		// only configuration errors land here; certificate trouble
//		// degrades to unverified operation instead
//	}
//	defer client.Close()
//
//	client.SetHeader(securerequests.HeaderAuthorization, "Bearer token123")
//	resp, err := client.Get(ctx, "https://httpbin.org/get", nil)
//	if errors.Is(err, httperr.ErrTooManyRequests) {
//		// back off
//	}
//
// Construction fetches the CA bundle when configured to, optionally
// verifying its SHA-256 digest against the published companion file, and
// persists it for later runs. Any failure along that path is logged and the
// client continues without certificate verification; requests, in contrast,
// always surface non-success status codes as errors from the httperr
// package.
//
// A Client is not safe for concurrent use from multiple goroutines.
package securerequests
