// Package httperr translates HTTP response status codes into typed errors.
//
// Every response outside the 2xx/3xx success/redirect range maps to an
// *Error carrying the status code, reason phrase, and body text. Each code
// covered by the dispatch table also wraps a per-status sentinel, so callers
// can match a specific class with errors.Is or the whole family with
// errors.As:
//
//	resp, err := client.Get(ctx, url, nil)
//	if errors.Is(err, httperr.ErrNotFound) {
//	    // handle 404 specifically
//	}
//	var httpErr *httperr.Error
//	if errors.As(err, &httpErr) {
//	    // any non-success status
//	}
package httperr

import "fmt"

// Error is the base type for all HTTP status errors.
type Error struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Reason is the reason phrase (e.g., "Not Found").
	Reason string

	// Body is the response body text.
	Body string

	sentinel error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d Error: %s - %s", e.StatusCode, e.Reason, e.Body)
}

// Unwrap exposes the per-status sentinel so errors.Is selects the class.
func (e *Error) Unwrap() error { return e.sentinel }

// FromResponse classifies a completed response. It returns nil for any
// status in the 2xx/3xx range, the mapped per-status error for codes in the
// dispatch table, and a generic ErrHTTP-wrapped error for every other
// failure code. This is the single choke point every request passes through.
func FromResponse(statusCode int, reason, body string) error {
	sentinel, ok := statusCodeErrors[statusCode]
	if !ok {
		if statusCode >= 200 && statusCode < 400 {
			return nil
		}
		sentinel = ErrHTTP
	}
	return &Error{
		StatusCode: statusCode,
		Reason:     reason,
		Body:       body,
		sentinel:   sentinel,
	}
}
