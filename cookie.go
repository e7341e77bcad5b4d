package securerequests

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CookieAttributes is the attribute bag stored behind a single cookie name.
// Values are string, bool, int, or time.Time.
type CookieAttributes map[CookieAttributeKey]any

// cookieTimeLayout is the wire format for time-valued attributes.
const cookieTimeLayout = time.RFC3339

// serializeCookieAttributes flattens the bag into "key=value" pairs joined
// by "|". Keys are emitted in sorted order so the wire form is stable.
func serializeCookieAttributes(attrs CookieAttributes) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatCookieValue(attrs[CookieAttributeKey(k)]))
	}
	return strings.Join(parts, "|")
}

func formatCookieValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case time.Time:
		return v.Format(cookieTimeLayout)
	default:
		return fmt.Sprint(v)
	}
}

// deserializeCookieAttributes parses a serialized bag back into typed
// values. Recognized keys get their declared type back, so a bag built only
// from known keys round-trips exactly. Unknown keys survive as raw string
// keys with string values; a segment without "=" is logged and skipped,
// never fatal.
func deserializeCookieAttributes(s string, log *slog.Logger) CookieAttributes {
	attrs := make(CookieAttributes)
	if s == "" {
		return attrs
	}
	for _, segment := range strings.Split(s, "|") {
		idx := strings.IndexByte(segment, '=')
		if idx < 0 {
			log.Warn("skipping malformed cookie attribute segment",
				slog.String("category", "cookie"),
				slog.String("segment", segment))
			continue
		}
		name, raw := segment[:idx], segment[idx+1:]
		key, known := ParseCookieAttributeKey(name)
		if !known {
			log.Debug("cookie attribute key outside the known set, kept as raw string",
				slog.String("category", "cookie"),
				slog.String("key", name))
			attrs[key] = raw
			continue
		}
		attrs[key] = parseCookieValue(key, raw)
	}
	return attrs
}

// parseCookieValue re-types the raw string for keys with a declared value
// type. A value that fails to parse stays a string.
func parseCookieValue(key CookieAttributeKey, raw string) any {
	switch key {
	case CookieAttrSecure, CookieAttrHTTPOnly, CookieAttrSameParty, CookieAttrPartitioned:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	case CookieAttrMaxAge:
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	case CookieAttrExpires:
		if t, err := time.Parse(cookieTimeLayout, raw); err == nil {
			return t
		}
	}
	return raw
}

// UpdateCookie serializes the attribute bag and stores it under the cookie
// name in the session's cookie dictionary.
func (c *Client) UpdateCookie(key CookieKey, attrs CookieAttributes) {
	c.setCookieValue(string(key), serializeCookieAttributes(attrs))
}

// UpdateCookieString stores a pre-serialized attribute string. The input is
// deserialized and re-serialized first, which normalizes it and surfaces
// diagnostics for malformed segments; for well-formed input the round trip
// is idempotent.
func (c *Client) UpdateCookieString(key CookieKey, serialized string) {
	attrs := deserializeCookieAttributes(serialized, c.log)
	c.setCookieValue(string(key), serializeCookieAttributes(attrs))
}

// UpdateCookies sets or updates multiple cookies at once.
func (c *Client) UpdateCookies(cookies map[CookieKey]CookieAttributes) {
	for key, attrs := range cookies {
		c.UpdateCookie(key, attrs)
	}
}

// GetCookie returns the deserialized attribute bag for the cookie, or
// (nil, false) when the name is absent.
func (c *Client) GetCookie(key CookieKey) (CookieAttributes, bool) {
	v, ok := c.cookies[string(key)]
	if !ok {
		return nil, false
	}
	return deserializeCookieAttributes(v, c.log), true
}

// RemoveCookie deletes the cookie. Removing a name that was never set is a
// no-op.
func (c *Client) RemoveCookie(key CookieKey) {
	name := string(key)
	if _, ok := c.cookies[name]; !ok {
		return
	}
	delete(c.cookies, name)
	if c.store != nil {
		if err := c.store.Delete(context.Background(), name); err != nil {
			c.log.Error("failed to delete persisted cookie",
				slog.String("category", "cookie"),
				slog.String("name", name),
				slog.String("error", err.Error()))
		}
	}
}

// AllCookies enumerates every cookie in the dictionary with its deserialized
// attributes. A name outside the known cookie key set is still returned,
// keyed by its raw name, with a diagnostic logged.
func (c *Client) AllCookies() map[CookieKey]CookieAttributes {
	all := make(map[CookieKey]CookieAttributes, len(c.cookies))
	for name, value := range c.cookies {
		if !KnownCookieKey(name) {
			c.log.Debug("cookie name outside the known key set",
				slog.String("category", "cookie"),
				slog.String("name", name))
		}
		all[CookieKey(name)] = deserializeCookieAttributes(value, c.log)
	}
	return all
}

func (c *Client) setCookieValue(name, value string) {
	c.cookies[name] = value
	if c.store != nil {
		if err := c.store.Save(context.Background(), name, value); err != nil {
			c.log.Error("failed to persist cookie",
				slog.String("category", "cookie"),
				slog.String("name", name),
				slog.String("error", err.Error()))
		}
	}
}
