package securerequests

// HeaderKey identifies a known HTTP request or response header. The set is
// closed; unknown header names are passed around as plain strings by the
// callers that need them.
type HeaderKey string

// String returns the canonical header name.
func (k HeaderKey) String() string { return string(k) }

// Known header keys.
const (
	HeaderAccept                         HeaderKey = "Accept"
	HeaderAcceptEncoding                 HeaderKey = "Accept-Encoding"
	HeaderAcceptLanguage                 HeaderKey = "Accept-Language"
	HeaderAccessControlAllowHeaders      HeaderKey = "Access-Control-Allow-Headers"
	HeaderAccessControlAllowMethods      HeaderKey = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowOrigin       HeaderKey = "Access-Control-Allow-Origin"
	HeaderAccessControlExposeHeaders     HeaderKey = "Access-Control-Expose-Headers"
	HeaderAuthorization                  HeaderKey = "Authorization"
	HeaderCacheControl                   HeaderKey = "Cache-Control"
	HeaderConnection                     HeaderKey = "Connection"
	HeaderContentType                    HeaderKey = "Content-Type"
	HeaderCookie                         HeaderKey = "Cookie"
	HeaderDNT                            HeaderKey = "DNT"
	HeaderETag                           HeaderKey = "ETag"
	HeaderFeaturePolicy                  HeaderKey = "X-Feature-Policy"
	HeaderForwardedFor                   HeaderKey = "X-Forwarded-For"
	HeaderForwardedHost                  HeaderKey = "X-Forwarded-Host"
	HeaderForwardedProto                 HeaderKey = "X-Forwarded-Proto"
	HeaderForwardedServer                HeaderKey = "X-Forwarded-Server"
	HeaderFrameOptions                   HeaderKey = "X-Frame-Options"
	HeaderHTTPMethodOverride             HeaderKey = "X-HTTP-Method-Override"
	HeaderIfModifiedSince                HeaderKey = "If-Modified-Since"
	HeaderIfNoneMatch                    HeaderKey = "If-None-Match"
	HeaderLastModified                   HeaderKey = "Last-Modified"
	HeaderLocation                       HeaderKey = "Location"
	HeaderOrigin                         HeaderKey = "Origin"
	HeaderPrefer                         HeaderKey = "Prefer"
	HeaderPoweredBy                      HeaderKey = "X-Powered-By"
	HeaderProxyAuthorization             HeaderKey = "Proxy-Authorization"
	HeaderRealIP                         HeaderKey = "X-Real-IP"
	HeaderRateLimitLimit                 HeaderKey = "X-RateLimit-Limit"
	HeaderRateLimitRemaining             HeaderKey = "X-RateLimit-Remaining"
	HeaderRateLimitReset                 HeaderKey = "X-RateLimit-Reset"
	HeaderReferer                        HeaderKey = "Referer"
	HeaderRequestID                      HeaderKey = "X-Request-ID"
	HeaderRequestedWith                  HeaderKey = "X-Requested-With"
	HeaderSecCHUA                        HeaderKey = "Sec-Ch-Ua"
	HeaderSecCHUAMobile                  HeaderKey = "Sec-Ch-Ua-Mobile"
	HeaderSecCHUAPlatform                HeaderKey = "Sec-Ch-Ua-Platform"
	HeaderSecFetchDest                   HeaderKey = "Sec-Fetch-Dest"
	HeaderSecFetchMode                   HeaderKey = "Sec-Fetch-Mode"
	HeaderSecFetchSite                   HeaderKey = "Sec-Fetch-Site"
	HeaderUserAgent                      HeaderKey = "User-Agent"
	HeaderWebKitCSP                      HeaderKey = "X-WebKit-CSP"
	HeaderXAuthToken                     HeaderKey = "X-Auth-Token"
	HeaderXContentDuration               HeaderKey = "X-Content-Duration"
	HeaderXContentSecurityPolicy         HeaderKey = "X-Content-Security-Policy"
	HeaderXContentTypeOptions            HeaderKey = "X-Content-Type-Options"
	HeaderXCorrelationID                 HeaderKey = "X-Correlation-ID"
	HeaderXCustomHeader                  HeaderKey = "X-Custom-Header"
	HeaderXDownloadOptions               HeaderKey = "X-Download-Options"
	HeaderXPermittedCrossDomainPolicies  HeaderKey = "X-Permitted-Cross-Domain-Policies"
	HeaderXPingback                      HeaderKey = "X-Pingback"
	HeaderXXSSProtection                 HeaderKey = "X-XSS-Protection"
)

// CookieKey identifies a known cookie name.
type CookieKey string

// String returns the canonical cookie name.
func (k CookieKey) String() string { return string(k) }

// Known cookie keys.
const (
	CookieSessionID        CookieKey = "session_id"
	CookieUserPreferences  CookieKey = "user_preferences"
	CookieAuthToken        CookieKey = "auth_token"
	CookieCSRFToken        CookieKey = "csrf_token"
	CookieTrackingID       CookieKey = "tracking_id"
	CookieReferrer         CookieKey = "referrer"
	CookieLastVisit        CookieKey = "last_visit"
	CookieLanguage         CookieKey = "language"
	CookieLoginTimestamp   CookieKey = "login_timestamp"
	CookieSessionExpires   CookieKey = "session_expires"
	CookieRememberMe       CookieKey = "remember_me"
	CookiePrefLanguage     CookieKey = "pref_language"
	CookieLocale           CookieKey = "locale"
	CookieCountry          CookieKey = "country"
	CookieTimezone         CookieKey = "timezone"
	CookieReferringURL     CookieKey = "referring_url"
	CookieDeviceID         CookieKey = "device_id"
	CookieBrowserID        CookieKey = "browser_id"
	CookieClientID         CookieKey = "client_id"
	CookieAnonymousID      CookieKey = "anonymous_id"
	CookieTrackingToken    CookieKey = "tracking_token"
	CookieOptIn            CookieKey = "opt_in"
	CookieSecurityToken    CookieKey = "security_token"
	CookieAuthMethod       CookieKey = "auth_method"
	CookieSessionIDHash    CookieKey = "session_id_hash"
	CookieUserID           CookieKey = "user_id"
	CookieRefreshToken     CookieKey = "refresh_token"
	CookieAPIKey           CookieKey = "api_key"
	CookieCSRFRefreshToken CookieKey = "csrf_refresh_token"
	CookieEncryptionKey    CookieKey = "encryption_key"
	CookieEncryptionIV     CookieKey = "encryption_iv"
	CookieDataKey          CookieKey = "data_key"
	CookieDataIV           CookieKey = "data_iv"
	CookieConsent          CookieKey = "cookie_consent"
	CookieSessionType      CookieKey = "session_type"
	CookieAppVersion       CookieKey = "app_version"
	CookieDeviceType       CookieKey = "device_type"
	CookieFeatureFlags     CookieKey = "feature_flags"
	CookieExperimentID     CookieKey = "experiment_id"
	CookieUserRole         CookieKey = "user_role"
	CookieLoginMethod      CookieKey = "login_method"
)

// CookieAttributeKey identifies a known cookie attribute inside a serialized
// attribute bag.
type CookieAttributeKey string

// String returns the canonical attribute name.
func (k CookieAttributeKey) String() string { return string(k) }

// Known cookie attribute keys.
const (
	CookieAttrDomain      CookieAttributeKey = "domain"
	CookieAttrPath        CookieAttributeKey = "path"
	CookieAttrExpires     CookieAttributeKey = "expires"
	CookieAttrSecure      CookieAttributeKey = "secure"
	CookieAttrHTTPOnly    CookieAttributeKey = "httponly"
	CookieAttrSameSite    CookieAttributeKey = "samesite"
	CookieAttrMaxAge      CookieAttributeKey = "max_age"
	CookieAttrPriority    CookieAttributeKey = "priority"
	CookieAttrSameParty   CookieAttributeKey = "sameparty"
	CookieAttrPartitioned CookieAttributeKey = "partitioned"
	CookieAttrExtension   CookieAttributeKey = "extension"
)

var knownCookieAttributeKeys = map[CookieAttributeKey]bool{
	CookieAttrDomain:      true,
	CookieAttrPath:        true,
	CookieAttrExpires:     true,
	CookieAttrSecure:      true,
	CookieAttrHTTPOnly:    true,
	CookieAttrSameSite:    true,
	CookieAttrMaxAge:      true,
	CookieAttrPriority:    true,
	CookieAttrSameParty:   true,
	CookieAttrPartitioned: true,
	CookieAttrExtension:   true,
}

// ParseCookieAttributeKey reports whether s names a known cookie attribute.
func ParseCookieAttributeKey(s string) (CookieAttributeKey, bool) {
	k := CookieAttributeKey(s)
	return k, knownCookieAttributeKeys[k]
}

var knownCookieKeys = map[CookieKey]bool{
	CookieSessionID:        true,
	CookieUserPreferences:  true,
	CookieAuthToken:        true,
	CookieCSRFToken:        true,
	CookieTrackingID:       true,
	CookieReferrer:         true,
	CookieLastVisit:        true,
	CookieLanguage:         true,
	CookieLoginTimestamp:   true,
	CookieSessionExpires:   true,
	CookieRememberMe:       true,
	CookiePrefLanguage:     true,
	CookieLocale:           true,
	CookieCountry:          true,
	CookieTimezone:         true,
	CookieReferringURL:     true,
	CookieDeviceID:         true,
	CookieBrowserID:        true,
	CookieClientID:         true,
	CookieAnonymousID:      true,
	CookieTrackingToken:    true,
	CookieOptIn:            true,
	CookieSecurityToken:    true,
	CookieAuthMethod:       true,
	CookieSessionIDHash:    true,
	CookieUserID:           true,
	CookieRefreshToken:     true,
	CookieAPIKey:           true,
	CookieCSRFRefreshToken: true,
	CookieEncryptionKey:    true,
	CookieEncryptionIV:     true,
	CookieDataKey:          true,
	CookieDataIV:           true,
	CookieConsent:          true,
	CookieSessionType:      true,
	CookieAppVersion:       true,
	CookieDeviceType:       true,
	CookieFeatureFlags:     true,
	CookieExperimentID:     true,
	CookieUserRole:         true,
	CookieLoginMethod:      true,
}

// KnownCookieKey reports whether name is in the closed cookie key set.
func KnownCookieKey(name string) bool {
	return knownCookieKeys[CookieKey(name)]
}
