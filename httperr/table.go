package httperr

import "errors"

// ErrHTTP matches any non-success status code that has no dedicated
// sentinel below.
var ErrHTTP = errors.New("http error")

// Per-status sentinels. The table covers the informational 1xx codes, the
// standard and extended 4xx/5xx ranges, Cloudflare's 52x codes, and the
// unofficial but widely used 598/599 timeout codes.
var (
	ErrContinue           = errors.New("100 Continue")
	ErrSwitchingProtocols = errors.New("101 Switching Protocols")
	ErrProcessing         = errors.New("102 Processing")
	ErrEarlyHints         = errors.New("103 Early Hints")

	ErrBadRequest                 = errors.New("400 Bad Request")
	ErrUnauthorized               = errors.New("401 Unauthorized")
	ErrPaymentRequired            = errors.New("402 Payment Required")
	ErrForbidden                  = errors.New("403 Forbidden")
	ErrNotFound                   = errors.New("404 Not Found")
	ErrMethodNotAllowed           = errors.New("405 Method Not Allowed")
	ErrNotAcceptable              = errors.New("406 Not Acceptable")
	ErrProxyAuthRequired          = errors.New("407 Proxy Authentication Required")
	ErrRequestTimeout             = errors.New("408 Request Timeout")
	ErrConflict                   = errors.New("409 Conflict")
	ErrGone                       = errors.New("410 Gone")
	ErrLengthRequired             = errors.New("411 Length Required")
	ErrPreconditionFailed         = errors.New("412 Precondition Failed")
	ErrPayloadTooLarge            = errors.New("413 Payload Too Large")
	ErrURITooLong                 = errors.New("414 URI Too Long")
	ErrUnsupportedMediaType       = errors.New("415 Unsupported Media Type")
	ErrRangeNotSatisfiable        = errors.New("416 Range Not Satisfiable")
	ErrExpectationFailed          = errors.New("417 Expectation Failed")
	ErrMisdirectedRequest         = errors.New("421 Misdirected Request")
	ErrUnprocessableEntity        = errors.New("422 Unprocessable Entity")
	ErrLocked                     = errors.New("423 Locked")
	ErrFailedDependency           = errors.New("424 Failed Dependency")
	ErrTooEarly                   = errors.New("425 Too Early")
	ErrUpgradeRequired            = errors.New("426 Upgrade Required")
	ErrPreconditionRequired       = errors.New("428 Precondition Required")
	ErrTooManyRequests            = errors.New("429 Too Many Requests")
	ErrHeaderFieldsTooLarge       = errors.New("431 Request Header Fields Too Large")
	ErrUnavailableForLegalReasons = errors.New("451 Unavailable For Legal Reasons")

	ErrInternalServerError      = errors.New("500 Internal Server Error")
	ErrNotImplemented           = errors.New("501 Not Implemented")
	ErrBadGateway               = errors.New("502 Bad Gateway")
	ErrServiceUnavailable       = errors.New("503 Service Unavailable")
	ErrGatewayTimeout           = errors.New("504 Gateway Timeout")
	ErrHTTPVersionNotSupported  = errors.New("505 HTTP Version Not Supported")
	ErrVariantAlsoNegotiates    = errors.New("506 Variant Also Negotiates")
	ErrInsufficientStorage      = errors.New("507 Insufficient Storage")
	ErrLoopDetected             = errors.New("508 Loop Detected")
	ErrNotExtended              = errors.New("510 Not Extended")
	ErrNetworkAuthRequired      = errors.New("511 Network Authentication Required")
	ErrUnknownError             = errors.New("520 Unknown Error")
	ErrWebServerDown            = errors.New("521 Web Server Is Down")
	ErrConnectionTimedOut       = errors.New("522 Connection Timed Out")
	ErrOriginUnreachable        = errors.New("523 Origin Is Unreachable")
	ErrTimeoutOccurred          = errors.New("524 A Timeout Occurred")
	ErrNetworkReadTimeout       = errors.New("598 Network Read Timeout")    // unofficial
	ErrNetworkConnectTimeout    = errors.New("599 Network Connect Timeout") // unofficial
)

// statusCodeErrors is the static dispatch table. Built once, never mutated.
var statusCodeErrors = map[int]error{
	100: ErrContinue,
	101: ErrSwitchingProtocols,
	102: ErrProcessing,
	103: ErrEarlyHints,
	400: ErrBadRequest,
	401: ErrUnauthorized,
	402: ErrPaymentRequired,
	403: ErrForbidden,
	404: ErrNotFound,
	405: ErrMethodNotAllowed,
	406: ErrNotAcceptable,
	407: ErrProxyAuthRequired,
	408: ErrRequestTimeout,
	409: ErrConflict,
	410: ErrGone,
	411: ErrLengthRequired,
	412: ErrPreconditionFailed,
	413: ErrPayloadTooLarge,
	414: ErrURITooLong,
	415: ErrUnsupportedMediaType,
	416: ErrRangeNotSatisfiable,
	417: ErrExpectationFailed,
	421: ErrMisdirectedRequest,
	422: ErrUnprocessableEntity,
	423: ErrLocked,
	424: ErrFailedDependency,
	425: ErrTooEarly,
	426: ErrUpgradeRequired,
	428: ErrPreconditionRequired,
	429: ErrTooManyRequests,
	431: ErrHeaderFieldsTooLarge,
	451: ErrUnavailableForLegalReasons,
	500: ErrInternalServerError,
	501: ErrNotImplemented,
	502: ErrBadGateway,
	503: ErrServiceUnavailable,
	504: ErrGatewayTimeout,
	505: ErrHTTPVersionNotSupported,
	506: ErrVariantAlsoNegotiates,
	507: ErrInsufficientStorage,
	508: ErrLoopDetected,
	510: ErrNotExtended,
	511: ErrNetworkAuthRequired,
	520: ErrUnknownError,
	521: ErrWebServerDown,
	522: ErrConnectionTimedOut,
	523: ErrOriginUnreachable,
	524: ErrTimeoutOccurred,
	598: ErrNetworkReadTimeout,
	599: ErrNetworkConnectTimeout,
}
