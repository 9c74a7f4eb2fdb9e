package http

import "errors"

// Sentinel errors used by the request-authentication middleware when parsing
// the "Authorization" HTTP header. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry the expected scheme prefix or a
	// decodable credentials value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidCredentials is returned when the header parses cleanly but
	// the credentials do not identify a registered user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownAuthScheme is returned by NewAuthenticator for an
	// unrecognized scheme name.
	ErrUnknownAuthScheme = errors.New("unknown request authentication scheme")
)
