package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/Dzrekey001/user-auth-service/internal/config"
	"github.com/Dzrekey001/user-auth-service/internal/service"
	"github.com/Dzrekey001/user-auth-service/models"
)

// Authenticator gates API routes before they reach a handler. It decides
// which paths require authentication and resolves the caller's identity from
// the request.
type Authenticator interface {
	// RequireAuth reports whether path must be authenticated given the list
	// of excluded paths. Matching tolerates a missing trailing slash, and an
	// entry ending in "*" matches by prefix.
	RequireAuth(path string, excludedPaths []string) bool

	// AuthorizationHeader returns the raw Authorization header value, empty
	// when absent.
	AuthorizationHeader(r *http.Request) string

	// CurrentUser resolves the request credentials to a user. It returns
	// ErrInvalidAuthorizationHeader for an unparseable header and
	// ErrInvalidCredentials when the credentials name no account.
	CurrentUser(ctx context.Context, r *http.Request) (models.User, error)
}

// NewAuthenticator selects the authenticator implementation by scheme name.
func NewAuthenticator(scheme string, authService service.AuthService) (Authenticator, error) {
	switch scheme {
	case config.AuthSchemeNone, "":
		return &NoopAuthenticator{}, nil
	case config.AuthSchemeBasic:
		return &BasicAuthenticator{authService: authService}, nil
	default:
		return nil, ErrUnknownAuthScheme
	}
}

// NoopAuthenticator never requires authentication and never identifies a
// caller. It is the default scheme.
type NoopAuthenticator struct{}

func (a *NoopAuthenticator) RequireAuth(path string, excludedPaths []string) bool {
	return false
}

func (a *NoopAuthenticator) AuthorizationHeader(r *http.Request) string {
	return r.Header.Get("Authorization")
}

func (a *NoopAuthenticator) CurrentUser(ctx context.Context, r *http.Request) (models.User, error) {
	return models.User{}, ErrInvalidCredentials
}

// BasicAuthenticator authenticates requests carrying HTTP Basic credentials:
//
//	Authorization: Basic base64(email:password)
//
// Credentials are checked against the auth service; the password may itself
// contain colons, only the first one separates email from password.
type BasicAuthenticator struct {
	authService service.AuthService
}

// RequireAuth reports whether path falls outside excludedPaths. A nil or
// empty exclusion list means every path requires authentication.
func (a *BasicAuthenticator) RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	return !pathExcluded(path, excludedPaths)
}

func (a *BasicAuthenticator) AuthorizationHeader(r *http.Request) string {
	return r.Header.Get("Authorization")
}

// CurrentUser parses the Basic credentials and validates them against the
// auth service. The returned user carries the verified email only; handlers
// needing the full record go through the session flow instead.
func (a *BasicAuthenticator) CurrentUser(ctx context.Context, r *http.Request) (models.User, error) {
	email, password, err := extractBasicCredentials(a.AuthorizationHeader(r))
	if err != nil {
		return models.User{}, err
	}

	if !a.authService.ValidLogin(ctx, email, password) {
		return models.User{}, ErrInvalidCredentials
	}

	return models.User{Email: email}, nil
}

// pathExcluded reports whether path matches one of the exclusion entries.
// Comparison is trailing-slash tolerant and honors a "*" suffix wildcard.
func pathExcluded(path string, excludedPaths []string) bool {
	normalized := path
	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}

	for _, excluded := range excludedPaths {
		if excluded == "" {
			continue
		}

		if strings.HasSuffix(excluded, "*") {
			if strings.HasPrefix(normalized, excluded[:len(excluded)-1]) {
				return true
			}
			continue
		}

		withSlash := excluded
		if !strings.HasSuffix(withSlash, "/") {
			withSlash += "/"
		}
		if normalized == withSlash {
			return true
		}
	}

	return false
}

// extractBasicCredentials splits a raw Authorization header value into the
// email and password of a Basic scheme payload.
func extractBasicCredentials(authHeader string) (email string, password string, err error) {
	const prefix = "Basic "

	if !strings.HasPrefix(authHeader, prefix) {
		return "", "", ErrInvalidAuthorizationHeader
	}

	decoded, decodeErr := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, prefix))
	if decodeErr != nil {
		return "", "", ErrInvalidAuthorizationHeader
	}

	// split at the first colon only: the password may contain colons
	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrInvalidAuthorizationHeader
	}

	return email, password, nil
}
