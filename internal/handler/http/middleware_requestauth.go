package http

import (
	"errors"
	"net/http"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/models"
)

// withRequestAuth enforces the configured request-authentication scheme.
//
// Paths the configuration excludes pass through untouched, as does every
// path under the NoopAuthenticator. For guarded paths the middleware rejects:
//   - HTTP 401 when the Authorization header is missing or unparseable.
//   - HTTP 403 when the credentials parse but name no account.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) withRequestAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticator.RequireAuth(r.URL.Path, h.excludedPaths) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		ctx := r.Context()

		if h.authenticator.AuthorizationHeader(r) == "" {
			log.Warn().Str("path", r.URL.Path).Msg("request rejected: no authorization header")
			writeError(w, models.ErrorResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
			return
		}

		_, err := h.authenticator.CurrentUser(ctx, r)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidCredentials):
				log.Warn().Str("path", r.URL.Path).Msg("request rejected: invalid credentials")
				writeError(w, models.ErrorResponse{Message: "Forbidden"}, http.StatusForbidden)
			default:
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("request rejected: bad authorization header")
				writeError(w, models.ErrorResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
