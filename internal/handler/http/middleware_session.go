package http

import (
	"context"
	"net/http"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/utils"
	"github.com/Dzrekey001/user-auth-service/models"
)

// withSessionUser resolves the session cookie to a user before the handler
// runs.
//
// It reads the configured session cookie, asks the auth service for the user
// holding that session, and on success stores the user in the request
// context under [utils.UserCtxKey]. A missing cookie, an unknown token, or
// any lookup failure rejects the request with HTTP 403 Forbidden; the
// response never reveals which of those happened.
func (h *Handler) withSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cookie, err := r.Cookie(h.cookieName)
		if err != nil {
			log.Debug().Str("path", r.URL.Path).Msg("request rejected: no session cookie")
			writeError(w, models.ErrorResponse{Message: "Forbidden"}, http.StatusForbidden)
			return
		}

		user, ok := h.services.AuthService.GetUserFromSessionID(ctx, cookie.Value)
		if !ok {
			log.Debug().Str("path", r.URL.Path).Msg("request rejected: session not resolved")
			writeError(w, models.ErrorResponse{Message: "Forbidden"}, http.StatusForbidden)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without re-reading the cookie.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
