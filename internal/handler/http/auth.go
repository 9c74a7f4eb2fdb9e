package http

import (
	"errors"
	"net/http"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/service"
	"github.com/Dzrekey001/user-auth-service/internal/utils"
	"github.com/Dzrekey001/user-auth-service/models"
)

// Requests are form-encoded (email, password, reset_token, new_password
// fields); responses are JSON. Handlers stay thin: parse the form, call the
// auth service, translate the outcome to a status and payload.

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.WelcomeResponse{Message: "Bienvenue"}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.FormValue("email")
	password := r.FormValue("password")

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			log.Warn().Str("email", email).Msg("email already registered")
			writeError(w, models.ErrorResponse{Message: "email already registered"}, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Msg("invalid registration data provided")
			writeError(w, models.ErrorResponse{Message: "invalid data provided"}, statusFromError(err))
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, models.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.UserResponse{Email: registeredUser.Email, Message: "user created"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.FormValue("email")
	password := r.FormValue("password")

	if !h.services.AuthService.ValidLogin(ctx, email, password) {
		log.Warn().Str("email", email).Msg("login rejected")
		writeError(w, models.ErrorResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	sessionID, ok := h.services.AuthService.CreateSession(ctx, email)
	if !ok {
		log.Error().Str("email", email).Msg("session creation failed after valid login")
		writeError(w, models.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})

	log.Debug().Str("email", email).Msg("user logged in")

	utils.WriteJSON(w, models.UserResponse{Email: email, Message: "logged in"}, http.StatusOK)
}

// logout runs behind withSessionUser: the session cookie has already been
// resolved to a user or the request never got here.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in context on logout")
		writeError(w, models.ErrorResponse{Message: "Forbidden"}, http.StatusForbidden)
		return
	}

	h.services.AuthService.DestroySession(ctx, user.ID)

	http.Redirect(w, r, "/", http.StatusFound)
}

// profile runs behind withSessionUser.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in context on profile")
		writeError(w, models.ErrorResponse{Message: "Forbidden"}, http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Email: user.Email}, http.StatusOK)
}

func (h *Handler) resetPasswordToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.FormValue("email")

	resetToken, err := h.services.AuthService.GetResetPasswordToken(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResetRequestFailed):
			log.Warn().Str("email", email).Msg("reset token refused")
			writeError(w, models.ErrorResponse{Message: "Forbidden"}, statusFromError(err))
		default:
			log.Err(err).Msg("unexpected error occurred during reset token request")
			writeError(w, models.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.ResetTokenResponse{Email: email, ResetToken: resetToken}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.FormValue("email")
	resetToken := r.FormValue("reset_token")
	newPassword := r.FormValue("new_password")

	if err := h.services.AuthService.UpdatePassword(ctx, resetToken, newPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetToken), errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Str("email", email).Msg("password update refused")
			writeError(w, models.ErrorResponse{Message: "Forbidden"}, http.StatusForbidden)
		default:
			log.Err(err).Msg("unexpected error occurred during password update")
			writeError(w, models.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("email", email).Msg("password updated")

	utils.WriteJSON(w, models.UserResponse{Email: email, Message: "Password updated"}, http.StatusOK)
}
