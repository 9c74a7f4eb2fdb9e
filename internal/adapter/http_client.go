package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/utils"
	"github.com/Dzrekey001/user-auth-service/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	cookieName string
	sessionID  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from address and configures the
// underlying HTTP client with the resolved base URL, the request timeout and
// the session cookie name used by the server.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, cookieName string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, cookieName: cookieName, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSessionID implements [ServerAdapter]. It stores sessionID
// (whitespace-trimmed) for use as the session cookie of all subsequent
// session-bound requests.
func (h *httpServerAdapter) SetSessionID(sessionID string) {
	h.sessionID = strings.TrimSpace(sessionID)
}

// SessionID implements [ServerAdapter].
func (h *httpServerAdapter) SessionID() string {
	return h.sessionID
}

// sessionCookie builds the cookie attached to session-bound requests.
func (h *httpServerAdapter) sessionCookie() *http.Cookie {
	return &http.Cookie{Name: h.cookieName, Value: h.sessionID}
}

// Welcome implements [ServerAdapter]. It GETs the root route and decodes the
// greeting payload.
func (h *httpServerAdapter) Welcome(ctx context.Context) (models.WelcomeResponse, error) {
	var welcome models.WelcomeResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&welcome).
		Get("/")
	if err != nil {
		return models.WelcomeResponse{}, fmt.Errorf("welcome request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WelcomeResponse{}, err
	}

	return welcome, nil
}

// Register implements [ServerAdapter]. It POSTs the form-encoded credentials
// to POST /users and decodes the confirmation payload.
func (h *httpServerAdapter) Register(ctx context.Context, email string, password string) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"email": email, "password": password}).
		SetResult(&user).
		Post("/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the form-encoded credentials to
// POST /sessions. On success the session token is extracted from the response
// cookie and stored via SetSessionID.
func (h *httpServerAdapter) Login(ctx context.Context, email string, password string) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"email": email, "password": password}).
		SetResult(&user).
		Post("/sessions")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == h.cookieName {
			h.SetSessionID(cookie.Value)
			break
		}
	}
	if h.sessionID == "" {
		return models.UserResponse{}, fmt.Errorf("login response carries no %s cookie", h.cookieName)
	}

	return user, nil
}

// Profile implements [ServerAdapter]. It GETs /profile with the stored
// session cookie attached.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		SetResult(&profile).
		Get("/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// Logout implements [ServerAdapter]. It DELETEs /sessions with the stored
// session cookie. The server answers with a redirect to the root route; the
// client follows it and the final greeting payload is returned. The stored
// session id is cleared regardless of the outcome.
func (h *httpServerAdapter) Logout(ctx context.Context) (models.WelcomeResponse, error) {
	var welcome models.WelcomeResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		SetResult(&welcome).
		Delete("/sessions")

	h.SetSessionID("")

	if err != nil {
		return models.WelcomeResponse{}, fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WelcomeResponse{}, err
	}

	return welcome, nil
}

// RequestResetToken implements [ServerAdapter]. It POSTs the form-encoded
// email to POST /reset_password and decodes the issued token.
func (h *httpServerAdapter) RequestResetToken(ctx context.Context, email string) (models.ResetTokenResponse, error) {
	var reset models.ResetTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"email": email}).
		SetResult(&reset).
		Post("/reset_password")
	if err != nil {
		return models.ResetTokenResponse{}, fmt.Errorf("reset token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResetTokenResponse{}, err
	}

	return reset, nil
}

// UpdatePassword implements [ServerAdapter]. It PUTs the form-encoded reset
// token and new password to PUT /reset_password.
func (h *httpServerAdapter) UpdatePassword(ctx context.Context, email string, resetToken string, newPassword string) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":        email,
			"reset_token":  resetToken,
			"new_password": newPassword,
		}).
		SetResult(&user).
		Put("/reset_password")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}
