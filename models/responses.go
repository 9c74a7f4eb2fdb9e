package models

// WelcomeResponse is the payload of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// UserResponse is the payload returned by POST /users and POST /sessions.
// Message describes the outcome ("user created", "logged in", ...).
type UserResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ProfileResponse is the payload of GET /profile for an authenticated
// session.
type ProfileResponse struct {
	Email string `json:"email"`
}

// ResetTokenResponse is the payload of POST /reset_password. The token is
// a single-use capability; it is returned to the caller once and never
// logged in clear.
type ResetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// ErrorResponse is the payload returned on request failures that carry a
// body (e.g. duplicate registration).
type ErrorResponse struct {
	Message string `json:"message"`
}
