package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"go.uber.org/mock/gomock"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/mock"
	"github.com/Dzrekey001/user-auth-service/internal/service"
	"github.com/Dzrekey001/user-auth-service/models"
)

const testCookieName = "session_id"

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService) {
	t.Helper()
	mockAuth := mock.NewMockAuthService(ctrl)
	h := &Handler{
		services:      &service.Services{AuthService: mockAuth},
		authenticator: &NoopAuthenticator{},
		cookieName:    testCookieName,
		logger:        logger.Nop(),
	}
	return h, mockAuth
}

func TestWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	apitest.New().
		Handler(h.Init()).
		Get("/").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "Bienvenue")).
		End()
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), "john@mail.com", "my password").
		Return(models.User{ID: 1, Email: "john@mail.com"}, nil)

	apitest.New().
		Handler(h.Init()).
		Post("/users").
		FormData("email", "john@mail.com").
		FormData("password", "my password").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.email`, "john@mail.com")).
		Assert(jsonpath.Equal(`$.message`, "user created")).
		End()
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), "john@mail.com", "my password").
		Return(models.User{}, service.ErrUserAlreadyExists)

	apitest.New().
		Handler(h.Init()).
		Post("/users").
		FormData("email", "john@mail.com").
		FormData("password", "my password").
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.message`, "email already registered")).
		End()
}

func TestRegister_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), "", "").
		Return(models.User{}, service.ErrInvalidDataProvided)

	apitest.New().
		Handler(h.Init()).
		Post("/users").
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.message`, "invalid data provided")).
		End()
}

func TestRegister_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), "john@mail.com", "my password").
		Return(models.User{}, errors.New("db down"))

	apitest.New().
		Handler(h.Init()).
		Post("/users").
		FormData("email", "john@mail.com").
		FormData("password", "my password").
		Expect(t).
		Status(http.StatusInternalServerError).
		End()
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	gomock.InOrder(
		mockAuth.EXPECT().ValidLogin(gomock.Any(), "john@mail.com", "my password").Return(true),
		mockAuth.EXPECT().CreateSession(gomock.Any(), "john@mail.com").Return("session-token", true),
	)

	apitest.New().
		Handler(h.Init()).
		Post("/sessions").
		FormData("email", "john@mail.com").
		FormData("password", "my password").
		Expect(t).
		Status(http.StatusOK).
		Cookies(apitest.NewCookie(testCookieName).Value("session-token")).
		Assert(jsonpath.Equal(`$.email`, "john@mail.com")).
		Assert(jsonpath.Equal(`$.message`, "logged in")).
		End()
}

func TestLogin_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ValidLogin(gomock.Any(), "john@mail.com", "wrong password").Return(false)

	apitest.New().
		Handler(h.Init()).
		Post("/sessions").
		FormData("email", "john@mail.com").
		FormData("password", "wrong password").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestLogin_SessionCreationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	gomock.InOrder(
		mockAuth.EXPECT().ValidLogin(gomock.Any(), "john@mail.com", "my password").Return(true),
		mockAuth.EXPECT().CreateSession(gomock.Any(), "john@mail.com").Return("", false),
	)

	apitest.New().
		Handler(h.Init()).
		Post("/sessions").
		FormData("email", "john@mail.com").
		FormData("password", "my password").
		Expect(t).
		Status(http.StatusInternalServerError).
		End()
}

func TestLogout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	user := models.User{ID: 7, Email: "john@mail.com", SessionID: "session-token"}

	gomock.InOrder(
		mockAuth.EXPECT().GetUserFromSessionID(gomock.Any(), "session-token").Return(user, true),
		mockAuth.EXPECT().DestroySession(gomock.Any(), int64(7)),
	)

	apitest.New().
		Handler(h.Init()).
		Delete("/sessions").
		Cookie(testCookieName, "session-token").
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/").
		End()
}

func TestLogout_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	apitest.New().
		Handler(h.Init()).
		Delete("/sessions").
		Expect(t).
		Status(http.StatusForbidden).
		End()
}

func TestLogout_StaleSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().GetUserFromSessionID(gomock.Any(), "stale-token").
		Return(models.User{}, false)

	apitest.New().
		Handler(h.Init()).
		Delete("/sessions").
		Cookie(testCookieName, "stale-token").
		Expect(t).
		Status(http.StatusForbidden).
		End()
}

func TestProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	user := models.User{ID: 7, Email: "john@mail.com", SessionID: "session-token"}

	mockAuth.EXPECT().GetUserFromSessionID(gomock.Any(), "session-token").Return(user, true)

	apitest.New().
		Handler(h.Init()).
		Get("/profile").
		Cookie(testCookieName, "session-token").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.email`, "john@mail.com")).
		End()
}

func TestProfile_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	apitest.New().
		Handler(h.Init()).
		Get("/profile").
		Expect(t).
		Status(http.StatusForbidden).
		End()
}

func TestResetPasswordToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().GetResetPasswordToken(gomock.Any(), "john@mail.com").
		Return("reset-token", nil)

	apitest.New().
		Handler(h.Init()).
		Post("/reset_password").
		FormData("email", "john@mail.com").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.email`, "john@mail.com")).
		Assert(jsonpath.Equal(`$.reset_token`, "reset-token")).
		End()
}

func TestResetPasswordToken_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().GetResetPasswordToken(gomock.Any(), "nobody@mail.com").
		Return("", service.ErrResetRequestFailed)

	apitest.New().
		Handler(h.Init()).
		Post("/reset_password").
		FormData("email", "nobody@mail.com").
		Expect(t).
		Status(http.StatusForbidden).
		End()
}

func TestResetPasswordToken_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().GetResetPasswordToken(gomock.Any(), "john@mail.com").
		Return("", errors.New("db down"))

	apitest.New().
		Handler(h.Init()).
		Post("/reset_password").
		FormData("email", "john@mail.com").
		Expect(t).
		Status(http.StatusInternalServerError).
		End()
}

func TestUpdatePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().UpdatePassword(gomock.Any(), "reset-token", "new password").Return(nil)

	apitest.New().
		Handler(h.Init()).
		Put("/reset_password").
		FormData("email", "john@mail.com").
		FormData("reset_token", "reset-token").
		FormData("new_password", "new password").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.email`, "john@mail.com")).
		Assert(jsonpath.Equal(`$.message`, "Password updated")).
		End()
}

func TestUpdatePassword_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth := newTestHandler(t, ctrl)

	mockAuth.EXPECT().UpdatePassword(gomock.Any(), "stale-token", "new password").
		Return(service.ErrInvalidResetToken)

	apitest.New().
		Handler(h.Init()).
		Put("/reset_password").
		FormData("email", "john@mail.com").
		FormData("reset_token", "stale-token").
		FormData("new_password", "new password").
		Expect(t).
		Status(http.StatusForbidden).
		End()
}

func TestUnsupportedMethodHidesRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	// 404 instead of 405 so an unsupported method leaks nothing
	apitest.New().
		Handler(h.Init()).
		Patch("/users").
		Expect(t).
		Status(http.StatusNotFound).
		End()
}
