package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/mock"
	"github.com/Dzrekey001/user-auth-service/internal/store"
	"github.com/Dzrekey001/user-auth-service/models"
)

func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockPasswordHasher,
	*mock.MockTokenGenerator,
) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)
	mockTokens := mock.NewMockTokenGenerator(ctrl)

	svc := NewAuthService(mockRepo, mockHasher, mockTokens, logger.Nop()).(*authService)

	return svc, mockRepo, mockHasher, mockTokens
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(models.User{}, store.ErrUserNotFound),
		mockHasher.EXPECT().Hash("my password").Return([]byte("hashed"), nil),
		mockRepo.EXPECT().CreateUser(ctx, "john@mail.com", []byte("hashed")).
			Return(models.User{ID: 1, Email: "john@mail.com", HashedPassword: []byte("hashed")}, nil),
	)

	registered, err := svc.RegisterUser(ctx, "john@mail.com", "my password")
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, "john@mail.com", registered.Email)
}

func TestAuthService_RegisterUser_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "", "my password")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(ctx, "john@mail.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).
		Return(models.User{ID: 1, Email: "john@mail.com"}, nil)

	_, err := svc.RegisterUser(ctx, "john@mail.com", "my password")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Contains(t, err.Error(), "john@mail.com")
}

func TestAuthService_RegisterUser_AmbiguousEmailCountsAsTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("dup@mail.com")).
		Return(models.User{}, store.ErrAmbiguousCriteria)

	_, err := svc.RegisterUser(ctx, "dup@mail.com", "my password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).
		Return(models.User{}, errors.New("db down"))

	_, err := svc.RegisterUser(ctx, "john@mail.com", "my password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
	assert.Contains(t, err.Error(), "user search by email failed")
}

func TestAuthService_RegisterUser_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(models.User{}, store.ErrUserNotFound),
		mockHasher.EXPECT().Hash("my password").Return(nil, errors.New("cost out of range")),
	)

	_, err := svc.RegisterUser(ctx, "john@mail.com", "my password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password hashing failed")
}

func TestAuthService_RegisterUser_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(models.User{}, store.ErrUserNotFound),
		mockHasher.EXPECT().Hash("my password").Return([]byte("hashed"), nil),
		mockRepo.EXPECT().CreateUser(ctx, "john@mail.com", []byte("hashed")).
			Return(models.User{}, errors.New("insert failed")),
	)

	_, err := svc.RegisterUser(ctx, "john@mail.com", "my password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user creation ended with error")
}

// ── ValidLogin ───────────────────────────────────────────────────────────────

func TestAuthService_ValidLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "john@mail.com", HashedPassword: []byte("hashed")}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(user, nil),
		mockHasher.EXPECT().Verify([]byte("hashed"), "my password").Return(true),
	)

	assert.True(t, svc.ValidLogin(ctx, "john@mail.com", "my password"))
}

func TestAuthService_ValidLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "john@mail.com", HashedPassword: []byte("hashed")}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(user, nil),
		mockHasher.EXPECT().Verify([]byte("hashed"), "wrong password").Return(false),
	)

	assert.False(t, svc.ValidLogin(ctx, "john@mail.com", "wrong password"))
}

func TestAuthService_ValidLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("nobody@mail.com")).
		Return(models.User{}, store.ErrUserNotFound)

	assert.False(t, svc.ValidLogin(ctx, "nobody@mail.com", "my password"))
}

func TestAuthService_ValidLogin_StorageErrorReadsAsFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).
		Return(models.User{}, errors.New("db down"))

	assert.False(t, svc.ValidLogin(ctx, "john@mail.com", "my password"))
}

func TestAuthService_ValidLogin_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	assert.False(t, svc.ValidLogin(ctx, "", "my password"))
	assert.False(t, svc.ValidLogin(ctx, "john@mail.com", ""))
}

// ── CreateSession ────────────────────────────────────────────────────────────

func TestAuthService_CreateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "john@mail.com"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(user, nil),
		mockTokens.EXPECT().Generate().Return("session-token"),
		mockRepo.EXPECT().UpdateUser(ctx, int64(7), store.UserUpdate{SessionID: store.SetTo("session-token")}).Return(nil),
	)

	sessionID, ok := svc.CreateSession(ctx, "john@mail.com")
	require.True(t, ok)
	assert.Equal(t, "session-token", sessionID)
}

func TestAuthService_CreateSession_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("nobody@mail.com")).
		Return(models.User{}, store.ErrUserNotFound)

	sessionID, ok := svc.CreateSession(ctx, "nobody@mail.com")
	assert.False(t, ok)
	assert.Empty(t, sessionID)
}

func TestAuthService_CreateSession_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "john@mail.com"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(user, nil),
		mockTokens.EXPECT().Generate().Return("session-token"),
		mockRepo.EXPECT().UpdateUser(ctx, int64(7), gomock.Any()).Return(errors.New("db down")),
	)

	sessionID, ok := svc.CreateSession(ctx, "john@mail.com")
	assert.False(t, ok)
	assert.Empty(t, sessionID)
}

// ── GetUserFromSessionID ─────────────────────────────────────────────────────

func TestAuthService_GetUserFromSessionID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "john@mail.com", SessionID: "session-token"}

	mockRepo.EXPECT().FindUserBy(ctx, store.BySessionID("session-token")).Return(user, nil)

	found, ok := svc.GetUserFromSessionID(ctx, "session-token")
	require.True(t, ok)
	assert.Equal(t, "john@mail.com", found.Email)
}

func TestAuthService_GetUserFromSessionID_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, ok := svc.GetUserFromSessionID(context.Background(), "")
	assert.False(t, ok)
}

func TestAuthService_GetUserFromSessionID_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.BySessionID("stale-token")).
		Return(models.User{}, store.ErrUserNotFound)

	_, ok := svc.GetUserFromSessionID(ctx, "stale-token")
	assert.False(t, ok)
}

// ── DestroySession ───────────────────────────────────────────────────────────

func TestAuthService_DestroySession_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateUser(ctx, int64(7), store.UserUpdate{SessionID: store.Clear()}).Return(nil)

	svc.DestroySession(ctx, 7)
}

func TestAuthService_DestroySession_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository call expected
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	svc.DestroySession(context.Background(), 0)
	svc.DestroySession(context.Background(), -1)
}

func TestAuthService_DestroySession_SwallowsStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateUser(ctx, int64(7), gomock.Any()).Return(errors.New("db down"))

	svc.DestroySession(ctx, 7)
}

// ── GetResetPasswordToken ────────────────────────────────────────────────────

func TestAuthService_GetResetPasswordToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "john@mail.com"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(user, nil),
		mockTokens.EXPECT().Generate().Return("reset-token"),
		mockRepo.EXPECT().UpdateUser(ctx, int64(7), store.UserUpdate{ResetToken: store.SetTo("reset-token")}).Return(nil),
	)

	resetToken, err := svc.GetResetPasswordToken(ctx, "john@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "reset-token", resetToken)
}

func TestAuthService_GetResetPasswordToken_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("nobody@mail.com")).
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetResetPasswordToken(ctx, "nobody@mail.com")
	assert.ErrorIs(t, err, ErrResetRequestFailed)
}

func TestAuthService_GetResetPasswordToken_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "john@mail.com"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(user, nil),
		mockTokens.EXPECT().Generate().Return("reset-token"),
		mockRepo.EXPECT().UpdateUser(ctx, int64(7), gomock.Any()).Return(errors.New("db down")),
	)

	_, err := svc.GetResetPasswordToken(ctx, "john@mail.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrResetRequestFailed)
}

// ── UpdatePassword ───────────────────────────────────────────────────────────

func TestAuthService_UpdatePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "john@mail.com", ResetToken: "reset-token"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByResetToken("reset-token")).Return(user, nil),
		mockHasher.EXPECT().Hash("new password").Return([]byte("new-hash"), nil),
		// new hash stored and reset token cleared in one update
		mockRepo.EXPECT().UpdateUser(ctx, int64(7), store.UserUpdate{
			HashedPassword: []byte("new-hash"),
			ResetToken:     store.Clear(),
		}).Return(nil),
	)

	require.NoError(t, svc.UpdatePassword(ctx, "reset-token", "new password"))
}

func TestAuthService_UpdatePassword_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, store.ByResetToken("stale-token")).
		Return(models.User{}, store.ErrUserNotFound)

	err := svc.UpdatePassword(ctx, "stale-token", "new password")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestAuthService_UpdatePassword_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	assert.ErrorIs(t, svc.UpdatePassword(ctx, "reset-token", ""), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.UpdatePassword(ctx, "", "new password"), ErrInvalidResetToken)
}

func TestAuthService_UpdatePassword_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, ResetToken: "reset-token"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserBy(ctx, store.ByResetToken("reset-token")).Return(user, nil),
		mockHasher.EXPECT().Hash("new password").Return([]byte("new-hash"), nil),
		mockRepo.EXPECT().UpdateUser(ctx, int64(7), gomock.Any()).Return(errors.New("db down")),
	)

	err := svc.UpdatePassword(ctx, "reset-token", "new password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password update failed")
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// TestAuthService_Lifecycle walks one account through registration, login,
// session resolution and logout against a real hasher and token generator,
// with only the repository mocked.
func TestAuthService_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, stubHasher{}, stubTokens{token: "session-token"}, logger.Nop())
	ctx := context.Background()

	stored := models.User{}

	// register
	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).
		Return(models.User{}, store.ErrUserNotFound)
	mockRepo.EXPECT().CreateUser(ctx, "john@mail.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, email string, hashedPassword []byte) (models.User, error) {
			stored = models.User{ID: 1, Email: email, HashedPassword: hashedPassword}
			return stored, nil
		})

	registered, err := svc.RegisterUser(ctx, "john@mail.com", "my password")
	require.NoError(t, err)

	// login with the stored hash
	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(stored, nil)
	require.True(t, svc.ValidLogin(ctx, "john@mail.com", "my password"))

	// open a session
	mockRepo.EXPECT().FindUserBy(ctx, store.ByEmail("john@mail.com")).Return(stored, nil)
	mockRepo.EXPECT().UpdateUser(ctx, registered.ID, store.UserUpdate{SessionID: store.SetTo("session-token")}).
		DoAndReturn(func(_ context.Context, _ int64, update store.UserUpdate) error {
			stored.SessionID = update.SessionID.String
			return nil
		})

	sessionID, ok := svc.CreateSession(ctx, "john@mail.com")
	require.True(t, ok)

	// resolve the session back to the user
	mockRepo.EXPECT().FindUserBy(ctx, store.BySessionID(sessionID)).Return(stored, nil)
	found, ok := svc.GetUserFromSessionID(ctx, sessionID)
	require.True(t, ok)
	assert.Equal(t, registered.Email, found.Email)

	// logout
	mockRepo.EXPECT().UpdateUser(ctx, registered.ID, store.UserUpdate{SessionID: store.Clear()}).Return(nil)
	svc.DestroySession(ctx, registered.ID)
}

type stubHasher struct{}

func (stubHasher) Hash(password string) ([]byte, error) {
	return []byte("hash:" + password), nil
}

func (stubHasher) Verify(hashedPassword []byte, password string) bool {
	return string(hashedPassword) == "hash:"+password
}

type stubTokens struct{ token string }

func (s stubTokens) Generate() string { return s.token }
