package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/mock"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-daily-diary-test",
	TokenDuration: time.Hour,
	Version:       "1.2.3",
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAppConfig, logger.Nop())
	svc.(*authService).bcryptCost = bcrypt.MinCost
	return svc, repo
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User, hash string) (models.User, error) {
			assert.Empty(t, user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
			user.UserID = 7
			return user, nil
		},
	)

	got, err := svc.RegisterUser(ctx, models.User{Login: "ann", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "ann"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.RegisterUser(context.Background(), models.User{Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "ann", Password: "x"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	svc, repo := newTestAuthService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 3, Login: "ann"}

	repo.EXPECT().FindUserByLogin(gomock.Any(), "ann").Return(stored, string(hash), nil).Times(2)

	got, err := svc.Login(context.Background(), models.User{Login: "ann", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = svc.Login(context.Background(), models.User{Login: "ann", Password: "guess"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{}, "", store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.User{Login: "bob", Password: "x"})
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingKey(t *testing.T) {
	cfg := testAppConfig
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ─────────────────────────────────────────────
// AppInfo
// ─────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))

	svc, err = NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("2.0.0", "2024-01-01", "abc123"), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0 (abc123)", svc.GetAppVersion(context.Background()))

	_, err = NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
