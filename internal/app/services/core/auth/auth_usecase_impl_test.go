package auth

import (
	"context"
	"errors"
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/services/core/notifications"
	"medadmin-service/internal/app/services/core/session"
	"medadmin-service/internal/app/services/core/users"
	"medadmin-service/internal/app/services/shared/locker"
	"medadmin-service/internal/app/services/shared/ratelimiter"
	redisrepo "medadmin-service/internal/app/services/shared/redis"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockMailerService struct {
	mock.Mock
}

func (m *mockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type authFixture struct {
	mr            *miniredis.Miniredis
	usecase       contracts.AuthUsecase
	mailer        *mockMailerService
	userRepo      contracts.UserRepository
	notifications contracts.NotificationUsecase
	cfg           *config.InternalConfig
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop()
	redisRepository := redisrepo.NewRedisRepository(client)
	userRepo := users.NewUserMemoryRepository()
	_, err := users.SeedDemoUsers(context.Background(), userRepo, logger)
	require.NoError(t, err)

	cfg := &config.InternalConfig{
		App:  config.App{URL: "https://admin.example.com/"},
		JWT:  config.AppJWT{Secret: "test-secret", ExpTimeInMinutes: 15},
		Auth: config.AppAuth{SessionExpTimeInHours: 24, ForgotPasswordTokenExpiredTimeInMinutes: 30, LoginMaxAttempts: 3, LoginAttemptWindowInSeconds: 60},
	}
	mailer := new(mockMailerService)
	notificationUsecase := notifications.NewNotificationUsecase(notifications.NewNotificationMemoryRepository(), logger)

	uc := NewAuthUsecase(AuthUsecaseDependencies{
		UserRepository:      userRepo,
		SessionService:      session.NewSessionService(redisRepository, 24*time.Hour, logger),
		RedisRepository:     redisRepository,
		MailerService:       mailer,
		NotificationUsecase: notificationUsecase,
		LockerService:       locker.NewLockService(redisRepository, logger),
		LoginLimiter:        ratelimiter.NewAttemptLimiter(redisRepository, logger, "login", time.Minute, cfg.Auth.LoginMaxAttempts),
		InternalConfig:      cfg,
		Logger:              logger,
	})

	return &authFixture{mr: mr, usecase: uc, mailer: mailer, userRepo: userRepo, notifications: notificationUsecase, cfg: cfg}
}

func requireCustomError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
	assert.Equal(t, code, customErr.Code)
}

func TestAuthUsecase_Login(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		response, err := f.usecase.Login(ctx, &requests.Login{Email: "doctor@yanyucloud.com", Password: "doctor123"})
		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "doctor@yanyucloud.com", response.User.Email)
		assert.Equal(t, constvars.RoleDoctor, response.User.Role)

		session, err := f.usecase.ValidateToken(ctx, response.Token, false)
		require.NoError(t, err)
		assert.Equal(t, response.User.ID, session.UserID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := f.usecase.Login(ctx, &requests.Login{Email: "ghost@yanyucloud.com", Password: "whatever"})
		requireCustomError(t, err, constvars.StatusUnauthorized, constvars.ErrCodeInvalidEmail)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := f.usecase.Login(ctx, &requests.Login{Email: "admin@yanyucloud.com", Password: "wrong"})
		requireCustomError(t, err, constvars.StatusUnauthorized, constvars.ErrCodeInvalidPassword)
	})

	t.Run("Disabled account", func(t *testing.T) {
		_, err := f.usecase.Login(ctx, &requests.Login{Email: "nurse@yanyucloud.com", Password: "nurse123"})
		requireCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodeAccountDisabled)
	})
}

func TestAuthUsecase_LoginAttemptLimit(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < f.cfg.Auth.LoginMaxAttempts; i++ {
		_, err := f.usecase.Login(ctx, &requests.Login{Email: "admin@yanyucloud.com", Password: "wrong"})
		requireCustomError(t, err, constvars.StatusUnauthorized, constvars.ErrCodeInvalidPassword)
	}

	_, err := f.usecase.Login(ctx, &requests.Login{Email: "admin@yanyucloud.com", Password: "admin123"})
	requireCustomError(t, err, constvars.StatusTooManyRequests, constvars.ErrCodeTooManyRequests)
}

func TestAuthUsecase_LoginSuccessesDoNotCount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < f.cfg.Auth.LoginMaxAttempts+2; i++ {
		response, err := f.usecase.Login(ctx, &requests.Login{Email: "doctor@yanyucloud.com", Password: "doctor123"})
		require.NoError(t, err, "login #%d", i+1)
		assert.NotEmpty(t, response.Token)
	}
}

func TestAuthUsecase_LoginSuccessResetsFailures(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	wrong := &requests.Login{Email: "doctor@yanyucloud.com", Password: "wrong"}
	right := &requests.Login{Email: "doctor@yanyucloud.com", Password: "doctor123"}

	for i := 0; i < f.cfg.Auth.LoginMaxAttempts-1; i++ {
		_, err := f.usecase.Login(ctx, wrong)
		requireCustomError(t, err, constvars.StatusUnauthorized, constvars.ErrCodeInvalidPassword)
	}
	_, err := f.usecase.Login(ctx, right)
	require.NoError(t, err)

	for i := 0; i < f.cfg.Auth.LoginMaxAttempts-1; i++ {
		_, err := f.usecase.Login(ctx, wrong)
		requireCustomError(t, err, constvars.StatusUnauthorized, constvars.ErrCodeInvalidPassword)
	}
	_, err = f.usecase.Login(ctx, right)
	assert.NoError(t, err)
}

func TestAuthUsecase_MissingSecret(t *testing.T) {
	f := newAuthFixture(t)
	f.cfg.JWT.Secret = ""

	_, err := f.usecase.Login(context.Background(), &requests.Login{Email: "doctor@yanyucloud.com", Password: "doctor123"})

	requireCustomError(t, err, constvars.StatusInternalServerError, constvars.ErrCodeServiceMisconfigured)
}

func TestAuthUsecase_Register(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	request := &requests.Register{
		Name:            "Li Wei",
		Email:           "li.wei@example.com",
		Phone:           "13800138000",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	response, err := f.usecase.Register(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, constvars.RoleDoctor, response.User.Role)
	assert.Equal(t, constvars.UserStatusActive, response.User.Status)

	welcome, err := f.notifications.FindByUser(ctx, response.User.ID, false)
	require.NoError(t, err)
	assert.Len(t, welcome, 1)

	login, err := f.usecase.Login(ctx, &requests.Login{Email: "li.wei@example.com", Password: "password123"})
	require.NoError(t, err, "registered users log in with the same hashing scheme")
	assert.Equal(t, response.User.ID, login.User.ID)

	_, err = f.usecase.Register(ctx, request)
	requireCustomError(t, err, constvars.StatusConflict, constvars.ErrCodeEmailAlreadyExists)

	mismatch := *request
	mismatch.Email = "other@example.com"
	mismatch.ConfirmPassword = "password124"
	_, err = f.usecase.Register(ctx, &mismatch)
	requireCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodePasswordsDoNotMatch)
}

func TestAuthUsecase_ForgotAndResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	var sentLink string
	f.mailer.On("SendEmail", mock.Anything, mock.MatchedBy(func(payload *requests.EmailPayload) bool {
		return len(payload.To) == 1 && payload.To[0] == "doctor@yanyucloud.com"
	})).Run(func(args mock.Arguments) {
		payload := args.Get(1).(*requests.EmailPayload)
		start := strings.Index(payload.Body, "https://admin.example.com/reset-password?token=")
		require.GreaterOrEqual(t, start, 0)
		sentLink = strings.TrimSpace(payload.Body[start:])
	}).Return(nil).Once()

	require.NoError(t, f.usecase.ForgotPassword(ctx, &requests.ForgotPassword{Email: "doctor@yanyucloud.com"}))
	require.NoError(t, f.usecase.ForgotPassword(ctx, &requests.ForgotPassword{Email: "ghost@yanyucloud.com"}), "unknown emails are not revealed")
	f.mailer.AssertExpectations(t)

	token := strings.TrimPrefix(sentLink, "https://admin.example.com/reset-password?token=")
	assert.Equal(t, 30*time.Minute, f.mr.TTL(constvars.RedisKeyResetPasswordPrefix+token))

	lockKey := constvars.RedisKeyLockPrefix + constvars.RedisKeyResetPasswordPrefix + token
	require.NoError(t, f.mr.Set(lockKey, `"in-flight"`))
	err := f.usecase.ResetPassword(ctx, &requests.ResetPassword{Token: token, Password: "newpassword1", ConfirmPassword: "newpassword1"})
	requireCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodeResetTokenInvalid)
	f.mr.Del(lockKey)

	err = f.usecase.ResetPassword(ctx, &requests.ResetPassword{Token: token, Password: "newpassword1", ConfirmPassword: "newpassword1"})
	require.NoError(t, err)
	assert.False(t, f.mr.Exists(lockKey))

	_, err = f.usecase.Login(ctx, &requests.Login{Email: "doctor@yanyucloud.com", Password: "newpassword1"})
	assert.NoError(t, err)

	err = f.usecase.ResetPassword(ctx, &requests.ResetPassword{Token: token, Password: "another12", ConfirmPassword: "another12"})
	requireCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodeResetTokenInvalid)
}

func TestAuthUsecase_RefreshAndLogout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	login, err := f.usecase.Login(ctx, &requests.Login{Email: "doctor@yanyucloud.com", Password: "doctor123"})
	require.NoError(t, err)
	session, err := f.usecase.ValidateToken(ctx, login.Token, false)
	require.NoError(t, err)

	refreshed, err := f.usecase.RefreshToken(ctx, session)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)

	refreshedSession, err := f.usecase.ValidateToken(ctx, refreshed.Token, false)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, refreshedSession.SessionID)

	profile, err := f.usecase.GetProfile(ctx, refreshedSession)
	require.NoError(t, err)
	assert.Equal(t, "doctor@yanyucloud.com", profile.Email)

	require.NoError(t, f.usecase.Logout(ctx, refreshedSession))

	_, err = f.usecase.ValidateToken(ctx, refreshed.Token, false)
	requireCustomError(t, err, constvars.StatusUnauthorized, constvars.ErrCodeTokenInvalid)
}

func TestAuthUsecase_ValidateTokenGarbage(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.ValidateToken(context.Background(), "not-a-jwt", false)

	requireCustomError(t, err, constvars.StatusUnauthorized, constvars.ErrCodeTokenInvalid)
}
