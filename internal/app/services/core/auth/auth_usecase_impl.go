package auth

import (
	"context"
	"fmt"
	"math"
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/app/services/shared/metrics"
	"medadmin-service/internal/app/services/shared/ratelimiter"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/dto/responses"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// A reset token is consumed under this lock so concurrent resets cannot both succeed.
const resetPasswordLockTTL = 30 * time.Second

type authUsecase struct {
	UserRepository      contracts.UserRepository
	SessionService      contracts.SessionService
	RedisRepository     contracts.RedisRepository
	MailerService       contracts.MailerService
	NotificationUsecase contracts.NotificationUsecase
	LockerService       contracts.LockerService
	LoginLimiter        *ratelimiter.AttemptLimiter
	Metrics             *metrics.HTTPMetrics
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

type AuthUsecaseDependencies struct {
	UserRepository      contracts.UserRepository
	SessionService      contracts.SessionService
	RedisRepository     contracts.RedisRepository
	MailerService       contracts.MailerService
	NotificationUsecase contracts.NotificationUsecase
	LockerService       contracts.LockerService
	LoginLimiter        *ratelimiter.AttemptLimiter
	Metrics             *metrics.HTTPMetrics
	InternalConfig      *config.InternalConfig
	Logger              *zap.Logger
}

func NewAuthUsecase(deps AuthUsecaseDependencies) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:      deps.UserRepository,
		SessionService:      deps.SessionService,
		RedisRepository:     deps.RedisRepository,
		MailerService:       deps.MailerService,
		NotificationUsecase: deps.NotificationUsecase,
		LockerService:       deps.LockerService,
		LoginLimiter:        deps.LoginLimiter,
		Metrics:             deps.Metrics,
		InternalConfig:      deps.InternalConfig,
		Log:                 deps.Logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	blocked, retryAfter, err := uc.LoginLimiter.Blocked(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if blocked {
		uc.Log.Warn("authUsecase.Login attempt limit reached",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventLogin, constvars.AuthOutcomeFailure)
		return nil, exceptions.ErrTooManyAttempts(nil, request.Email, int(math.Ceil(retryAfter.Seconds())))
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		uc.recordLoginFailure(ctx, request.Email)
		return nil, exceptions.ErrInvalidEmail(nil)
	}

	if user.IsDisabled() {
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventLogin, constvars.AuthOutcomeFailure)
		return nil, exceptions.ErrAccountDisabled(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.recordLoginFailure(ctx, request.Email)
		return nil, exceptions.ErrInvalidPassword(nil)
	}

	response, err := uc.issueSession(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Login error issuing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.LoginLimiter.Reset(ctx, request.Email); err != nil {
		uc.Log.Warn("authUsecase.Login error resetting attempt counter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Metrics.ObserveAuthEvent(constvars.AuthEventLogin, constvars.AuthOutcomeSuccess)
	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

// recordLoginFailure counts a wrong email or password against the attempt
// limit. A counter failure is logged and does not change the login result.
func (uc *authUsecase) recordLoginFailure(ctx context.Context, email string) {
	uc.Metrics.ObserveAuthEvent(constvars.AuthEventLogin, constvars.AuthOutcomeFailure)
	if err := uc.LoginLimiter.RecordFailure(ctx, email); err != nil {
		uc.Log.Warn("authUsecase.Login error recording failed attempt",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if request.Password != request.ConfirmPassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventRegister, constvars.AuthOutcomeFailure)
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleDoctor
	}

	user := &models.User{
		ID:         utils.GenerateID(),
		Name:       request.Name,
		Email:      request.Email,
		Phone:      request.Phone,
		Password:   hashedPassword,
		Role:       role,
		Status:     constvars.UserStatusActive,
		Department: request.Department,
	}
	user.SetCreatedAtUpdatedAt()

	_, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notify(ctx, &requests.CreateNotification{
		UserID:  user.ID,
		Title:   constvars.NotificationTitleWelcome,
		Message: fmt.Sprintf(constvars.NotificationMessageWelcomeFmt, user.Name),
		Type:    constvars.NotificationTypeSystem,
	})

	uc.Metrics.ObserveAuthEvent(constvars.AuthEventRegister, constvars.AuthOutcomeSuccess)
	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Register{User: utils.ConvertUserToResponse(user)}, nil
}

// ForgotPassword never reports whether the email is registered. Delivery
// failures are logged and not returned.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	if user == nil || user.IsDisabled() {
		uc.Log.Info("authUsecase.ForgotPassword no active account for email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	ttlMinutes := uc.InternalConfig.Auth.ForgotPasswordTokenExpiredTimeInMinutes
	token := utils.GenerateID()
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyResetPasswordPrefix+token, user.ID, time.Duration(ttlMinutes)*time.Minute)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error storing reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventForgotPassword, constvars.AuthOutcomeFailure)
		return nil
	}

	resetLink := utils.BuildResetPasswordLink(uc.InternalConfig.App.URL, token)
	payload := utils.BuildResetPasswordEmailPayload(user.Email, user.Name, resetLink, ttlMinutes)
	err = uc.MailerService.SendEmail(ctx, payload)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventForgotPassword, constvars.AuthOutcomeFailure)
		return nil
	}

	uc.Metrics.ObserveAuthEvent(constvars.AuthEventForgotPassword, constvars.AuthOutcomeSuccess)
	uc.Log.Info("authUsecase.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	key := constvars.RedisKeyResetPasswordPrefix + request.Token
	locked, lockValue, err := uc.LockerService.TryLock(ctx, key, resetPasswordLockTTL)
	if err != nil {
		return err
	}
	if !locked {
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventResetPassword, constvars.AuthOutcomeFailure)
		return exceptions.ErrResetTokenInvalid(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, key, lockValue); err != nil {
			uc.Log.Warn("authUsecase.ResetPassword error releasing reset token lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == "" {
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventResetPassword, constvars.AuthOutcomeFailure)
		return exceptions.ErrResetTokenInvalid(nil)
	}

	var userID string
	if err := json.Unmarshal([]byte(data), &userID); err != nil {
		return exceptions.ErrResetTokenInvalid(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrResetTokenInvalid(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.Password = hashedPassword
	user.SetUpdatedAt()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Error("authUsecase.ResetPassword error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		uc.Log.Warn("authUsecase.ResetPassword error deleting used reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.notify(ctx, &requests.CreateNotification{
		UserID:  user.ID,
		Title:   constvars.NotificationTitlePasswordReset,
		Message: constvars.NotificationMessagePasswordReset,
		Type:    constvars.NotificationTypeSecurity,
	})

	uc.Metrics.ObserveAuthEvent(constvars.AuthEventResetPassword, constvars.AuthOutcomeSuccess)
	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) RefreshToken(ctx context.Context, session *models.Session) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.RefreshToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	user, err := uc.activeUser(ctx, session.UserID)
	if err != nil {
		uc.Metrics.ObserveAuthEvent(constvars.AuthEventRefresh, constvars.AuthOutcomeFailure)
		return nil, err
	}

	if err := uc.SessionService.ExtendSession(ctx, session); err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.signToken(session.SessionID)
	if err != nil {
		return nil, err
	}

	uc.Metrics.ObserveAuthEvent(constvars.AuthEventRefresh, constvars.AuthOutcomeSuccess)
	uc.Log.Info("authUsecase.RefreshToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Login{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      utils.ConvertUserToResponse(user),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	user, err := uc.activeUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return utils.ConvertUserToResponse(user), nil
}

func (uc *authUsecase) ValidateToken(ctx context.Context, token string, allowExpired bool) (*models.Session, error) {
	secret := uc.InternalConfig.JWT.Secret
	if secret == "" {
		return nil, exceptions.ErrJWTSecretMissing(nil)
	}

	parse := utils.ParseJWT
	if allowExpired {
		parse = utils.ParseJWTAllowExpired
	}
	sessionID, err := parse(token, secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	return uc.SessionService.GetSession(ctx, sessionID)
}

func (uc *authUsecase) issueSession(ctx context.Context, user *models.User) (*responses.Login, error) {
	if uc.InternalConfig.JWT.Secret == "" {
		return nil, exceptions.ErrJWTSecretMissing(nil)
	}

	session, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.signToken(session.SessionID)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      utils.ConvertUserToResponse(user),
	}, nil
}

func (uc *authUsecase) signToken(sessionID string) (string, time.Time, error) {
	secret := uc.InternalConfig.JWT.Secret
	if secret == "" {
		return "", time.Time{}, exceptions.ErrJWTSecretMissing(nil)
	}
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInMinutes) * time.Minute
	token, expiresAt, err := utils.GenerateSessionJWT(sessionID, secret, ttl)
	if err != nil {
		return "", time.Time{}, exceptions.ErrTokenGenerate(err)
	}
	return token, expiresAt, nil
}

func (uc *authUsecase) activeUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	if user.IsDisabled() {
		return nil, exceptions.ErrAccountDisabled(nil)
	}
	return user, nil
}

func (uc *authUsecase) notify(ctx context.Context, request *requests.CreateNotification) {
	if uc.NotificationUsecase == nil {
		return
	}
	if _, err := uc.NotificationUsecase.Notify(ctx, request); err != nil {
		uc.Log.Warn("authUsecase.notify error creating notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
	}
}
