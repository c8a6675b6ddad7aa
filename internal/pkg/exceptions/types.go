package exceptions

import (
	"fmt"
	"medadmin-service/internal/pkg/constvars"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrCodeValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrCodeInvalidJSON, constvars.ErrClientInvalidRequestBody, constvars.ErrDevCannotParseJSON)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrCodeInvalidURLParamID, constvars.ErrClientInvalidID, fmt.Sprintf(constvars.ErrDevURLParamIDValidation, paramName))
	}
	ErrPasswordDoNotMatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrCodePasswordsDoNotMatch, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevPasswordsDoNotMatch)
	}
	ErrTooManyTexts = func(err error, max int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrCodeTooManyTranslateTexts, fmt.Sprintf(constvars.ErrClientTooManyTexts, max), constvars.ErrDevInvalidInput)
	}

	// Authentication
	ErrInvalidEmail = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindAuthentication, constvars.ErrCodeInvalidEmail, constvars.ErrClientEmailNotRegistered, constvars.ErrDevUserNotExists)
	}
	ErrInvalidPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindAuthentication, constvars.ErrCodeInvalidPassword, constvars.ErrClientWrongPassword, constvars.ErrDevPasswordMismatch)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindAuthentication, constvars.ErrCodeUnauthorized, constvars.ErrClientUnauthorizedAccess, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindAuthentication, constvars.ErrCodeTokenInvalid, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindAuthentication, constvars.ErrCodeTokenInvalid, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrResetTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindAuthentication, constvars.ErrCodeResetTokenInvalid, constvars.ErrClientResetPasswordTokenInvalid, constvars.ErrDevResetTokenNotFound)
	}

	ErrTooManyAttempts = func(err error, subject string, retryAfterSeconds int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, KindAuthentication, constvars.ErrCodeTooManyRequests, fmt.Sprintf(constvars.ErrClientTooManyAttempts, retryAfterSeconds), fmt.Sprintf(constvars.ErrDevTooManyAttempts, subject))
	}

	// Authorization
	ErrAccountDisabled = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, KindAuthorization, constvars.ErrCodeAccountDisabled, constvars.ErrClientAccountDisabled, constvars.ErrDevAccountDisabled)
	}
	ErrPermissionDenied = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, KindAuthorization, constvars.ErrCodeForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthPermissionDenied)
	}

	// Not found / conflict
	ErrResourceNotFound = func(err error, resource, id string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrCodeNotFound, fmt.Sprintf(constvars.ErrClientResourceNotFound, resource), fmt.Sprintf(constvars.ErrDevResourceNotFound, resource, id))
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, KindConflict, constvars.ErrCodeEmailAlreadyExists, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}

	// Infrastructure
	ErrJWTSecretMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeServiceMisconfigured, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevJWTSecretMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, KindInfrastructure, constvars.ErrCodeDeadlineExceeded, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisExpire = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisExpireData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPublishMessage, queueName))
	}
	ErrSMTPSendEmail = func(err error, host string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, host))
	}

	// HTTP

	// Translation
	ErrTranslationFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInfrastructure, constvars.ErrCodeTranslationFailed, constvars.ErrClientTranslationFailed, constvars.ErrDevServerProcess)
	}
)
