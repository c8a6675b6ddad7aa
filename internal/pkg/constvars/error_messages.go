package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"dive":     "contains an invalid item",
	"password": "must be at least 8 characters long",
	"cn_phone": "phone number format is invalid, expected an 11-digit mobile number starting with 1",
	"datetime": "must be a date in %s format",
}

// Tags whose message already names the problem without the field prefix
var StandaloneValidationTags = map[string]bool{
	"cn_phone": true,
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"eqfield":  true,
	"oneof":    true,
	"datetime": true,
}

// Machine readable error codes returned to clients
const (
	ErrCodeValidation            = "VALIDATION_ERROR"
	ErrCodeInvalidJSON           = "INVALID_JSON"
	ErrCodeInvalidEmail          = "INVALID_EMAIL"
	ErrCodeInvalidPassword       = "INVALID_PASSWORD"
	ErrCodeAccountDisabled       = "ACCOUNT_DISABLED"
	ErrCodeEmailAlreadyExists    = "EMAIL_ALREADY_EXISTS"
	ErrCodeUnauthorized          = "UNAUTHORIZED"
	ErrCodeTokenInvalid          = "TOKEN_INVALID"
	ErrCodeForbidden             = "FORBIDDEN"
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeResetTokenInvalid     = "RESET_TOKEN_INVALID"
	ErrCodeServiceMisconfigured  = "SERVICE_MISCONFIGURED"
	ErrCodeTranslationFailed     = "TRANSLATION_FAILED"
	ErrCodeDeadlineExceeded      = "DEADLINE_EXCEEDED"
	ErrCodeInternal              = "INTERNAL_ERROR"
	ErrCodeNetwork               = "NETWORK_ERROR"
	ErrCodeRequestCancelled      = "REQUEST_CANCELLED"
	ErrCodePasswordsDoNotMatch   = "PASSWORDS_DO_NOT_MATCH"
	ErrCodeInvalidURLParamID     = "INVALID_ID"
	ErrCodeTooManyTranslateTexts = "TOO_MANY_TEXTS"
	ErrCodeTooManyRequests       = "TOO_MANY_REQUESTS"
)

// Error messages for clients
const (
	ErrClientUnauthorizedAccess            = "unauthorized access"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidRequestBody            = "request body is not valid JSON"
	ErrClientEmailNotRegistered            = "no account found for this email"
	ErrClientWrongPassword                 = "incorrect password"
	ErrClientAccountDisabled               = "this account has been disabled, please contact an administrator"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResetPasswordTokenInvalid     = "reset password link is invalid or has expired"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientTranslationFailed             = "translation service is unavailable"
	ErrClientTooManyTexts                  = "too many texts in a single batch, maximum is %d"
	ErrClientInvalidID                     = "invalid id"
	ErrClientRequestFailedFormat           = "request failed with status %d"
	ErrClientNetworkFormat                 = "network error: %s"
	ErrClientRequestCancelled              = "request cancelled"
	ErrClientTooManyAttempts               = "too many attempts, please try again in %d seconds"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevUserNotExists          = "user does not exist"
	ErrDevPasswordMismatch       = "password does not match stored hash"
	ErrDevAccountDisabled        = "account status is disabled"
	ErrDevEmailAlreadyExists     = "email already exists"
	ErrDevPasswordsDoNotMatch    = "passwords do not match"
	ErrDevAuthTokenMissing       = "token missing"
	ErrDevAuthTokenInvalid       = "token invalid or expired"
	ErrDevAuthSigningMethod      = "unexpected signing method"
	ErrDevAuthGenerateToken      = "failed to generate token"
	ErrDevAuthInvalidSession     = "session not found or expired"
	ErrDevAuthPermissionDenied   = "permission denied"
	ErrDevJWTSecretMissing       = "JWT_SECRET is not configured"
	ErrDevResetTokenNotFound     = "reset password token not found in redis"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process request"
	ErrDevURLParamIDValidation   = "url param %s failed validation"
	ErrDevResourceNotFound       = "%s with id %s not found"
	ErrDevDecodeResponse         = "failed to decode response from %s"
	ErrDevTranslatorFailed       = "translator provider returned status %d"
	ErrDevTranslatorCountMissing = "translator returned %d results for %d texts"
	ErrDevPublishMessage         = "failed to publish message to queue %s"
	ErrDevSMTPSendEmail          = "failed to send email through smtp host %s"
	ErrDevTooManyAttempts        = "attempt limit reached for %s"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisExpireData = "failed to extend ttl in redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"
)
