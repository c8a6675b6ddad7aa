package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingUserIDKey         = "user_id"
	LoggingEmailKey          = "email"
	LoggingSessionIDKey      = "session_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingRecordIDKey       = "record_id"
	LoggingNotificationIDKey = "notification_id"
	LoggingURLKey            = "url"
	LoggingCountKey          = "count"
	LoggingErrorCodeKey      = "error_code"
	LoggingQueueNameKey      = "queue_name"
	LoggingProviderKey       = "provider"
)

const (
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
)
