package constvars

type ContextKey string

const (
	ResourceAuth           = "auth"
	ResourcePatients       = "patients"
	ResourceMedicalRecords = "medical-records"
	ResourceNotifications  = "notifications"
	ResourceTranslate      = "translate"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MEDADMIN_SVC_"
)

const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
)

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

const (
	PatientStatusActive     = "active"
	PatientStatusInactive   = "inactive"
	PatientStatusDischarged = "discharged"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverMongo  = "mongo"

	MailerDriverLog      = "log"
	MailerDriverRabbitMQ = "rabbitmq"
	MailerDriverSMTP     = "smtp"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionMedicalRecords = "medical_records"
	MongoCollectionNotifications  = "notifications"
)

const (
	RedisKeySessionPrefix       = "session:"
	RedisKeyResetPasswordPrefix = "reset_password:"
	RedisKeyLockPrefix          = "lock:"
)

const (
	TranslatorAPIVersion  = "3.0"
	TranslatorDefaultHost = "https://api.cognitive.microsofttranslator.com"
	TranslatorMaxBatch    = 100
)

const (
	NotificationTypeSystem        = "system"
	NotificationTypeMedicalRecord = "medical_record"
	NotificationTypeSecurity      = "security"
)

const (
	AuthEventLogin          = "login"
	AuthEventRegister       = "register"
	AuthEventForgotPassword = "forgot_password"
	AuthEventResetPassword  = "reset_password"
	AuthEventRefresh        = "refresh"

	AuthOutcomeSuccess = "success"
	AuthOutcomeFailure = "failure"
)
