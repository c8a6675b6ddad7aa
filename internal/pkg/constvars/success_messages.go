package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccessMessage          = "login successful"
	LogoutSuccessMessage         = "logout successful"
	RegisterSuccessMessage       = "registration successful"
	ForgotPasswordSuccessMessage = "if the email is registered, a password reset link has been sent"
	ResetPasswordSuccessMessage  = "password has been reset"
	RefreshTokenSuccessMessage   = "token refreshed"
	GetProfileSuccessMessage     = "profile fetched"

	GetPatientsSuccessMessage   = "patients fetched"
	GetPatientSuccessMessage    = "patient fetched"
	CreatePatientSuccessMessage = "patient created"
	UpdatePatientSuccessMessage = "patient updated"
	DeletePatientSuccessMessage = "patient deleted"

	GetMedicalRecordsSuccessMessage   = "medical records fetched"
	GetMedicalRecordSuccessMessage    = "medical record fetched"
	CreateMedicalRecordSuccessMessage = "medical record created"
	UpdateMedicalRecordSuccessMessage = "medical record updated"
	DeleteMedicalRecordSuccessMessage = "medical record deleted"

	GetNotificationsSuccessMessage   = "notifications fetched"
	UpdateNotificationSuccessMessage = "notification updated"
	DeleteNotificationSuccessMessage = "notification deleted"

	TranslateBatchSuccessMessage = "translation completed"
	HealthCheckSuccessMessage    = "ok"
)
