package constvars

const (
	EmailSubjectResetPassword  = "Reset your password"
	EmailBodyResetPasswordFmt  = "Hello %s,\n\nUse the link below to reset your password. The link expires in %d minutes.\n\n%s\n"
	ResetPasswordURLPathFormat = "%s/reset-password?token=%s"
)

const (
	NotificationTitleWelcome            = "Welcome"
	NotificationMessageWelcomeFmt       = "Welcome %s, your account has been created."
	NotificationTitlePasswordReset      = "Password changed"
	NotificationMessagePasswordReset    = "Your password was reset. If this was not you, contact an administrator."
	NotificationTitleMedicalRecordAdded = "New medical record"
	NotificationMessageMedicalRecordFmt = "A %s record \"%s\" was added for patient %s."
)
