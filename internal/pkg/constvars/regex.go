package constvars

const (
	// Mainland China mobile number, 11 digits.
	RegexChinaMobileNumber = `^1[3-9]\d{9}$`
)

const (
	MinPasswordLength = 8
)
