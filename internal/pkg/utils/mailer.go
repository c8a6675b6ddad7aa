package utils

import (
	"fmt"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"strings"
)

func BuildResetPasswordLink(appURL, token string) string {
	return fmt.Sprintf(constvars.ResetPasswordURLPathFormat, strings.TrimRight(appURL, "/"), token)
}

func BuildResetPasswordEmailPayload(toEmail, userFullName, resetLink string, expiryMinutes int) *requests.EmailPayload {
	return &requests.EmailPayload{
		To:      []string{toEmail},
		Subject: constvars.EmailSubjectResetPassword,
		Body:    fmt.Sprintf(constvars.EmailBodyResetPasswordFmt, userFullName, expiryMinutes, resetLink),
	}
}
