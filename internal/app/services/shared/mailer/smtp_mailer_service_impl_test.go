package mailer

import (
	"context"
	"errors"
	smtpdriver "medadmin-service/internal/app/drivers/mailer"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSMTPMailerService_SendEmail(t *testing.T) {
	client := &smtpdriver.SMTPClient{Host: "smtp.yanyucloud.com", Port: 587, EmailSender: "no-reply@yanyucloud.com"}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMessage []byte
	svc := NewSMTPMailerService(client, func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMessage = addr, from, to, msg
		return nil
	}, zap.NewNop())

	err := svc.SendEmail(context.Background(), &requests.EmailPayload{
		To:      []string{"doctor@yanyucloud.com"},
		Subject: constvars.EmailSubjectResetPassword,
		Body:    "https://admin.example.com/reset-password?token=abc",
	})

	require.NoError(t, err)
	assert.Equal(t, "smtp.yanyucloud.com:587", gotAddr)
	assert.Equal(t, "no-reply@yanyucloud.com", gotFrom)
	assert.Equal(t, []string{"doctor@yanyucloud.com"}, gotTo)
	assert.Contains(t, string(gotMessage), "Subject: Reset your password\r\n")
	assert.Contains(t, string(gotMessage), "To: doctor@yanyucloud.com\r\n")
	assert.Contains(t, string(gotMessage), "reset-password?token=abc")
}

func TestSMTPMailerService_SendEmailFailure(t *testing.T) {
	client := &smtpdriver.SMTPClient{Host: "smtp.yanyucloud.com", Port: 25}
	svc := NewSMTPMailerService(client, func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}, zap.NewNop())

	err := svc.SendEmail(context.Background(), &requests.EmailPayload{To: []string{"a@b.com"}})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	assert.Contains(t, customErr.DevMessage, "smtp.yanyucloud.com")
}
