package mailer

import (
	"context"
	"fmt"
	"medadmin-service/internal/app/contracts"
	smtpdriver "medadmin-service/internal/app/drivers/mailer"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type smtpMailerService struct {
	Client   *smtpdriver.SMTPClient
	SendMail SendMailFunc
	Log      *zap.Logger
}

// NewSMTPMailerService delivers mail synchronously through the configured SMTP relay.
func NewSMTPMailerService(client *smtpdriver.SMTPClient, sendMail SendMailFunc, logger *zap.Logger) contracts.MailerService {
	if sendMail == nil {
		sendMail = smtp.SendMail
	}
	return &smtpMailerService{
		Client:   client,
		SendMail: sendMail,
		Log:      logger,
	}
}

func (s *smtpMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("smtpMailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := ctx.Err(); err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	message := fmt.Sprintf(constvars.EmailSendBasicEmailFormat, s.Client.EmailSender, strings.Join(request.To, ", "), request.Subject, request.Body)
	err := s.SendMail(s.Client.Address(), s.Client.Auth, s.Client.EmailSender, request.To, []byte(message))
	if err != nil {
		s.Log.Error("smtpMailerService.SendEmail error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, s.Client.Address()),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	s.Log.Info("smtpMailerService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
