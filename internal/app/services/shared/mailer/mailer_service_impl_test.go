package mailer

import (
	"context"
	"errors"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestRabbitMQMailerService_SendEmail(t *testing.T) {
	publisher := new(mockPublisher)
	svc := NewPublisherMailerService(publisher, "mailer", zap.NewNop())
	payload := &requests.EmailPayload{
		To:      []string{"doctor@yanyucloud.com"},
		Subject: "Reset your password",
		Body:    "link",
	}

	publisher.On("PublishWithContext", mock.Anything, "", "mailer", false, false, mock.MatchedBy(func(msg amqp091.Publishing) bool {
		var decoded requests.EmailPayload
		if err := json.Unmarshal(msg.Body, &decoded); err != nil {
			return false
		}
		return msg.ContentType == constvars.MIMEApplicationJSON &&
			msg.DeliveryMode == amqp091.Persistent &&
			decoded.To[0] == "doctor@yanyucloud.com"
	})).Return(nil).Once()

	err := svc.SendEmail(context.Background(), payload)

	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestRabbitMQMailerService_SendEmailPublishError(t *testing.T) {
	publisher := new(mockPublisher)
	svc := NewPublisherMailerService(publisher, "mailer", zap.NewNop())

	publisher.On("PublishWithContext", mock.Anything, "", "mailer", false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()

	err := svc.SendEmail(context.Background(), &requests.EmailPayload{To: []string{"a@b.com"}})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	assert.Contains(t, customErr.DevMessage, "mailer")
}

func TestLogMailerService_SendEmail(t *testing.T) {
	svc := NewLogMailerService(zap.NewNop())

	assert.NoError(t, svc.SendEmail(context.Background(), &requests.EmailPayload{To: []string{"a@b.com"}}))
}
