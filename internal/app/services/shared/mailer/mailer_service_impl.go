package mailer

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the subset of *amqp091.Channel used to enqueue mail.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQMailerService struct {
	Publisher Publisher
	Queue     string
	Log       *zap.Logger
}

// NewRabbitMQMailerService opens a channel on conn and publishes every email
// as a persistent JSON message on queue.
func NewRabbitMQMailerService(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}
	return NewPublisherMailerService(channel, queue, logger), nil
}

func NewPublisherMailerService(publisher Publisher, queue string, logger *zap.Logger) contracts.MailerService {
	return &rabbitMQMailerService{
		Publisher: publisher,
		Queue:     queue,
		Log:       logger,
	}
}

func (s *rabbitMQMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := json.Marshal(request)
	if err != nil {
		s.Log.Error("mailerService.SendEmail error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    utils.GenerateID(),
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
			"request_id":       requestID,
		},
	}

	err = s.Publisher.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("mailerService.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("mailerService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}

type logMailerService struct {
	Log *zap.Logger
}

// NewLogMailerService writes emails to the log instead of delivering them.
func NewLogMailerService(logger *zap.Logger) contracts.MailerService {
	return &logMailerService{Log: logger}
}

func (s *logMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	s.Log.Info("mailerService.SendEmail delivered to log",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Strings("to", request.To),
		zap.String("subject", request.Subject),
		zap.String("body", request.Body),
	)
	return nil
}
