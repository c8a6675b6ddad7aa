package messaging

import (
	"fmt"
	"medadmin-service/internal/app/config"
	"net"
	"net/url"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPURI builds the broker url from the driver config.
func AMQPURI(rabbitConfig config.RabbitMQ) string {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(rabbitConfig.Username, rabbitConfig.Password),
		Host:   net.JoinHostPort(rabbitConfig.Host, rabbitConfig.Port),
		Path:   "/",
	}
	return uri.String()
}

// NewRabbitMQ dials the broker used by the queued mailer.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) (*amqp091.Connection, error) {
	conn, err := amqp091.Dial(AMQPURI(driverConfig.RabbitMQ))
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq at %s: %w", driverConfig.RabbitMQ.Host, err)
	}
	log.Info("Connected to rabbitmq", zap.String("host", driverConfig.RabbitMQ.Host))
	return conn, nil
}
