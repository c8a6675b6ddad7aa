package config

import (
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessFileName:      utils.GetEnvString("LOGGER_ACCESS_FILENAME", "access.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 587),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@yanyucloud.com"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			URL:                       utils.GetEnvStringWithFallback("APP_URL", "NEXT_PUBLIC_APP_URL", "http://localhost:3000"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:            splitAndTrim(utils.GetEnvString("APP_ALLOWED_ORIGINS", "http://localhost:3000")),
			StorageDriver:             utils.GetEnvString("APP_STORAGE_DRIVER", constvars.StorageDriverMemory),
			MailerDriver:              utils.GetEnvString("APP_MAILER_DRIVER", constvars.MailerDriverLog),
			SeedDemoUsers:             utils.GetEnvBool("APP_SEED_DEMO_USERS", true),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT", 10),
		},
		JWT: AppJWT{
			Secret:           utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInMinutes: utils.GetEnvInt("JWT_EXP_TIME_IN_MINUTE", 60),
		},
		Auth: AppAuth{
			SessionExpTimeInHours:                   utils.GetEnvInt("APP_SESSION_EXP_TIME_IN_HOUR", 24),
			ForgotPasswordTokenExpiredTimeInMinutes: utils.GetEnvInt("APP_FORGOT_PASSWORD_TOKEN_EXP_TIME_IN_MINUTE", 30),
			LoginMaxAttempts:                        utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 10),
			LoginAttemptWindowInSeconds:             utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_IN_SECONDS", 300),
		},
		Translator: AppTranslator{
			Key:               utils.GetEnvString("TRANSLATOR_KEY", ""),
			Region:            utils.GetEnvString("TRANSLATOR_REGION", ""),
			Endpoint:          utils.GetEnvString("TRANSLATOR_ENDPOINT", constvars.TranslatorDefaultHost),
			RequestsPerSecond: utils.GetEnvInt("TRANSLATOR_REQUESTS_PER_SECOND", 5),
			Burst:             utils.GetEnvInt("TRANSLATOR_BURST", 5),
			TimeoutInSeconds:  utils.GetEnvInt("TRANSLATOR_TIMEOUT", 10),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
		},
		MongoDB: AppMongoDB{
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "medadmin"),
		},
	}
}

func splitAndTrim(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
