package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/delivery/http/controllers"
	"medadmin-service/internal/app/delivery/http/middlewares"
	"medadmin-service/internal/app/delivery/http/routers"
	smtpdriver "medadmin-service/internal/app/drivers/mailer"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/app/services/core/auth"
	medicalRecords "medadmin-service/internal/app/services/core/medical_records"
	"medadmin-service/internal/app/services/core/notifications"
	"medadmin-service/internal/app/services/core/patients"
	"medadmin-service/internal/app/services/core/session"
	"medadmin-service/internal/app/services/core/translation"
	"medadmin-service/internal/app/services/core/users"
	"medadmin-service/internal/app/services/shared/locker"
	"medadmin-service/internal/app/services/shared/mailer"
	"medadmin-service/internal/app/services/shared/metrics"
	"medadmin-service/internal/app/services/shared/ratelimiter"
	redisrepo "medadmin-service/internal/app/services/shared/redis"
	"medadmin-service/internal/app/services/shared/translator"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// App exposes the wired use cases so callers can reach them after routes are mounted.
type App struct {
	UserRepository       contracts.UserRepository
	AuthUsecase          contracts.AuthUsecase
	PatientUsecase       contracts.PatientUsecase
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	NotificationUsecase  contracts.NotificationUsecase
	TranslationUsecase   contracts.TranslationUsecase
	Metrics              *metrics.HTTPMetrics
}

type repositories struct {
	users         contracts.UserRepository
	patients      contracts.PatientRepository
	records       contracts.MedicalRecordRepository
	notifications contracts.NotificationRepository
}

// BootstrapingTheApp wires repositories, services, controllers and routes onto
// bootstrap.Router. Redis is required. MongoDB and RabbitMQ are needed only when
// the configured storage and mailer drivers ask for them.
func BootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) (*App, error) {
	if bootstrap.Redis == nil {
		return nil, errors.New("bootstrap: redis client is required")
	}
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Metrics
	var httpMetrics *metrics.HTTPMetrics
	if bootstrap.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(bootstrap.Registry)
	}

	// Redis
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)

	// Storage
	repos, err := newRepositories(ctx, bootstrap)
	if err != nil {
		return nil, err
	}

	// Mailer
	mailerService, err := newMailerService(bootstrap)
	if err != nil {
		return nil, err
	}

	// Notification
	notificationUsecase := notifications.NewNotificationUsecase(repos.notifications, log)

	// Auth
	sessionService := session.NewSessionService(
		redisRepository,
		time.Duration(cfg.Auth.SessionExpTimeInHours)*time.Hour,
		log,
	)
	loginLimiter := ratelimiter.NewAttemptLimiter(
		redisRepository,
		log,
		constvars.AuthEventLogin,
		time.Duration(cfg.Auth.LoginAttemptWindowInSeconds)*time.Second,
		cfg.Auth.LoginMaxAttempts,
	)
	authUsecase := auth.NewAuthUsecase(auth.AuthUsecaseDependencies{
		UserRepository:      repos.users,
		SessionService:      sessionService,
		RedisRepository:     redisRepository,
		MailerService:       mailerService,
		NotificationUsecase: notificationUsecase,
		LockerService:       locker.NewLockService(redisRepository, log),
		LoginLimiter:        loginLimiter,
		Metrics:             httpMetrics,
		InternalConfig:      cfg,
		Logger:              log,
	})

	// Patient and medical record
	patientUsecase := patients.NewPatientUsecase(repos.patients, log)
	medicalRecordUsecase := medicalRecords.NewMedicalRecordUsecase(repos.records, repos.patients, notificationUsecase, log)

	// Translation
	translationUsecase := translation.NewTranslationUsecase(translator.NewTranslatorService(cfg.Translator, log), httpMetrics, log)

	if cfg.App.SeedDemoUsers {
		if err := seedDemoUsers(ctx, repos.users, notificationUsecase, log); err != nil {
			return nil, err
		}
	}

	// Delivery
	timeout := time.Duration(cfg.App.RequestTimeoutInSeconds) * time.Second
	healthChecks := map[string]controllers.HealthCheck{
		"redis": func(ctx context.Context) error {
			return bootstrap.Redis.Ping(ctx).Err()
		},
	}
	if bootstrap.MongoDB != nil {
		healthChecks["mongodb"] = func(ctx context.Context) error {
			return bootstrap.MongoDB.Client().Ping(ctx, nil)
		}
	}

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares.NewMiddlewares(log, authUsecase, httpMetrics, cfg),
		gathererOf(bootstrap),
		bootstrap.AccessLogger,
		&routers.Controllers{
			Auth:          controllers.NewAuthController(log, authUsecase, timeout),
			Patient:       controllers.NewPatientController(log, patientUsecase, timeout),
			MedicalRecord: controllers.NewMedicalRecordController(log, medicalRecordUsecase, timeout),
			Notification:  controllers.NewNotificationController(log, notificationUsecase, timeout),
			Translation:   controllers.NewTranslationController(log, translationUsecase, timeout),
			Health:        controllers.NewHealthController(log, cfg.App.Version, healthChecks),
		},
	)

	return &App{
		UserRepository:       repos.users,
		AuthUsecase:          authUsecase,
		PatientUsecase:       patientUsecase,
		MedicalRecordUsecase: medicalRecordUsecase,
		NotificationUsecase:  notificationUsecase,
		TranslationUsecase:   translationUsecase,
		Metrics:              httpMetrics,
	}, nil
}

func newRepositories(ctx context.Context, bootstrap *config.Bootstrap) (*repositories, error) {
	switch bootstrap.InternalConfig.App.StorageDriver {
	case constvars.StorageDriverMongo:
		if bootstrap.MongoDB == nil {
			return nil, errors.New("bootstrap: mongo storage driver selected without a mongo database")
		}
		userRepository, err := users.NewUserMongoRepository(ctx, bootstrap.MongoDB)
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:         userRepository,
			patients:      patients.NewPatientMongoRepository(bootstrap.MongoDB),
			records:       medicalRecords.NewMedicalRecordMongoRepository(bootstrap.MongoDB),
			notifications: notifications.NewNotificationMongoRepository(bootstrap.MongoDB),
		}, nil
	case constvars.StorageDriverMemory, "":
		return &repositories{
			users:         users.NewUserMemoryRepository(),
			patients:      patients.NewPatientMemoryRepository(),
			records:       medicalRecords.NewMedicalRecordMemoryRepository(),
			notifications: notifications.NewNotificationMemoryRepository(),
		}, nil
	default:
		return nil, fmt.Errorf("bootstrap: unknown storage driver %q", bootstrap.InternalConfig.App.StorageDriver)
	}
}

func newMailerService(bootstrap *config.Bootstrap) (contracts.MailerService, error) {
	switch bootstrap.InternalConfig.App.MailerDriver {
	case constvars.MailerDriverRabbitMQ:
		if bootstrap.RabbitMQ == nil {
			return nil, errors.New("bootstrap: rabbitmq mailer driver selected without a rabbitmq connection")
		}
		return mailer.NewRabbitMQMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	case constvars.MailerDriverSMTP:
		if bootstrap.DriverConfig == nil {
			return nil, errors.New("bootstrap: smtp mailer driver selected without driver config")
		}
		return mailer.NewSMTPMailerService(smtpdriver.NewSMTPClient(bootstrap.DriverConfig), nil, bootstrap.Logger), nil
	case constvars.MailerDriverLog, "":
		return mailer.NewLogMailerService(bootstrap.Logger), nil
	default:
		return nil, fmt.Errorf("bootstrap: unknown mailer driver %q", bootstrap.InternalConfig.App.MailerDriver)
	}
}

func seedDemoUsers(ctx context.Context, userRepository contracts.UserRepository, notificationUsecase contracts.NotificationUsecase, log *zap.Logger) error {
	seeded, err := users.SeedDemoUsers(ctx, userRepository, log)
	if err != nil {
		return err
	}
	for _, user := range seeded {
		if _, err := notificationUsecase.Notify(ctx, welcomeNotification(&user)); err != nil {
			return err
		}
	}
	log.Info("bootstrap.seedDemoUsers succeeded", zap.Int(constvars.LoggingCountKey, len(seeded)))
	return nil
}

func welcomeNotification(user *models.User) *requests.CreateNotification {
	return &requests.CreateNotification{
		UserID:  user.ID,
		Title:   constvars.NotificationTitleWelcome,
		Message: fmt.Sprintf(constvars.NotificationMessageWelcomeFmt, user.Name),
		Type:    constvars.NotificationTypeSystem,
	}
}

// gathererOf avoids handing routers a typed nil registry.
func gathererOf(bootstrap *config.Bootstrap) prometheus.Gatherer {
	if bootstrap.Registry == nil {
		return nil
	}
	return bootstrap.Registry
}
