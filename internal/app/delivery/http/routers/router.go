package routers

import (
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/app/delivery/http/controllers"
	"medadmin-service/internal/app/delivery/http/middlewares"
	"medadmin-service/internal/pkg/constvars"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	authRateLimitBurst    = 20
	authRateLimitInterval = 3 * time.Second
	authRateLimitBlock    = time.Minute
)

type Controllers struct {
	Auth          *controllers.AuthController
	Patient       *controllers.PatientController
	MedicalRecord *controllers.MedicalRecordController
	Notification  *controllers.NotificationController
	Translation   *controllers.TranslationController
	Health        *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	gatherer prometheus.Gatherer,
	accessLogger *logrus.Logger,
	ctrls *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.ErrorHandler)
	if accessLogger != nil {
		router.Use(middlewares.RequestLogger(accessLogger))
	}
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.Instrument)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Cache-Control", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Get("/healthz", ctrls.Health.Healthz)
	if gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	authRateLimiter := middlewares.NewRateLimiter(authRateLimitBurst, authRateLimitInterval, authRateLimitBlock)

	router.Route(endpointPrefix(internalConfig.App.EndpointPrefix), func(r chi.Router) {
		if internalConfig.App.MaxRequests > 0 {
			r.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))
		}

		r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authRateLimiter, ctrls.Auth)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, ctrls.Patient)
		})

		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, middlewares, ctrls.MedicalRecord)
		})

		r.Route("/notifications", func(r chi.Router) {
			attachNotificationRoutes(r, middlewares, ctrls.Notification)
		})

		r.Route("/"+constvars.ResourceTranslate, func(r chi.Router) {
			attachTranslationRoutes(r, ctrls.Translation)
		})
	})
}

func endpointPrefix(prefix string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return "/api"
	}
	return "/" + trimmed
}
