package middlewares

import (
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/services/shared/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	Metrics        *metrics.HTTPMetrics
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, httpMetrics *metrics.HTTPMetrics, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		Metrics:        httpMetrics,
		InternalConfig: internalConfig,
	}
}
