package controllers

import (
	"context"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HealthCheck reports nil when the named dependency is reachable.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  map[string]HealthCheck
}

func NewHealthController(logger *zap.Logger, version string, checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		Log:     logger,
		Version: version,
		Checks:  checks,
	}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dependencies := make(map[string]string, len(ctrl.Checks))
	for name, check := range ctrl.Checks {
		if err := check(ctx); err != nil {
			ctrl.Log.Warn("HealthController.Healthz dependency unavailable",
				zap.String("dependency", name),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(err))
			return
		}
		dependencies[name] = constvars.HealthCheckSuccessMessage
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]interface{}{
		"version":      ctrl.Version,
		"dependencies": dependencies,
	})
}
