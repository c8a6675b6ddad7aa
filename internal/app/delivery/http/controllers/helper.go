package controllers

import (
	"context"
	"errors"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func sessionFromRequest(r *http.Request) (*models.Session, error) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return session, nil
}

func idParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParamID(id); err != nil {
		return "", exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return id, nil
}
