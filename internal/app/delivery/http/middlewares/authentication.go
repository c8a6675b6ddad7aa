package middlewares

import (
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a live session and stores it in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return m.authenticate(next, false)
}

// AuthenticateAllowExpired accepts a correctly signed token past its expiry as long as
// the session behind it is still alive. Only the refresh route uses it.
func (m *Middlewares) AuthenticateAllowExpired(next http.Handler) http.Handler {
	return m.authenticate(next, true)
}

func (m *Middlewares) authenticate(next http.Handler, allowExpired bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)

		token, ok := bearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			m.Log.Info("Middlewares.Authenticate missing bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.ValidateToken(ctx, token, allowExpired)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.SetSessionToContext(ctx, session)))
	})
}

// RequireRoles must run after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.GetSessionFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			if _, ok := allowed[session.Role]; !ok {
				m.Log.Info("Middlewares.RequireRoles permission denied",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingUserIDKey, session.UserID),
					zap.String("role", session.Role),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(constvars.BearerPrefix) || !strings.EqualFold(header[:len(constvars.BearerPrefix)], constvars.BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(constvars.BearerPrefix):])
	return token, token != ""
}
