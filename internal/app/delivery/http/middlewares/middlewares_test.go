package middlewares

import (
	"context"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/app/services/shared/metrics"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/dto/responses"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Login)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Register)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, session *models.Session) (*responses.Login, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.Login)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) ValidateToken(ctx context.Context, token string, allowExpired bool) (*models.Session, error) {
	args := m.Called(ctx, token, allowExpired)
	result, _ := args.Get(0).(*models.Session)
	return result, args.Error(1)
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) responses.ResponseDTO {
	t.Helper()
	var body responses.ResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	m := &Middlewares{Log: zap.NewNop(), AuthUsecase: authUsecase}
	session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleDoctor}

	var seen *models.Session
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Missing header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.ErrCodeUnauthorized, decodeEnvelope(t, rr).Code)
	})

	t.Run("Non bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abc")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		authUsecase.On("ValidateToken", mock.Anything, "bad", false).Return(nil, exceptions.ErrTokenInvalidOrExpired(nil)).Once()
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.ErrCodeTokenInvalid, decodeEnvelope(t, rr).Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		authUsecase.On("ValidateToken", mock.Anything, "good", false).Return(session, nil).Once()
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, session, seen)
	})

	authUsecase.AssertExpectations(t)
}

func TestAuthenticateAllowExpired(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	m := &Middlewares{Log: zap.NewNop(), AuthUsecase: authUsecase}
	authUsecase.On("ValidateToken", mock.Anything, "expired", true).Return(&models.Session{UserID: "user-1"}, nil).Once()

	handler := m.AuthenticateAllowExpired(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set(constvars.HeaderAuthorization, "bearer expired")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	authUsecase.AssertExpectations(t)
}

func TestRequireRoles(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.RequireRoles(constvars.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		session  *models.Session
		expected int
	}{
		{name: "admin allowed", session: &models.Session{Role: constvars.RoleAdmin}, expected: http.StatusOK},
		{name: "doctor forbidden", session: &models.Session{Role: constvars.RoleDoctor}, expected: http.StatusForbidden},
		{name: "no session", session: nil, expected: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/patients/1", nil)
			if tt.session != nil {
				req = req.WithContext(utils.SetSessionToContext(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.expected, rr.Code)
		})
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, 30*time.Second, zap.NewNop())
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"), "other addresses keep their own bucket")

	current = current.Add(31 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1003"), "bucket is still empty after the block ends")

	current = current.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1004"))
}

func TestRateLimiter_SweepsIdleAddresses(t *testing.T) {
	limiter := NewRateLimiter(2, time.Second, 10*time.Second, zap.NewNop())
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, ok := limiter.allow(ip)
		require.True(t, ok)
	}
	for i := 0; i < 3; i++ {
		limiter.allow("10.0.0.9")
	}
	assert.Equal(t, 4, limiter.size())

	current = current.Add(5 * time.Second)
	_, ok := limiter.allow("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 4, limiter.size(), "entries younger than the idle ttl are kept")

	current = current.Add(6 * time.Second)
	_, ok = limiter.allow("10.0.0.4")
	assert.True(t, ok)
	assert.Equal(t, 2, limiter.size(), "idle addresses are dropped, the recently seen one stays")
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}

func TestInstrument_UsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := &Middlewares{Log: zap.NewNop(), Metrics: metrics.NewHTTPMetrics(reg)}

	router := chi.NewRouter()
	router.Use(m.Instrument)
	router.Get("/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/patients/abc", nil))

	families, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, family := range families {
		if family.GetName() != "medadmin_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			if labels["route"] == "/patients/{id}" && labels["status"] == "404" {
				found = true
			}
		}
	}
	assert.True(t, found)
}
