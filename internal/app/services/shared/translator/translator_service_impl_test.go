package translator

import (
	"context"
	"errors"
	"io"
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAzureTestService(t *testing.T, handler http.HandlerFunc) *azureTranslatorService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewTranslatorService(config.AppTranslator{
		Key:               "test-key",
		Region:            "eastasia",
		Endpoint:          server.URL + "/",
		RequestsPerSecond: 100,
		Burst:             10,
		TimeoutInSeconds:  5,
	}, zap.NewNop())

	azure, ok := svc.(*azureTranslatorService)
	require.True(t, ok)
	return azure
}

func TestNewTranslatorService_PassthroughWithoutKey(t *testing.T) {
	svc := NewTranslatorService(config.AppTranslator{}, zap.NewNop())

	translations, err := svc.Translate(context.Background(), []string{"你好", "患者"}, "en", "")

	require.NoError(t, err)
	assert.Equal(t, ProviderPassthrough, svc.Provider())
	assert.Equal(t, []string{"你好", "患者"}, translations)
}

func TestAzureTranslatorService_Translate(t *testing.T) {
	svc := newAzureTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "3.0", r.URL.Query().Get("api-version"))
		assert.Equal(t, "en", r.URL.Query().Get("to"))
		assert.Equal(t, "zh-Hans", r.URL.Query().Get("from"))
		assert.Equal(t, "test-key", r.Header.Get(constvars.HeaderTranslatorKey))
		assert.Equal(t, "eastasia", r.Header.Get(constvars.HeaderTranslatorRegion))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[{"Text":"你好"},{"Text":"患者"}]`, string(body))

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`[{"translations":[{"text":"Hello","to":"en"}]},{"translations":[{"text":"Patient","to":"en"}]}]`))
	})

	translations, err := svc.Translate(context.Background(), []string{"你好", "患者"}, "en", "zh-Hans")

	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "Patient"}, translations)
	assert.Equal(t, ProviderAzure, svc.Provider())
}

func TestAzureTranslatorService_ProviderError(t *testing.T) {
	svc := newAzureTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401000,"message":"invalid subscription key"}}`))
	})

	_, err := svc.Translate(context.Background(), []string{"你好"}, "en", "")

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	assert.Equal(t, constvars.ErrCodeTranslationFailed, customErr.Code)
	assert.Contains(t, customErr.DevMessage, "invalid subscription key")
}

func TestAzureTranslatorService_CountMismatch(t *testing.T) {
	svc := newAzureTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"translations":[{"text":"Hello","to":"en"}]}]`))
	})

	_, err := svc.Translate(context.Background(), []string{"你好", "患者"}, "en", "")

	assert.Error(t, err)
}

func TestAzureTranslatorService_CancelledContext(t *testing.T) {
	svc := newAzureTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Translate(ctx, []string{"你好"}, "en", "")

	assert.Error(t, err)
}
