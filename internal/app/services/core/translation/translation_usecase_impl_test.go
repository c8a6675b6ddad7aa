package translation

import (
	"context"
	"errors"
	"medadmin-service/internal/app/services/shared/metrics"
	"medadmin-service/internal/app/services/shared/translator"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockTranslatorService struct {
	mock.Mock
}

func (m *mockTranslatorService) Translate(ctx context.Context, texts []string, targetLanguage, sourceLanguage string) ([]string, error) {
	args := m.Called(ctx, texts, targetLanguage, sourceLanguage)
	result, _ := args.Get(0).([]string)
	return result, args.Error(1)
}

func (m *mockTranslatorService) Provider() string {
	return "mock"
}

func TestTranslationUsecase_Passthrough(t *testing.T) {
	uc := NewTranslationUsecase(translator.NewPassthroughTranslatorService(), nil, zap.NewNop())

	translations, provider, err := uc.TranslateBatch(context.Background(), []string{"你好", "病历"}, "en", "")

	require.NoError(t, err)
	assert.Equal(t, translator.ProviderPassthrough, provider)
	assert.Equal(t, []string{"你好", "病历"}, translations)
}

func TestTranslationUsecase_TooManyTexts(t *testing.T) {
	svc := new(mockTranslatorService)
	uc := NewTranslationUsecase(svc, nil, zap.NewNop())
	texts := make([]string, constvars.TranslatorMaxBatch+1)

	_, _, err := uc.TranslateBatch(context.Background(), texts, "en", "")

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	svc.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTranslationUsecase_ProviderFailure(t *testing.T) {
	svc := new(mockTranslatorService)
	reg := prometheus.NewRegistry()
	uc := NewTranslationUsecase(svc, metrics.NewHTTPMetrics(reg), zap.NewNop())
	svc.On("Translate", mock.Anything, []string{"a", "b"}, "zh-Hans", "en").Return(nil, errors.New("upstream 503")).Once()

	_, provider, err := uc.TranslateBatch(context.Background(), []string{"a", "b"}, "zh-Hans", "en")

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrCodeTranslationFailed, customErr.Code)
	assert.Equal(t, "mock", provider)

	families, err := reg.Gather()
	require.NoError(t, err)
	var failures float64
	for _, family := range families {
		if family.GetName() != "medadmin_translation_texts_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == constvars.AuthOutcomeFailure {
					failures += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(2), failures)
	svc.AssertExpectations(t)
}
