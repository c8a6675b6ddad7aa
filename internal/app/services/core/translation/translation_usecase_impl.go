package translation

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/services/shared/metrics"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type translationUsecase struct {
	TranslatorService contracts.TranslatorService
	Metrics           *metrics.HTTPMetrics
	Log               *zap.Logger
}

func NewTranslationUsecase(translatorService contracts.TranslatorService, httpMetrics *metrics.HTTPMetrics, logger *zap.Logger) contracts.TranslationUsecase {
	return &translationUsecase{
		TranslatorService: translatorService,
		Metrics:           httpMetrics,
		Log:               logger,
	}
}

func (uc *translationUsecase) TranslateBatch(ctx context.Context, texts []string, targetLanguage, sourceLanguage string) ([]string, string, error) {
	requestID := utils.GetRequestID(ctx)
	provider := uc.TranslatorService.Provider()
	uc.Log.Info("translationUsecase.TranslateBatch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, provider),
		zap.Int(constvars.LoggingCountKey, len(texts)),
	)

	if len(texts) > constvars.TranslatorMaxBatch {
		return nil, provider, exceptions.ErrTooManyTexts(nil, constvars.TranslatorMaxBatch)
	}

	translations, err := uc.TranslatorService.Translate(ctx, texts, targetLanguage, sourceLanguage)
	if err != nil {
		uc.Metrics.ObserveTranslation(provider, constvars.AuthOutcomeFailure, len(texts))
		uc.Log.Error("translationUsecase.TranslateBatch error translating texts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, provider),
			zap.Error(err),
		)
		return nil, provider, exceptions.ErrTranslationFailed(err)
	}

	uc.Metrics.ObserveTranslation(provider, constvars.AuthOutcomeSuccess, len(translations))
	uc.Log.Info("translationUsecase.TranslateBatch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(translations)),
	)
	return translations, provider, nil
}
