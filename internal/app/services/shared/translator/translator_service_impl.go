package translator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	ProviderAzure       = "azure"
	ProviderPassthrough = "passthrough"
)

type translateRequestItem struct {
	Text string `json:"Text"`
}

type translateResponseItem struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

type providerError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type azureTranslatorService struct {
	Endpoint   string
	Key        string
	Region     string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewTranslatorService returns the Azure backed translator when a key is
// configured and a pass-through translator otherwise.
func NewTranslatorService(cfg config.AppTranslator, logger *zap.Logger) contracts.TranslatorService {
	if strings.TrimSpace(cfg.Key) == "" {
		logger.Warn("translatorService TRANSLATOR_KEY not set, using pass-through translator")
		return NewPassthroughTranslatorService()
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &azureTranslatorService{
		Endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		Key:        cfg.Key,
		Region:     cfg.Region,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.TimeoutInSeconds) * time.Second},
		Limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		Log:        logger,
	}
}

func (s *azureTranslatorService) Provider() string {
	return ProviderAzure
}

func (s *azureTranslatorService) Translate(ctx context.Context, texts []string, targetLanguage, sourceLanguage string) ([]string, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("translatorService.Translate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(texts)),
	)

	if len(texts) == 0 {
		return []string{}, nil
	}

	if err := s.Limiter.Wait(ctx); err != nil {
		s.Log.Error("translatorService.Translate rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTranslationFailed(err)
	}

	query := url.Values{}
	query.Set("api-version", constvars.TranslatorAPIVersion)
	query.Set("to", targetLanguage)
	if sourceLanguage != "" {
		query.Set("from", sourceLanguage)
	}
	endpoint := fmt.Sprintf("%s/translate?%s", s.Endpoint, query.Encode())

	items := make([]translateRequestItem, len(texts))
	for i, text := range texts {
		items[i] = translateRequestItem{Text: text}
	}
	body, err := json.Marshal(items)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		s.Log.Error("translatorService.Translate error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTranslationFailed(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	req.Header.Set(constvars.HeaderTranslatorKey, s.Key)
	if s.Region != "" {
		req.Header.Set(constvars.HeaderTranslatorRegion, s.Region)
	}
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("translatorService.Translate error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTranslationFailed(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrTranslationFailed(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		var outcome providerError
		_ = json.Unmarshal(bodyBytes, &outcome)
		providerErr := fmt.Errorf(constvars.ErrDevTranslatorFailed, resp.StatusCode)
		if outcome.Error.Message != "" {
			providerErr = fmt.Errorf("%w: %s", providerErr, outcome.Error.Message)
		}
		s.Log.Error("translatorService.Translate provider error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(providerErr),
		)
		return nil, exceptions.ErrTranslationFailed(providerErr)
	}

	var result []translateResponseItem
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		s.Log.Error("translatorService.Translate error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTranslationFailed(err)
	}
	if len(result) != len(texts) {
		return nil, exceptions.ErrTranslationFailed(fmt.Errorf(constvars.ErrDevTranslatorCountMissing, len(result), len(texts)))
	}

	translations := make([]string, len(texts))
	for i, item := range result {
		if len(item.Translations) == 0 {
			translations[i] = texts[i]
			continue
		}
		translations[i] = item.Translations[0].Text
	}

	s.Log.Info("translatorService.Translate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(translations)),
	)
	return translations, nil
}

type passthroughTranslatorService struct{}

func NewPassthroughTranslatorService() contracts.TranslatorService {
	return passthroughTranslatorService{}
}

func (passthroughTranslatorService) Provider() string {
	return ProviderPassthrough
}

func (passthroughTranslatorService) Translate(ctx context.Context, texts []string, targetLanguage, sourceLanguage string) ([]string, error) {
	translations := make([]string, len(texts))
	copy(translations, texts)
	return translations, nil
}
