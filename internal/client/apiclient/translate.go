package apiclient

import (
	"context"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/dto/responses"
	"medadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// TranslateBatch returns the translated texts, or the input unchanged when the
// service is unavailable.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, targetLanguage, sourceLanguage string) []string {
	original := append([]string(nil), texts...)
	if len(texts) == 0 {
		return original
	}

	response := Post[responses.TranslateBatch](ctx, c, "/translate/batch", &requests.TranslateBatch{
		Texts:          texts,
		TargetLanguage: targetLanguage,
		SourceLanguage: sourceLanguage,
	}, RequestConfig{SkipAuth: true})

	if response.Error != "" || response.Data == nil || len(response.Data.Translations) != len(texts) {
		c.Log.Warn("apiClient.TranslateBatch degraded to original texts",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int(constvars.LoggingStatusCodeKey, response.Status),
			zap.String("error", response.Error),
		)
		return original
	}
	return response.Data.Translations
}
