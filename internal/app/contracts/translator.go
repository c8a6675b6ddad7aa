package contracts

import "context"

type TranslatorService interface {
	// Translate returns one translation per input text, in input order.
	Translate(ctx context.Context, texts []string, targetLanguage, sourceLanguage string) ([]string, error)
	Provider() string
}

type TranslationUsecase interface {
	TranslateBatch(ctx context.Context, texts []string, targetLanguage, sourceLanguage string) (translations []string, provider string, err error)
}
