package requests

type TranslateBatch struct {
	Texts          []string `json:"texts" validate:"required,min=1"`
	TargetLanguage string   `json:"targetLanguage" validate:"required,max=16"`
	SourceLanguage string   `json:"sourceLanguage" validate:"max=16"`
}
