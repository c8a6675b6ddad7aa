package responses

type TranslateBatch struct {
	Translations []string `json:"translations"`
	Provider     string   `json:"provider"`
}
