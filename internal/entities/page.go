package entities

import "time"

// PageConfig is one connected messaging page (tenant) with its credentials
// and model overrides. Empty override fields fall back to GlobalConfig.
type PageConfig struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	VerifyToken     string    `json:"verifyToken"`
	PageAccessToken string    `json:"pageAccessToken"`
	OpenRouterKey   string    `json:"openrouterKey"`
	AIModel         string    `json:"aiModel"`
	KnowledgeBase   []string  `json:"knowledgeBase"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GlobalConfig holds the fallback model and API key shared by all pages.
type GlobalConfig struct {
	DefaultAIModel string `json:"defaultAiModel"`
	OpenRouterKey  string `json:"openrouterKey"`
}

// Model returns the page's model override, or the global default.
func (p PageConfig) Model(global GlobalConfig) string {
	if p.AIModel != "" {
		return p.AIModel
	}
	return global.DefaultAIModel
}

// APIKey returns the page's key override, or the global key.
func (p PageConfig) APIKey(global GlobalConfig) string {
	if p.OpenRouterKey != "" {
		return p.OpenRouterKey
	}
	return global.OpenRouterKey
}
