package factory

import (
	"fmt"

	"mindfulme-be/pkg/llm"
	"mindfulme-be/pkg/llm/gemini"
	"mindfulme-be/pkg/llm/ollama"
)

// NewLLMProvider returns (nil, nil) when the provider is selected but has no
// credentials; callers then answer from the local fallback.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, nil
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
