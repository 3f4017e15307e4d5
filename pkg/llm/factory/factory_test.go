package factory

import (
	"testing"

	"mindfulme-be/pkg/llm/gemini"
	"mindfulme-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider("gemini", "gemini-1.5-flash", "", "key")
	require.NoError(t, err)
	assert.IsType(t, &gemini.GeminiProvider{}, p)

	p, err = NewLLMProvider("gemini", "gemini-1.5-flash", "", "")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewLLMProvider("ollama", "llama3", "", "")
	require.NoError(t, err)
	require.IsType(t, &ollama.OllamaProvider{}, p)
	assert.Equal(t, "http://localhost:11434", p.(*ollama.OllamaProvider).BaseURL)

	_, err = NewLLMProvider("openai", "gpt", "", "key")
	assert.Error(t, err)
}
