// File path: internal/llm/llm.go

// Package llm provides the optional generative fallback used by the
// presentation layer for loosely-structured queries. The deterministic core
// never depends on it; providers are slow, retryable, independently-failing
// collaborators and every caller must tolerate their absence.
package llm

import (
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/isodocs/isonav/internal/common"
	"github.com/isodocs/isonav/internal/llm/providers"
)

// Provider is the completion interface the presentation layer consumes.
type Provider = providers.Provider

// NewProvider selects a provider from the environment: OpenAI when
// OPENAI_API_KEY is set, otherwise a local Ollama instance when OLLAMA_HOST
// is set, otherwise a stub that echoes the prompt's tail.
func NewProvider() Provider {
	logger := common.Logger()

	if apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); apiKey != "" {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if timeoutStr := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); timeoutStr != "" {
			timeout, err := time.ParseDuration(timeoutStr)
			if err != nil {
				logger.Warn("llm: invalid OPENAI_HTTP_TIMEOUT, using default", "value", timeoutStr, "error", err)
			} else {
				opts = append(opts, option.WithRequestTimeout(timeout))
			}
		}
		if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
			logger.Info("llm: using custom OpenAI endpoint", "endpoint", endpoint)
			opts = append(opts, option.WithBaseURL(endpoint))
		}
		client := openai.NewClient(opts...)
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(&client)
	}

	if host := strings.TrimSpace(os.Getenv("OLLAMA_HOST")); host != "" {
		provider, err := providers.NewOllamaProvider(host, os.Getenv("OLLAMA_MODEL"))
		if err != nil {
			logger.Warn("llm: ollama provider unavailable", "host", host, "error", err)
		} else {
			logger.Info("llm: Ollama provider selected", "host", host)
			return provider
		}
	}

	logger.Warn("llm: no provider configured; falling back to local stub")
	return providers.NewLocalProvider()
}
