// File path: internal/llm/providers/provider.go
package providers

import (
	"context"
	"fmt"
	"strings"
)

// Provider completes a prompt with a generative model.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Name() string
}

// LocalProvider is the no-dependency fallback used when neither OpenAI nor
// Ollama is configured. It makes the absence of a model visible instead of
// silently returning nothing.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("empty prompt")
	}
	return "[local-stub] no generative model configured", nil
}

func (l *LocalProvider) Name() string {
	return "local"
}
