// File path: internal/llm/providers/ollama_client.go
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/isodocs/isonav/internal/common"
)

// OllamaProvider runs completions against a local Ollama instance for
// deployments without a hosted model.
type OllamaProvider struct {
	model *ollama.LLM
	name  string
}

func NewOllamaProvider(host, model string) (*OllamaProvider, error) {
	if strings.TrimSpace(model) == "" {
		model = "llama3.2:latest"
	}
	llm, err := ollama.New(ollama.WithServerURL(host), ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("ollama init: %w", err)
	}
	common.Logger().Info("llm: Ollama provider configured", "model", model)
	return &OllamaProvider{model: llm, name: model}, nil
}

func (o *OllamaProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	if o.model == nil {
		return "", fmt.Errorf("nil ollama client")
	}
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, o.model, full, llms.WithTemperature(0.2))
	if err != nil {
		common.Logger().Error("llm: ollama completion failed", "error", err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}
