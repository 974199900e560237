// File path: internal/llm/llm_test.go
package llm

import "testing"

func TestNewProviderDefaultsToLocal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OLLAMA_HOST", "")
	provider := NewProvider()
	if provider == nil {
		t.Fatalf("expected a provider")
	}
	if provider.Name() != "local" {
		t.Fatalf("expected local fallback, got %q", provider.Name())
	}
}

func TestNewProviderSelectsOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	provider := NewProvider()
	if provider.Name() != "openai" {
		t.Fatalf("expected openai, got %q", provider.Name())
	}
}
