// File path: internal/llm/providers/provider_test.go
package providers

import (
	"context"
	"strings"
	"testing"
)

func TestLocalProvider(t *testing.T) {
	p := NewLocalProvider()
	if p.Name() != "local" {
		t.Fatalf("unexpected name %q", p.Name())
	}
	reply, err := p.Complete(context.Background(), "system", "summarize the section")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if !strings.Contains(reply, "no generative model configured") {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestLocalProviderEmptyPrompt(t *testing.T) {
	p := NewLocalProvider()
	if _, err := p.Complete(context.Background(), "system", "   "); err == nil {
		t.Fatalf("expected error for empty prompt")
	}
}
