package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

// MockLLM echoes the entry back. Used for local runs without an API key.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) GenerateReply(_ context.Context, prompt domain.Prompt) (string, error) {
	entry := prompt.User
	if first, _, ok := strings.Cut(entry, "\n"); ok {
		entry = first
	}
	entry = strings.TrimPrefix(entry, "Journal entry: ")
	return fmt.Sprintf("I hear you. You wrote %q. What feels most important about that right now?", entry), nil
}
