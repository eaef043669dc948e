package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// Constructing the client pins the model identifier at compile time, so an
// SDK upgrade that renames the constant fails here first.
func TestNewAnthropicClient_Defaults(t *testing.T) {
	c := NewAnthropicClient("test-key")

	if c.client == nil {
		t.Fatal("expected non-nil SDK client")
	}
	if c.model == "" {
		t.Fatal("expected a default model identifier")
	}
}

func TestClassifyAnthropicError(t *testing.T) {
	got := classifyAnthropicError(fmt.Errorf("call: %w", context.DeadlineExceeded))
	if !errors.Is(got, ErrTimeout) {
		t.Errorf("deadline exceeded classified as %v, want ErrTimeout", got)
	}

	got = classifyAnthropicError(errors.New("connection refused"))
	if !errors.Is(got, ErrUnavailable) {
		t.Errorf("network error classified as %v, want ErrUnavailable", got)
	}
}
