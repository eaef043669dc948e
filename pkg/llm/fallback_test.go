package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFallbackAnswer_MatchesTopic(t *testing.T) {
	tests := []struct {
		message string
		contain string
	}{
		{"Which mutual fund should I pick?", "Mutual funds"},
		{"How do I start a SIP?", "SIP"},
		{"Is it smart to buy this stock?", "stock"},
		{"Should I put money in crypto?", "volatile"},
		{"How big should my emergency fund be?", "emergency fund"},
	}

	for _, tt := range tests {
		got := FallbackAnswer(tt.message)
		assert.NotEqual(t, "", got)
		if !strings.Contains(strings.ToLower(got), strings.ToLower(tt.contain)) {
			t.Errorf("FallbackAnswer(%q) missing %q in %q", tt.message, tt.contain, got)
		}
	}
}

func TestFallbackAnswer_DefaultIsNonEmpty(t *testing.T) {
	got := FallbackAnswer("tell me something about taxes")
	assert.Equal(t, defaultAnswer, got)
	assert.NotEqual(t, "", got)
}
