package llm

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Failure kinds surfaced by generators. Callers match with errors.Is and are
// expected to fall back to a canned answer rather than fail the request.
var (
	ErrUnauthenticated = errors.New("generation API credentials missing or rejected")
	ErrTimeout         = errors.New("generation API timed out")
	ErrBusy            = errors.New("generation API busy or model loading")
	ErrUnavailable     = errors.New("generation API unavailable")
	ErrMalformed       = errors.New("generation API returned malformed output")
)

const (
	generateTimeout = 25 * time.Second
	maxOutputTokens = 200
	temperature     = 0.7

	// Anything shorter after cleanup is treated as degenerate output.
	minResponseLength = 20
)

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// cleanResponse strips code fences and surrounding whitespace that some
// models wrap around plain-text answers.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func validateResponse(content string) (string, error) {
	content = cleanResponse(content)
	if len(content) < minResponseLength {
		return "", ErrMalformed
	}
	return content, nil
}
