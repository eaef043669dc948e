package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client        *openai.Client
	model         openai.ChatModel
	fallbackModel openai.ChatModel
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:        &client,
		model:         openai.ChatModelGPT4oMini,
		fallbackModel: openai.ChatModelGPT3_5Turbo,
	}
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text, err := c.complete(ctx, c.model, prompt)
	if errors.Is(err, ErrBusy) || errors.Is(err, ErrUnavailable) {
		text, err = c.complete(ctx, c.fallbackModel, prompt)
	}
	if err != nil {
		return "", err
	}

	return validateResponse(text)
}

func (c *OpenAIClient) complete(ctx context.Context, model openai.ChatModel, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       model,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxOutputTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai: %w", ErrMalformed)
	}

	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("openai: %w", ErrTimeout)
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden:
			return fmt.Errorf("openai: %w", ErrUnauthenticated)
		case apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode == http.StatusServiceUnavailable:
			return fmt.Errorf("openai: %w", ErrBusy)
		case apierr.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("openai: %w", ErrUnavailable)
		}
	}

	return fmt.Errorf("openai: %v: %w", err, ErrUnavailable)
}
