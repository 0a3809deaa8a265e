package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

const (
	DefaultOpenAIModel = "gpt-4"
	openAITimeout      = 60 * time.Second
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // empty means api.openai.com
}

type OpenAIClient struct {
	client openaigo.Client
	model  string
}

// NewOpenAIClient creates an LLMClient backed by the chat completions API.
// Retries are disabled: a failed call surfaces as a turn error.
func NewOpenAIClient(cfg OpenAIConfig, httpClient *http.Client) (*OpenAIClient, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultOpenAIModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: openAITimeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}

	return &OpenAIClient{
		client: openaigo.NewClient(opts...),
		model:  model,
	}, nil
}

// GenerateReply implements domain.LLMClient.
func (c *OpenAIClient) GenerateReply(ctx context.Context, prompt domain.Prompt) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(prompt.System),
			openaigo.UserMessage(prompt.User),
		},
	})
	if err != nil {
		var apiErr *openaigo.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("openai chat completion: status %d: %w", apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
