package llmprovider

import (
	"context"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"

	"task-triage/pkg/gemini"
)

// AnthropicAdapter sends prompts through the Anthropic Messages API.
type AnthropicAdapter struct {
	client anthropic.Client
	cfg    Config
}

// NewAnthropicAdapter creates an adapter; cfg must already carry defaults.
func NewAnthropicAdapter(apiKey string, cfg Config) *AnthropicAdapter {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(apiKey),
		anthropicoption.WithMaxRetries(0),
		anthropicoption.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, anthropicoption.WithBaseURL(cfg.BaseURL))
	}
	return &AnthropicAdapter{client: anthropic.NewClient(opts...), cfg: cfg}
}

// SendPrompt implements Provider interface
func (a *AnthropicAdapter) SendPrompt(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.cfg.Model),
		MaxTokens: int64(a.cfg.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: KindAnthropic, Err: err}
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &ProviderError{Provider: KindAnthropic, Err: ErrEmptyResponse}
	}
	return sb.String(), nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string { return KindAnthropic }

// Model returns model name
func (a *AnthropicAdapter) Model() string { return a.cfg.Model }

// OpenAIAdapter sends prompts through the OpenAI Chat Completions API.
// A custom BaseURL points it at any compatible endpoint.
type OpenAIAdapter struct {
	client openai.Client
	cfg    Config
}

// NewOpenAIAdapter creates an adapter; cfg must already carry defaults.
func NewOpenAIAdapter(apiKey string, cfg Config) *OpenAIAdapter {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
		openaioption.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openaioption.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIAdapter{client: openai.NewClient(opts...), cfg: cfg}
}

// SendPrompt implements Provider interface
func (a *OpenAIAdapter) SendPrompt(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(int64(a.cfg.MaxTokens)),
		Temperature: openai.Float(a.cfg.Temperature),
	})
	if err != nil {
		return "", &ProviderError{Provider: KindOpenAI, Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: KindOpenAI, Err: ErrEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string { return KindOpenAI }

// Model returns model name
func (a *OpenAIAdapter) Model() string { return a.cfg.Model }

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.Client
	cfg    Config
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Client, cfg Config) *GeminiAdapter {
	return &GeminiAdapter{client: client, cfg: cfg}
}

// SendPrompt implements Provider interface
func (a *GeminiAdapter) SendPrompt(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		Prompt:      prompt,
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Provider: KindGemini, Err: err}
	}
	if resp.Text == "" {
		return "", &ProviderError{Provider: KindGemini, Err: ErrEmptyResponse}
	}
	return resp.Text, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return KindGemini }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }
