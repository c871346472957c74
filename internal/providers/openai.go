package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIName = "openai"

	openAIDefaultModel  = "gpt-4o"
	openAIFallbackModel = "gpt-4o-mini"
)

// OpenAIConfig holds configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey        string
	Model         string // Preferred model (default: gpt-4o)
	FallbackModel string // Stable model tried once if the preferred fails
	Timeout       time.Duration
	BaseURL       string       // Optional (tests)
	HTTPClient    *http.Client // Optional (tests)
}

// OpenAIClient implements LLMClient using the official OpenAI SDK.
type OpenAIClient struct {
	apiKey        string
	model         string
	fallbackModel string
	client        openai.Client
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = openAIDefaultModel
	}
	if cfg.FallbackModel == "" {
		cfg.FallbackModel = openAIFallbackModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	} else {
		opts = append(opts, option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}

	return &OpenAIClient{
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		fallbackModel: cfg.FallbackModel,
		client:        openai.NewClient(opts...),
	}
}

// Name returns the client identifier.
func (c *OpenAIClient) Name() string { return OpenAIName }

// Configured reports whether a real credential is present.
func (c *OpenAIClient) Configured() bool { return CredentialConfigured(c.apiKey) }

// Chat sends the prompt as a single user message. Same model-selection
// policy as the Gemini client: preferred model, then one try with the
// fallback model, then give up.
func (c *OpenAIClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	models := []string{c.model, c.fallbackModel}
	if req.Model != "" {
		models = []string{req.Model, c.fallbackModel}
	}

	var (
		content   string
		modelUsed string
		attempt   int
	)
	err := retry.Do(
		func() error {
			model := models[attempt]
			attempt++

			resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: openai.ChatModel(model),
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.UserMessage(req.Prompt),
				},
			})
			if err != nil {
				return fmt.Errorf("openai %s: %w", model, err)
			}
			if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
				return fmt.Errorf("openai %s: empty response", model)
			}
			content = resp.Choices[0].Message.Content
			modelUsed = model
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(len(models))),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		Content:   content,
		Provider:  OpenAIName,
		ModelUsed: modelUsed,
		RequestID: requestID,
		Attempts:  attempt,
	}, nil
}
