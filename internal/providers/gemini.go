package providers

import (
	"context"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const (
	GeminiName = "gemini"

	// geminiDefaultModel is tried first; geminiFallbackModel is the
	// known-stable identifier used when the preferred one is rejected.
	geminiDefaultModel  = "gemini-2.0-flash"
	geminiFallbackModel = "gemini-1.5-flash"
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey        string
	Model         string        // Preferred model (default: gemini-2.0-flash)
	FallbackModel string        // Stable model tried once if the preferred fails
	Timeout       time.Duration // Per-call ceiling (default: 60s)
}

// GeminiClient implements LLMClient using the Google generative AI SDK.
type GeminiClient struct {
	apiKey        string
	model         string
	fallbackModel string
	timeout       time.Duration
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = geminiDefaultModel
	}
	if cfg.FallbackModel == "" {
		cfg.FallbackModel = geminiFallbackModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &GeminiClient{
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		fallbackModel: cfg.FallbackModel,
		timeout:       cfg.Timeout,
	}
}

// Name returns the client identifier.
func (c *GeminiClient) Name() string { return GeminiName }

// Configured reports whether a real credential is present.
func (c *GeminiClient) Configured() bool { return CredentialConfigured(c.apiKey) }

// Chat sends the prompt to Gemini. The preferred model is tried first; if
// that call fails the stable fallback model is tried once. There is no
// further retrying: repeated failures degrade to the local corrector
// upstream instead of stalling here.
func (c *GeminiClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	models := []string{c.model, c.fallbackModel}
	if req.Model != "" {
		models = []string{req.Model, c.fallbackModel}
	}

	var (
		content   string
		modelUsed string
		attempt   int
	)
	err = retry.Do(
		func() error {
			model := models[attempt]
			attempt++

			m := cl.GenerativeModel(model)
			m.GenerationConfig = genai.GenerationConfig{
				ResponseMIMEType: "application/json",
			}

			resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
			if err != nil {
				return fmt.Errorf("gemini %s: %w", model, err)
			}
			text := firstText(resp)
			if text == "" {
				return fmt.Errorf("gemini %s: empty response", model)
			}
			content = text
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
		Provider:  GeminiName,
		ModelUsed: modelUsed,
		RequestID: requestID,
		Attempts:  attempt,
	}, nil
}

// firstText returns the text of the first candidate part, if any.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok && text != "" {
				return string(text)
			}
		}
	}
	return ""
}
