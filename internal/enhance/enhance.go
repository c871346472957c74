// Package enhance implements the enhancement orchestrator: the LLM path is
// primary, the deterministic local corrector is secondary, and an identity
// transform of the input is the terminal fallback. A well-formed non-empty
// request therefore never hard-fails.
package enhance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/corrector"
	promptenhance "github.com/keertigurusiddanavar76-ops/skywrite/internal/prompts/enhance"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/providers"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/types"
)

// state names one step of the per-request state machine. There is no shared
// state across calls.
type state int

const (
	// stateStart decides between the LLM path and the local path.
	stateStart state = iota
	// stateLLM builds the prompt and invokes the configured LLM client.
	stateLLM
	// stateParsed normalizes a successful LLM reply into a result.
	stateParsed
	// stateLocal runs the deterministic rule-based corrector.
	stateLocal
	// stateDone terminates with a usable result.
	stateDone
)

// Config holds dependencies for the Enhancer.
type Config struct {
	// Registry holds the configured LLM clients.
	Registry *providers.Registry
	// Provider is the name of the client to use (e.g. "gemini").
	Provider string
	// Corrector is the local fallback; a default one is built if nil.
	Corrector *corrector.Corrector
	// Logger is the structured logger to use.
	Logger *slog.Logger
}

// Enhancer coordinates the correction pipeline for one request at a time.
// It is safe for concurrent use: the rule table and tone mapping are
// immutable and each call carries its own state.
type Enhancer struct {
	registry  *providers.Registry
	provider  string
	corrector *corrector.Corrector
	logger    *slog.Logger
}

// New creates an Enhancer.
func New(cfg Config) *Enhancer {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Corrector == nil {
		cfg.Corrector = corrector.NewDefault(cfg.Logger)
	}
	return &Enhancer{
		registry:  cfg.Registry,
		provider:  cfg.Provider,
		corrector: cfg.Corrector,
		logger:    cfg.Logger,
	}
}

// LLMConfigured reports whether the configured provider exists and holds a
// real, non-placeholder credential.
func (e *Enhancer) LLMConfigured() bool {
	return e.client() != nil
}

// client returns the usable LLM client, or nil when the LLM path is
// disabled.
func (e *Enhancer) client() providers.LLMClient {
	if e.registry == nil || e.provider == "" {
		return nil
	}
	client, err := e.registry.GetLLM(e.provider)
	if err != nil || !client.Configured() {
		return nil
	}
	return client
}

// Enhance corrects the given text. Transitions:
//
//	Start  -> LLM    when a configured client exists, else Local
//	LLM    -> Parsed on a successful call, Local on any failure
//	Parsed -> Done   on a valid reply, Local on parse/validation failure
//	Local  -> Done   always
//
// Any panic along the way yields the Errored terminal result: the original
// text unmodified, no improvements, and a diagnostic message.
func (e *Enhancer) Enhance(ctx context.Context, req types.EnhancementRequest) (result types.EnhancementResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("enhancement pipeline panic", "error", r)
			result = types.EnhancementResult{
				CorrectedText: req.Text,
				Improvements:  []types.Improvement{},
				Error:         fmt.Sprintf("%v", r),
			}
		}
	}()

	var (
		chatResult *providers.ChatResult
		current    = stateStart
	)
	for {
		switch current {
		case stateStart:
			if e.client() != nil {
				current = stateLLM
			} else {
				current = stateLocal
			}

		case stateLLM:
			client := e.client()
			if client == nil {
				current = stateLocal
				continue
			}
			prompt := promptenhance.BuildPrompt(req.Text, req.Tone, req.ShowExplanations)
			res, err := client.Chat(ctx, &providers.ChatRequest{Prompt: prompt})
			if err != nil {
				e.logger.Warn("LLM call failed, falling back to local corrector",
					"provider", client.Name(), "error", err)
				current = stateLocal
				continue
			}
			chatResult = res
			current = stateParsed

		case stateParsed:
			var parsed promptenhance.Result
			err := providers.ParseStructuredReply(chatResult.Content, promptenhance.ResultSchemaJSON, &parsed)
			if err != nil {
				e.logger.Warn("LLM reply unusable, falling back to local corrector",
					"provider", chatResult.Provider, "model", chatResult.ModelUsed, "error", err)
				current = stateLocal
				continue
			}
			result = normalizeParsed(parsed, req)
			e.logger.Info("enhancement served by LLM",
				"provider", chatResult.Provider, "model", chatResult.ModelUsed,
				"request_id", chatResult.RequestID, "attempts", chatResult.Attempts,
				"improvements", len(result.Improvements))
			current = stateDone

		case stateLocal:
			result = e.corrector.Correct(req.Text, req.Tone, req.ShowExplanations)
			current = stateDone

		case stateDone:
			return result
		}
	}
}

// normalizeParsed fills in the defaults the reply contract allows the model
// to omit: a missing correctedText falls back to the original text and the
// improvement list is forced empty when explanations were not requested.
func normalizeParsed(parsed promptenhance.Result, req types.EnhancementRequest) types.EnhancementResult {
	corrected := parsed.CorrectedText
	if corrected == "" {
		corrected = req.Text
	}
	improvements := parsed.Improvements
	if improvements == nil || !req.ShowExplanations {
		improvements = []types.Improvement{}
	}
	if len(improvements) > types.MaxImprovements {
		improvements = improvements[:types.MaxImprovements]
	}
	return types.EnhancementResult{
		CorrectedText: corrected,
		Improvements:  improvements,
	}
}
