package providers

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Registry holds references to LLM clients. It supports config-driven
// instantiation, hot-reload, and provides thread-safe access.
type Registry struct {
	mu         sync.RWMutex
	llmClients map[string]LLMClient
	logger     *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		llmClients: make(map[string]LLMClient),
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// RegisterLLM registers an LLM client by name.
func (r *Registry) RegisterLLM(name string, client LLMClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.llmClients[name] = client
	if r.logger != nil {
		r.logger.Info("registered LLM client", "name", name)
	}
}

// GetLLM returns an LLM client by name.
func (r *Registry) GetLLM(name string) (LLMClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.llmClients[name]
	if !ok {
		return nil, fmt.Errorf("LLM client not found: %s", name)
	}
	return client, nil
}

// HasLLM checks if an LLM client is registered.
func (r *Registry) HasLLM(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.llmClients[name]
	return ok
}

// ListLLM returns all registered LLM client names.
func (r *Registry) ListLLM() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.llmClients))
	for name := range r.llmClients {
		names = append(names, name)
	}
	return names
}

// RegistryConfig defines the providers to instantiate from config.
type RegistryConfig struct {
	// LLMProviders maps provider names to their config
	LLMProviders map[string]LLMProviderConfig
}

// LLMProviderConfig matches config.LLMProviderCfg with resolved API key.
type LLMProviderConfig struct {
	Type          string // "gemini", "openai"
	Model         string // Preferred model identifier
	FallbackModel string // Stable model tried once on failure
	APIKey        string // Resolved API key
	TimeoutSec    int    // Per-call timeout in seconds
	Enabled       bool
}

// NewRegistryFromConfig creates a registry with providers based on
// configuration. Only enabled providers are registered; clients with
// placeholder credentials are still created so the orchestrator can report
// them as unconfigured.
func NewRegistryFromConfig(cfg RegistryConfig) *Registry {
	r := NewRegistry()
	r.Reload(cfg)
	return r
}

// Reload updates the registry based on new configuration. Providers that are
// no longer configured are unregistered; changed providers are rebuilt.
func (r *Registry) Reload(cfg RegistryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := make(map[string]bool)
	for name, provCfg := range cfg.LLMProviders {
		if !provCfg.Enabled {
			continue
		}
		want[name] = true

		client := createLLMClient(provCfg)
		if client == nil {
			if r.logger != nil {
				r.logger.Warn("unknown LLM provider type", "name", name, "type", provCfg.Type)
			}
			delete(want, name)
			continue
		}
		_, existed := r.llmClients[name]
		r.llmClients[name] = client
		if r.logger != nil {
			if existed {
				r.logger.Info("updated LLM client", "name", name, "type", provCfg.Type)
			} else {
				r.logger.Info("registered LLM client", "name", name, "type", provCfg.Type)
			}
		}
	}

	for name := range r.llmClients {
		if !want[name] {
			delete(r.llmClients, name)
			if r.logger != nil {
				r.logger.Info("unregistered LLM client", "name", name)
			}
		}
	}
}

// createLLMClient builds a client from its config. Returns nil for unknown
// types.
func createLLMClient(cfg LLMProviderConfig) LLMClient {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	switch cfg.Type {
	case GeminiName:
		return NewGeminiClient(GeminiConfig{
			APIKey:        cfg.APIKey,
			Model:         cfg.Model,
			FallbackModel: cfg.FallbackModel,
			Timeout:       timeout,
		})
	case OpenAIName:
		return NewOpenAIClient(OpenAIConfig{
			APIKey:        cfg.APIKey,
			Model:         cfg.Model,
			FallbackModel: cfg.FallbackModel,
			Timeout:       timeout,
		})
	case MockClientName:
		return NewMockClient()
	default:
		return nil
	}
}
