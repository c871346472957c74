package config

// Config is the full service configuration.
type Config struct {
	Server       ServerCfg                 `mapstructure:"server"`
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers"`
	Defaults     DefaultsCfg               `mapstructure:"defaults"`
}

// ServerCfg holds HTTP server settings.
type ServerCfg struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LLMProviderCfg configures one LLM provider.
type LLMProviderCfg struct {
	Type          string `mapstructure:"type"`
	Model         string `mapstructure:"model"`
	FallbackModel string `mapstructure:"fallback_model"`
	APIKey        string `mapstructure:"api_key"`
	TimeoutSec    int    `mapstructure:"timeout_seconds"`
	Enabled       bool   `mapstructure:"enabled"`
}

// DefaultsCfg selects which configured provider serves requests.
type DefaultsCfg struct {
	Provider string `mapstructure:"provider"`
}

// DefaultConfig returns the built-in configuration. The Gemini credential is
// read from GEMINI_API_KEY; while it is unset (or still the placeholder
// value) the service runs on the local rule-based corrector only.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		LLMProviders: map[string]LLMProviderCfg{
			"gemini": {
				Type:          "gemini",
				Model:         "gemini-2.0-flash",
				FallbackModel: "gemini-1.5-flash",
				APIKey:        "${GEMINI_API_KEY}",
				TimeoutSec:    60,
				Enabled:       true,
			},
			"openai": {
				Type:          "openai",
				Model:         "gpt-4o",
				FallbackModel: "gpt-4o-mini",
				APIKey:        "${OPENAI_API_KEY}",
				TimeoutSec:    60,
				Enabled:       false,
			},
		},
		Defaults: DefaultsCfg{
			Provider: "gemini",
		},
	}
}
