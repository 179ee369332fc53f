package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables.
// Environment variables use the TUTOR_ prefix with underscores separating
// groups (TUTOR_SERVER_PORT, TUTOR_OUTPUT_DIR); the Gemini key is also read
// from the conventional GEMINI_API_KEY. Every key has a default so the
// server starts with no configuration at all.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-1.5-flash")
	v.SetDefault("llm.image_model_name", "gemini-2.0-flash-exp-image-generation")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_seconds", 2)
	v.SetDefault("tts.endpoint", "https://translate.google.com/translate_tts")
	v.SetDefault("tts.language", "en")
	v.SetDefault("tts.slow", false)
	v.SetDefault("output.dir", "static/generated")

	// Environment variables with TUTOR_ prefix
	v.SetEnvPrefix("TUTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases and the conventional Gemini key name
	bindings := map[string][]string{
		"server.host":        {"TUTOR_SERVER_HOST", "TUTOR_HOST"},
		"server.port":        {"TUTOR_SERVER_PORT", "TUTOR_PORT"},
		"server.log_level":   {"TUTOR_SERVER_LOG_LEVEL", "TUTOR_LOG_LEVEL"},
		"llm.gemini_api_key": {"TUTOR_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"output.dir":         {"TUTOR_OUTPUT_DIR"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
