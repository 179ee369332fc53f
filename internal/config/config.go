package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	TTS    TTSConfig    `mapstructure:"tts"    validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all generative-model integration settings.
// GeminiAPIKey is deliberately not required: the process starts without it
// and generation endpoints report the missing configuration instead.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"          validate:"required"`
	ImageModelName    string `mapstructure:"image_model_name"    validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=1"`
}

// TTSConfig contains the speech-synthesis settings.
type TTSConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Language string `mapstructure:"language" validate:"required"`
	Slow     bool   `mapstructure:"slow"`
}

// OutputConfig locates the root directory for generated artifacts.
type OutputConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}
