package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Telegram update transports.
const (
	TelegramModeWebhook = "webhook"
	TelegramModePolling = "polling"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Relay
	Telegram     TelegramConfig
	OpenAI       OpenAIConfig
	Conversation ConversationConfig
	Sandbox      SandboxConfig

	// Demo endpoints
	Demo DemoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	WebhookSecret   string
	NgrokAPIURL     string // used to discover the public URL when WebhookURL is empty
	Mode            string // webhook | polling
	RateLimitPerMin int
	PollTimeout     time.Duration
}

type OpenAIConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	AssistantName string
	Instructions  string
	Timeout       time.Duration
}

type ConversationConfig struct {
	PollInterval time.Duration
	MaxWait      time.Duration
}

type SandboxConfig struct {
	Enabled bool
	APIKey  string
}

type DemoConfig struct {
	Delay   time.Duration
	Workers int
}

// Load loads configuration using Viper.
// An empty path searches config.yaml in ./config, ., /etc/app/; a missing file is not an error then.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper builds a Config from an already populated viper instance, applying
// defaults and environment overrides.
func FromViper(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = expandEnvVar(v, v.GetString("telegram.webhook_secret"))
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")
	cfg.Telegram.Mode = strings.ToLower(v.GetString("telegram.mode"))
	cfg.Telegram.RateLimitPerMin = v.GetInt("telegram.rate_limit_per_min")
	cfg.Telegram.PollTimeout = v.GetDuration("telegram.poll_timeout")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// OpenAI
	cfg.OpenAI.APIKey = expandEnvVar(v, v.GetString("openai.api_key"))
	cfg.OpenAI.BaseURL = v.GetString("openai.base_url")
	cfg.OpenAI.Model = v.GetString("openai.model")
	cfg.OpenAI.AssistantName = v.GetString("openai.assistant_name")
	cfg.OpenAI.Instructions = v.GetString("openai.instructions")
	cfg.OpenAI.Timeout = v.GetDuration("openai.timeout")
	if apiKey := v.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	if model := v.GetString("openai_model"); model != "" {
		cfg.OpenAI.Model = model
	}

	// Conversation
	cfg.Conversation.PollInterval = v.GetDuration("conversation.poll_interval")
	cfg.Conversation.MaxWait = v.GetDuration("conversation.max_wait")

	// Sandbox
	cfg.Sandbox.Enabled = v.GetBool("sandbox.enabled")
	cfg.Sandbox.APIKey = expandEnvVar(v, v.GetString("sandbox.api_key"))

	// Demo
	cfg.Demo.Delay = v.GetDuration("demo.delay")
	cfg.Demo.Workers = v.GetInt("demo.workers")

	return cfg
}

// Validate checks the credentials and enums the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Telegram.BotToken == "" {
		errs = append(errs, errors.New("telegram.bot_token (TELEGRAM_BOT_TOKEN) is required"))
	}
	if c.OpenAI.APIKey == "" {
		errs = append(errs, errors.New("openai.api_key (OPENAI_API_KEY) is required"))
	}
	switch c.Telegram.Mode {
	case TelegramModeWebhook:
		if c.Telegram.WebhookURL == "" && c.Telegram.NgrokAPIURL == "" {
			errs = append(errs, errors.New("telegram.webhook_url or telegram.ngrok_api_url is required in webhook mode"))
		}
	case TelegramModePolling:
	default:
		errs = append(errs, fmt.Errorf("telegram.mode must be %q or %q, got %q",
			TelegramModeWebhook, TelegramModePolling, c.Telegram.Mode))
	}
	if c.Sandbox.Enabled && c.Sandbox.APIKey == "" {
		errs = append(errs, errors.New("sandbox.api_key is required when sandbox.enabled is true"))
	}
	if c.Conversation.PollInterval <= 0 {
		errs = append(errs, errors.New("conversation.poll_interval must be positive"))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("telegram.mode", TelegramModePolling)
	v.SetDefault("telegram.rate_limit_per_min", 20)
	v.SetDefault("telegram.poll_timeout", "30s")

	v.SetDefault("openai.model", "gpt-4o")
	v.SetDefault("openai.assistant_name", "PsychoAI")
	v.SetDefault("openai.instructions", DefaultInstructions)
	v.SetDefault("openai.timeout", "30s")

	v.SetDefault("conversation.poll_interval", "500ms")
	v.SetDefault("conversation.max_wait", "2m")

	v.SetDefault("sandbox.enabled", false)

	v.SetDefault("demo.delay", "5s")
	v.SetDefault("demo.workers", 0)
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
