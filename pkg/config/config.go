package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used for provider callbacks"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:callscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Vapi VapiConfig `yaml:"vapi" json:"vapi" jsonschema:"description=Vapi voice AI provider"`

	Twilio TwilioConfig `yaml:"twilio" json:"twilio" jsonschema:"description=Twilio telephony provider"`

	Webhook struct {
		Secret string `yaml:"secret" json:"secret" jsonschema:"description=Optional bearer token required on the Vapi webhook"`
	} `yaml:"webhook" json:"webhook" jsonschema:"description=Provider webhook settings"`

	Assistant AssistantConfig `yaml:"assistant" json:"assistant" jsonschema:"description=Assistant defaults used when no overrides are saved"`

	Phone struct {
		DefaultCountryCode string `yaml:"default_country_code" json:"default_country_code" jsonschema:"default=+91,description=Country code prepended to local numbers"`
	} `yaml:"phone" json:"phone" jsonschema:"description=Phone number formatting"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=OpenAI-compatible endpoint checked by diagnostics"`
}

// VapiConfig holds Vapi API settings
type VapiConfig struct {
	BaseURL       string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://api.vapi.ai,description=Vapi API base URL"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=Vapi private API key (can use environment variable)"`
	PhoneNumberID string        `yaml:"phone_number_id" json:"phone_number_id" jsonschema:"description=Vapi phone number id used as caller"`
	AssistantID   string        `yaml:"assistant_id" json:"assistant_id" jsonschema:"description=Default Vapi assistant id"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Vapi request timeout"`
}

// TwilioConfig holds Twilio API settings
type TwilioConfig struct {
	AccountSID  string        `yaml:"account_sid" json:"account_sid" jsonschema:"description=Twilio account SID"`
	AuthToken   string        `yaml:"auth_token" json:"auth_token" jsonschema:"description=Twilio auth token (can use environment variable)"`
	PhoneNumber string        `yaml:"phone_number" json:"phone_number" jsonschema:"description=Twilio number calls are placed from"`
	CallerIDTTL time.Duration `yaml:"caller_id_ttl" json:"caller_id_ttl" jsonschema:"default=5m,description=How long verified caller ids are cached"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Twilio request timeout"`
}

// AssistantConfig holds assistant defaults
type AssistantConfig struct {
	Name                  string `yaml:"name" json:"name" jsonschema:"default=Interview Assistant,description=Assistant name"`
	Language              string `yaml:"language" json:"language" jsonschema:"default=en,description=Assistant language"`
	ModelProvider         string `yaml:"model_provider" json:"model_provider" jsonschema:"default=openai,description=Conversation model provider"`
	ModelName             string `yaml:"model_name" json:"model_name" jsonschema:"default=gpt-4o-mini,description=Conversation model name"`
	TranscriptionProvider string `yaml:"transcription_provider" json:"transcription_provider" jsonschema:"default=deepgram,description=Speech-to-text provider"`
	TranscriptionModel    string `yaml:"transcription_model" json:"transcription_model" jsonschema:"default=nova-2,description=Speech-to-text model"`
	TranscriptionLanguage string `yaml:"transcription_language" json:"transcription_language" jsonschema:"default=multi,description=Speech-to-text language"`
	HindiVoiceID          string `yaml:"hindi_voice_id" json:"hindi_voice_id" jsonschema:"default=hindi-male-1,description=Voice used when the assistant language is hi"`
}

// LLMConfig holds settings of the OpenAI-compatible endpoint
type LLMConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model    string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	c.Server.BaseURL = strings.TrimSuffix(c.Server.BaseURL, "/")

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:callscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// providers
	if c.Vapi.BaseURL == "" {
		c.Vapi.BaseURL = "https://api.vapi.ai"
	}
	if c.Vapi.Timeout == 0 {
		c.Vapi.Timeout = 30 * time.Second
	}
	if c.Twilio.CallerIDTTL == 0 {
		c.Twilio.CallerIDTTL = 5 * time.Minute
	}
	if c.Twilio.Timeout == 0 {
		c.Twilio.Timeout = 30 * time.Second
	}

	// assistant
	setString(&c.Assistant.Name, "Interview Assistant")
	setString(&c.Assistant.Language, "en")
	setString(&c.Assistant.ModelProvider, "openai")
	setString(&c.Assistant.ModelName, "gpt-4o-mini")
	setString(&c.Assistant.TranscriptionProvider, "deepgram")
	setString(&c.Assistant.TranscriptionModel, "nova-2")
	setString(&c.Assistant.TranscriptionLanguage, "multi")
	setString(&c.Assistant.HindiVoiceID, "hindi-male-1")

	setString(&c.Phone.DefaultCountryCode, "+91")

	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	u, err := url.Parse(cfg.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.base_url must be an absolute URL, got %q", cfg.Server.BaseURL)
	}

	// validate providers
	if _, err := url.Parse(cfg.Vapi.BaseURL); err != nil {
		return fmt.Errorf("vapi.base_url is invalid: %w", err)
	}
	if cfg.Vapi.Timeout < time.Second {
		return fmt.Errorf("vapi timeout must be at least 1 second")
	}
	if (cfg.Twilio.AccountSID == "") != (cfg.Twilio.AuthToken == "") {
		return fmt.Errorf("twilio.account_sid and twilio.auth_token must be set together")
	}

	if !strings.HasPrefix(cfg.Phone.DefaultCountryCode, "+") {
		return fmt.Errorf("phone.default_country_code must start with +")
	}

	// validate LLM config, optional
	if cfg.LLM.Endpoint != "" && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm.endpoint is set")
	}

	return nil
}

// VapiConfigured reports whether the Vapi API can be called
func (c *Config) VapiConfigured() bool {
	return c.Vapi.APIKey != ""
}

// TwilioConfigured reports whether the Twilio API can be called
func (c *Config) TwilioConfigured() bool {
	return c.Twilio.AccountSID != "" && c.Twilio.AuthToken != "" && c.Twilio.PhoneNumber != ""
}

// LLMConfigured reports whether the model endpoint is set
func (c *Config) LLMConfigured() bool {
	return c.LLM.Endpoint != "" && c.LLM.Model != ""
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
