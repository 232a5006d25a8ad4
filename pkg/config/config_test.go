package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_VAPI_KEY", "vapi-secret")
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://calls.example.com/

vapi:
  api_key: ${TEST_VAPI_KEY}
  phone_number_id: pn-1
  assistant_id: as-1
  timeout: 10s

twilio:
  account_sid: AC123
  auth_token: token
  phone_number: "+15005550006"
  caller_id_ttl: 1m

webhook:
  secret: hook-secret

assistant:
  name: Asha
  language: hi

phone:
  default_country_code: "+1"

llm:
  endpoint: https://api.openai.com/v1
  model: gpt-4o-mini
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://calls.example.com", cfg.Server.BaseURL, "trailing slash trimmed")

		assert.Equal(t, "vapi-secret", cfg.Vapi.APIKey)
		assert.Equal(t, "pn-1", cfg.Vapi.PhoneNumberID)
		assert.Equal(t, "as-1", cfg.Vapi.AssistantID)
		assert.Equal(t, 10*time.Second, cfg.Vapi.Timeout)
		assert.Equal(t, "https://api.vapi.ai", cfg.Vapi.BaseURL)

		assert.Equal(t, "AC123", cfg.Twilio.AccountSID)
		assert.Equal(t, "+15005550006", cfg.Twilio.PhoneNumber)
		assert.Equal(t, time.Minute, cfg.Twilio.CallerIDTTL)

		assert.Equal(t, "hook-secret", cfg.Webhook.Secret)
		assert.Equal(t, "Asha", cfg.Assistant.Name)
		assert.Equal(t, "hi", cfg.Assistant.Language)
		assert.Equal(t, "gpt-4o-mini", cfg.Assistant.ModelName, "unset assistant fields get defaults")
		assert.Equal(t, "+1", cfg.Phone.DefaultCountryCode)

		assert.True(t, cfg.VapiConfigured())
		assert.True(t, cfg.TwilioConfigured())
		assert.True(t, cfg.LLMConfigured())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8080\"\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)

		// check database defaults
		assert.Contains(t, cfg.Database.DSN, "callscope.db")
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)

		// check assistant defaults
		assert.Equal(t, "Interview Assistant", cfg.Assistant.Name)
		assert.Equal(t, "en", cfg.Assistant.Language)
		assert.Equal(t, "openai", cfg.Assistant.ModelProvider)
		assert.Equal(t, "deepgram", cfg.Assistant.TranscriptionProvider)
		assert.Equal(t, "nova-2", cfg.Assistant.TranscriptionModel)
		assert.Equal(t, "multi", cfg.Assistant.TranscriptionLanguage)
		assert.Equal(t, "hindi-male-1", cfg.Assistant.HindiVoiceID)

		assert.Equal(t, "+91", cfg.Phone.DefaultCountryCode)
		assert.Equal(t, 5*time.Minute, cfg.Twilio.CallerIDTTL)
		assert.Equal(t, 30*time.Second, cfg.Twilio.Timeout)

		assert.False(t, cfg.VapiConfigured())
		assert.False(t, cfg.TwilioConfigured())
		assert.False(t, cfg.LLMConfigured())
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server: [unclosed"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "short server timeout", content: "server:\n  timeout: 100ms\n", errMsg: "server timeout"},
		{name: "relative base url", content: "server:\n  base_url: /calls\n", errMsg: "server.base_url"},
		{name: "short vapi timeout", content: "vapi:\n  timeout: 10ms\n", errMsg: "vapi timeout"},
		{name: "twilio sid without token", content: "twilio:\n  account_sid: AC1\n", errMsg: "must be set together"},
		{name: "country code without plus", content: "phone:\n  default_country_code: \"91\"\n", errMsg: "must start with +"},
		{name: "llm endpoint without model", content: "llm:\n  endpoint: http://localhost:1234\n", errMsg: "llm.model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetServerConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":7070"
	cfg.Server.Timeout = time.Minute
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen)
	assert.Equal(t, time.Minute, timeout)
}
