package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  func() *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "defaults are valid",
			config: defaultConfig,
		},
		{
			name: "fully configured",
			config: func() *Config {
				cfg := defaultConfig()
				cfg.Vapi.APIKey = "key"
				cfg.Vapi.PhoneNumberID = "pn"
				cfg.Twilio.AccountSID = "AC1"
				cfg.Twilio.AuthToken = "tok"
				cfg.Twilio.PhoneNumber = "+15005550006"
				return cfg
			},
		},
		{
			name: "missing listen",
			config: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Listen = ""
				return cfg
			},
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name: "twilio without phone number",
			config: func() *Config {
				cfg := defaultConfig()
				cfg.Twilio.AccountSID = "AC1"
				cfg.Twilio.AuthToken = "tok"
				return cfg
			},
			wantErr: true,
			errMsg:  "twilio.phone_number is required",
		},
		{
			name: "vapi without phone number id",
			config: func() *Config {
				cfg := defaultConfig()
				cfg.Vapi.APIKey = "key"
				return cfg
			},
			wantErr: true,
			errMsg:  "vapi.phone_number_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAgainstEmbeddedSchema(tt.config())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSchemaCheck(t *testing.T) {
	var schema schemaDoc
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	root, ok := schema.resolve(schema.Ref)
	require.True(t, ok)

	t.Run("unknown nested key", func(t *testing.T) {
		err := schema.check("", root, map[string]any{"vapi": map[string]any{"api_token": "x"}})
		require.Error(t, err)
		assert.Equal(t, "vapi.api_token is not defined in schema", err.Error())
	})

	t.Run("unknown top key", func(t *testing.T) {
		err := schema.check("", root, map[string]any{"feeds": []any{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feeds is not defined")
	})

	t.Run("bad ref", func(t *testing.T) {
		_, ok := schema.resolve("#/$defs/Nope")
		assert.False(t, ok)
		_, ok = schema.resolve("")
		assert.False(t, ok)
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)

	// generated schema is what gets embedded, so it must round-trip through the checker
	var doc schemaDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	root, ok := doc.resolve(doc.Ref)
	require.True(t, ok)
	for _, key := range []string{"server", "database", "vapi", "twilio", "webhook", "assistant", "phone", "llm"} {
		assert.Contains(t, root.Properties, key)
	}
}
