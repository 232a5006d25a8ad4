package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaDoc is the subset of the generated schema used for verification
type schemaDoc struct {
	Ref  string                `json:"$ref"`
	Defs map[string]schemaNode `json:"$defs"`
}

type schemaNode struct {
	Ref        string                `json:"$ref"`
	Type       string                `json:"type"`
	Properties map[string]schemaNode `json:"properties"`
	Required   []string              `json:"required"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Every config key must be declared in the schema and every required key must be set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaDoc
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.resolve(schema.Ref)
	if !ok {
		return fmt.Errorf("schema root %q not found", schema.Ref)
	}
	if err := schema.check("", root, configMap); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

func (s schemaDoc) resolve(ref string) (schemaNode, bool) {
	const prefix = "#/$defs/"
	if len(ref) <= len(prefix) {
		return schemaNode{}, false
	}
	node, ok := s.Defs[ref[len(prefix):]]
	return node, ok
}

func (s schemaDoc) check(path string, node schemaNode, value map[string]any) error {
	if node.Ref != "" {
		resolved, ok := s.resolve(node.Ref)
		if !ok {
			return fmt.Errorf("%s: unknown schema ref %q", path, node.Ref)
		}
		node = resolved
	}

	for _, req := range node.Required {
		if _, ok := value[req]; !ok {
			return fmt.Errorf("%s%s is required", path, req)
		}
	}

	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prop, ok := node.Properties[k]
		if !ok {
			return fmt.Errorf("%s%s is not defined in schema", path, k)
		}
		if nested, isMap := value[k].(map[string]any); isMap {
			if err := s.check(path+k+".", prop, nested); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url is required")
	}

	// check provider config when enabled
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.PhoneNumber == "" {
		return fmt.Errorf("twilio.phone_number is required when twilio is enabled")
	}
	if cfg.Vapi.APIKey != "" && cfg.Vapi.PhoneNumberID == "" {
		return fmt.Errorf("vapi.phone_number_id is required when vapi is enabled")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
