package sanitize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// policyFile is the on-disk shape of a policy configuration file, in the
// a friendlier YAML/JSON surface
// that LoadPolicyConfig converts into a PolicyConfig.
type policyFile struct {
	PseudonymSalt            string   `yaml:"pseudonym_salt" json:"pseudonym_salt"`
	AdditionalFieldsToRemove []string `yaml:"additional_fields_to_remove" json:"additional_fields_to_remove"`
	StrictMode               *bool    `yaml:"strict_mode" json:"strict_mode"`
	IncludeMetadata          *bool    `yaml:"include_metadata" json:"include_metadata"`
}

// LoadPolicyConfig loads a PolicyConfig from a YAML or JSON file; the
// format is chosen by file extension (.yaml/.yml or .json), matching the
// chosen by file extension. It does not apply the config —
// callers decide when to call (*PolicyConfig).Apply().
func LoadPolicyConfig(path string) (*PolicyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sanitize: read policy config: %w", err)
	}

	var pf policyFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("sanitize: parse YAML policy config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("sanitize: parse JSON policy config: %w", err)
		}
	default:
		return nil, fmt.Errorf("sanitize: unsupported policy config format %q (use .yaml, .yml, or .json)", ext)
	}

	cfg := NewDefaultPolicyConfig()
	cfg.PseudonymSalt = pf.PseudonymSalt
	cfg.AdditionalFieldsToRemove = pf.AdditionalFieldsToRemove
	if pf.StrictMode != nil {
		cfg.DefaultStrictMode = *pf.StrictMode
	}
	if pf.IncludeMetadata != nil {
		cfg.DefaultIncludeMetadata = *pf.IncludeMetadata
	}
	return cfg, nil
}
