package sanitize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPolicyConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	contents := "pseudonym_salt: custom-salt\n" +
		"additional_fields_to_remove:\n" +
		"  - homeroomTeacher\n" +
		"  - busRoute\n" +
		"strict_mode: false\n" +
		"include_metadata: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	cfg, err := LoadPolicyConfig(path)
	if err != nil {
		t.Fatalf("LoadPolicyConfig error: %v", err)
	}
	if cfg.PseudonymSalt != "custom-salt" {
		t.Errorf("PseudonymSalt = %q, want custom-salt", cfg.PseudonymSalt)
	}
	if len(cfg.AdditionalFieldsToRemove) != 2 {
		t.Errorf("AdditionalFieldsToRemove = %v, want 2 entries", cfg.AdditionalFieldsToRemove)
	}
	if cfg.DefaultStrictMode {
		t.Error("expected DefaultStrictMode = false from YAML")
	}
	if !cfg.DefaultIncludeMetadata {
		t.Error("expected DefaultIncludeMetadata = true from YAML")
	}
}

func TestLoadPolicyConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.json")
	contents := `{"pseudonym_salt":"json-salt","strict_mode":true}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	cfg, err := LoadPolicyConfig(path)
	if err != nil {
		t.Fatalf("LoadPolicyConfig error: %v", err)
	}
	if cfg.PseudonymSalt != "json-salt" {
		t.Errorf("PseudonymSalt = %q, want json-salt", cfg.PseudonymSalt)
	}
	if !cfg.DefaultStrictMode {
		t.Error("expected DefaultStrictMode = true from JSON")
	}
}

func TestLoadPolicyConfigUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.txt")
	if err := os.WriteFile(path, []byte("irrelevant"), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	if _, err := LoadPolicyConfig(path); err == nil {
		t.Error("expected error for unsupported file extension")
	}
}

func TestLoadPolicyConfigMissingFile(t *testing.T) {
	if _, err := LoadPolicyConfig("/nonexistent/path/policy.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPolicyConfigApplyOverridesSalt(t *testing.T) {
	defer SetPseudonymSalt(defaultSalt)

	before := DerivePseudonym("S1", "D1")
	cfg := NewDefaultPolicyConfig()
	cfg.PseudonymSalt = "policy-applied-salt"
	cfg.Apply()

	after := DerivePseudonym("S1", "D1")
	if before == after {
		t.Error("expected Apply to change the derived pseudonym via the new salt")
	}
}
