package sanitize

// PolicyConfig holds process-wide overrides applied once at startup,
// a pseudonym salt override, plus
// default-context knobs. There are no environment variables and no
// persisted state; PolicyConfig is meant to be loaded once (via
// LoadPolicyConfig) and applied with Apply.
type PolicyConfig struct {
	// PseudonymSalt overrides the process-wide salt used by
	// DerivePseudonym. Empty means keep the built-in default.
	PseudonymSalt string

	// AdditionalFieldsToRemove extends every default context's drop list.
	AdditionalFieldsToRemove []string

	// DefaultStrictMode and DefaultIncludeMetadata seed the values that
	// NewContext uses unless a caller overrides them with
	// WithStrictMode/WithMetadata.
	DefaultStrictMode      bool
	DefaultIncludeMetadata bool
}

// NewDefaultPolicyConfig returns the built-in defaults: salt unset (falls
// back to the compiled-in constant), no extra fields to remove, strict
// mode and metadata both on.
func NewDefaultPolicyConfig() *PolicyConfig {
	return &PolicyConfig{
		DefaultStrictMode:      true,
		DefaultIncludeMetadata: true,
	}
}

var activePolicy = NewDefaultPolicyConfig()

// Apply installs cfg as the process-wide policy configuration: it
// overrides the pseudonym salt (if set) and the defaults used by future
// NewContext calls that don't pass explicit options.
func (cfg *PolicyConfig) Apply() {
	if cfg.PseudonymSalt != "" {
		SetPseudonymSalt(cfg.PseudonymSalt)
	}
	activePolicy = cfg
}

// contextDefaultOptions returns the ContextOptions reflecting the active
// policy config's defaults, applied before caller-supplied options so
// callers can still override them per call.
func contextDefaultOptions() []ContextOption {
	opts := []ContextOption{
		WithStrictMode(activePolicy.DefaultStrictMode),
		WithMetadata(activePolicy.DefaultIncludeMetadata),
	}
	if len(activePolicy.AdditionalFieldsToRemove) > 0 {
		opts = append(opts, WithAdditionalFieldsToRemove(activePolicy.AdditionalFieldsToRemove...))
	}
	return opts
}
