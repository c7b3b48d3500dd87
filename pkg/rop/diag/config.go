package diag

import "github.com/ib-77/outcome/pkg/rop"

// Config controls what ToDiagnostic copies from an error into the record.
type Config struct {
	// TypeBaseURI is prefixed to the error code to build the record type.
	TypeBaseURI string
	// IncludeCode adds errorCode.
	IncludeCode bool
	// IncludeCategory adds category, also on inner entries.
	IncludeCategory bool
	// IncludeInnerChain adds innerErrors.
	IncludeInnerChain bool
	// IncludeExtensions flattens the extensions into the record, and adds
	// them to inner entries.
	IncludeExtensions bool
	// StatusOverride, when set, replaces the status of the outer error.
	StatusOverride func(rop.Error) int
}

// Option configures a Config built by NewConfig.
type Option func(*Config)

// DefaultConfig includes the code, the extensions and the inner chain, but
// not the category.
func DefaultConfig() Config {
	return Config{
		IncludeCode:       true,
		IncludeExtensions: true,
		IncludeInnerChain: true,
	}
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

func WithTypeBaseURI(uri string) Option {
	return func(c *Config) { c.TypeBaseURI = uri }
}

func WithCode(include bool) Option {
	return func(c *Config) { c.IncludeCode = include }
}

func WithCategory(include bool) Option {
	return func(c *Config) { c.IncludeCategory = include }
}

func WithInnerChain(include bool) Option {
	return func(c *Config) { c.IncludeInnerChain = include }
}

func WithExtensions(include bool) Option {
	return func(c *Config) { c.IncludeExtensions = include }
}

func WithStatusOverride(fn func(rop.Error) int) Option {
	return func(c *Config) { c.StatusOverride = fn }
}
