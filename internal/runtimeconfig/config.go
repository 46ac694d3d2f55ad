package runtimeconfig

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrLoggingProviderUnknown indicates the logging provider name is not recognised.
var ErrLoggingProviderUnknown = errors.New("sitegraph config: logging provider is invalid")

// ErrLoggingLevelInvalid indicates the logging level is not recognised.
var ErrLoggingLevelInvalid = errors.New("sitegraph config: logging level is invalid")

// ErrLoggingFormatInvalid indicates the logging format is not recognised.
var ErrLoggingFormatInvalid = errors.New("sitegraph config: logging format is invalid")

// Logging provider identifiers.
const (
	LoggingProviderNoop     = "noop"
	LoggingProviderGoLogger = "gologger"
)

// Config aggregates the content root and behaviour toggles for the module.
// Fields intentionally use simple types so host applications can extend them
// later.
type Config struct {
	// ContentDir is the directory holding the markdown content tree.
	ContentDir string
	// BlogSection names the section whose entries are dated posts.
	BlogSection string
	// TagBasePath prefixes generated tag paths, e.g. "/tags".
	TagBasePath string
	// Locale selects collation and number formatting, e.g. "en-IN".
	Locale string
	// Markdown configures parser behaviour for rendered bodies.
	Markdown MarkdownConfig
	// Logging configures the runtime logger provider.
	Logging LoggingConfig
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a conventional content tree.
func DefaultConfig() Config {
	return Config{
		ContentDir:  "content",
		BlogSection: "blog",
		TagBasePath: "/tags",
		Locale:      "en",
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify"},
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderNoop,
			Level:    "info",
		},
	}
}

// Validate checks field-level requirements and cross-field consistency.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.BlogSection, validation.Required),
		validation.Field(&c.Locale, validation.Required),
	); err != nil {
		return err
	}

	return c.Logging.validate()
}

func (l LoggingConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Provider)) {
	case "", LoggingProviderNoop, LoggingProviderGoLogger:
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
