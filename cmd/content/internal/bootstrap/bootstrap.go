// Package bootstrap wires CLI flag values into a configured sitegraph module.
package bootstrap

import (
	"fmt"
	"strings"

	sitegraph "github.com/goliatone/go-sitegraph"
	"github.com/goliatone/go-sitegraph/content"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// Options captures configuration for content CLI bootstraps.
type Options struct {
	ContentDir  string
	BlogSection string
	TagBasePath string
	Locale      string
	Extensions  []string
	LogLevel    string
	LogFormat   string
	Verbose     bool
}

// Module wraps the sitegraph module and the configured content service and
// logger.
type Module struct {
	Module  *sitegraph.Module
	Service content.Service
	Logger  interfaces.Logger
}

// BuildModule constructs a sitegraph module configured for CLI reporting.
func BuildModule(opts Options) (*Module, error) {
	cfg := sitegraph.DefaultConfig()

	if trimmed := strings.TrimSpace(opts.ContentDir); trimmed != "" {
		cfg.ContentDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.BlogSection); trimmed != "" {
		cfg.BlogSection = trimmed
	}
	if trimmed := strings.TrimSpace(opts.TagBasePath); trimmed != "" {
		cfg.TagBasePath = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Locale); trimmed != "" {
		cfg.Locale = trimmed
	}
	if len(opts.Extensions) > 0 {
		cfg.Markdown.Extensions = opts.Extensions
	}

	cfg.Logging.Provider = sitegraph.LoggingProviderGoLogger
	cfg.Logging.Format = "console"
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}
	cfg.Logging.Level = "warn"
	if opts.Verbose {
		cfg.Logging.Level = "debug"
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	module, err := sitegraph.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialise sitegraph module: %w", err)
	}

	return &Module{
		Module:  module,
		Service: module.Content(),
		Logger:  module.Logger("sitegraph.cli"),
	}, nil
}

// SplitList parses a comma separated flag value into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
