package sitegraph

import "github.com/goliatone/go-sitegraph/internal/runtimeconfig"

// Config aggregates the content root and behaviour toggles for the module.
type Config = runtimeconfig.Config

// MarkdownConfig configures parser behaviour for rendered bodies.
type MarkdownConfig = runtimeconfig.MarkdownConfig

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig = runtimeconfig.LoggingConfig

// Logging provider identifiers accepted by LoggingConfig.Provider.
const (
	LoggingProviderNoop     = runtimeconfig.LoggingProviderNoop
	LoggingProviderGoLogger = runtimeconfig.LoggingProviderGoLogger
)

// Configuration sentinel errors.
var (
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

// DefaultConfig returns opinionated defaults for a conventional content tree.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
