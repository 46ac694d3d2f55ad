// Package sitegraph builds a queryable content graph from a markdown
// directory tree. The module walks the tree, renders markdown, extracts
// hyperlinks, and exposes the result through a read-only content service.
package sitegraph

import (
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-sitegraph/content"
	internalcontent "github.com/goliatone/go-sitegraph/internal/content"
	"github.com/goliatone/go-sitegraph/internal/contenttree"
	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/internal/logging/gologger"
	"github.com/goliatone/go-sitegraph/internal/markdown"
	"github.com/goliatone/go-sitegraph/internal/taxonomy"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// ContentService exports the content service contract for consumers of the
// sitegraph package.
type ContentService = content.Service

// Page exports the page entity.
type Page = interfaces.Page

// Post exports the post entity.
type Post = interfaces.Post

// Section exports the section entity.
type Section = interfaces.Section

// Tag exports the tag entity.
type Tag = interfaces.Tag

// ContentItem exports the tagged page/post union.
type ContentItem = interfaces.ContentItem

// Stats exports the aggregated site statistics.
type Stats = interfaces.Stats

// SiteLinks exports the site-wide link report.
type SiteLinks = interfaces.SiteLinks

// Module represents the top level sitegraph runtime façade.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider
	service  *internalcontent.Service
}

// Option overrides a module dependency during construction.
type Option func(*options)

type options struct {
	fsys     fs.FS
	provider interfaces.LoggerProvider
}

// WithFS overrides the content filesystem. By default the module reads from
// os.DirFS(cfg.ContentDir); tests typically pass an fstest.MapFS here.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithLoggerProvider overrides the logger provider selected by the
// configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) { o.provider = provider }
}

// New constructs a sitegraph module using the provided configuration and
// optional dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	provider := o.provider
	if provider == nil {
		built, err := buildProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	fsys := o.fsys
	if fsys == nil {
		fsys = os.DirFS(cfg.ContentDir)
	}

	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: cfg.Markdown.Extensions,
		Sanitize:   cfg.Markdown.Sanitize,
		HardWraps:  cfg.Markdown.HardWraps,
		SafeMode:   cfg.Markdown.SafeMode,
	})
	loader := markdown.NewLoader(fsys, logging.MarkdownLogger(provider))

	walker, err := contenttree.New(contenttree.Config{
		FS:          fsys,
		Loader:      loader,
		Parser:      parser,
		Links:       parser,
		TagBasePath: cfg.TagBasePath,
		Logger:      logging.TreeLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	service, err := internalcontent.New(internalcontent.Config{
		Walker:      walker,
		Aggregator:  taxonomy.NewAggregator(cfg.Locale),
		BlogSection: cfg.BlogSection,
		Logger:      logging.ContentLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		config:   cfg,
		provider: provider,
		service:  service,
	}, nil
}

// Content returns the configured content service.
func (m *Module) Content() ContentService {
	return m.service
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.config
}

// Logger returns a scoped child logger from the module's provider.
func (m *Module) Logger(name string) interfaces.Logger {
	if m == nil || m.provider == nil {
		return logging.NoOp()
	}
	return m.provider.GetLogger(name)
}

func buildProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", LoggingProviderNoop:
		return noopProvider{}, nil
	case LoggingProviderGoLogger:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
