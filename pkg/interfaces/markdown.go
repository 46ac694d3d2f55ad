package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should keep parser instances reusable across calls so
// hosts can share a single configured engine without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LinkExtractor walks a Markdown body's token tree and reports the hyperlink
// targets it references, classified and deduplicated.
type LinkExtractor interface {
	// ExtractLinks returns the document's link set, or nil when the body
	// carries no qualifying links.
	ExtractLinks(markdown []byte) (*LinkSet, error)
}

// DocumentLoader reads a single Markdown file and returns its parsed form.
type DocumentLoader interface {
	LoadFile(ctx context.Context, path string) (*Document, error)
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
}

// FrontMatter models metadata extracted from Markdown files. The Extra map
// keeps unmodelled keys available for template- or domain-specific values.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description" json:"description"`
	Updated     string         `yaml:"updated" json:"updated"`
	Draft       bool           `yaml:"draft" json:"draft"`
	Taxonomies  Taxonomies     `yaml:"taxonomies" json:"taxonomies"`
	Extra       map[string]any `yaml:",inline" json:"extra"`
}

// Taxonomies groups the classification labels declared by a document.
type Taxonomies struct {
	Tags []string `yaml:"tags" json:"tags"`
}
