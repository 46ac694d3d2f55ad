package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// ErrDocumentNotFound indicates the requested file does not exist.
var ErrDocumentNotFound = errors.New("markdown: document not found")

// ErrFrontMatterInvalid indicates the document's front matter could not be parsed.
var ErrFrontMatterInvalid = errors.New("markdown: front matter invalid")

// Loader turns filesystem paths into parsed Markdown documents. Reads are
// pure: the loader never mutates the underlying filesystem.
type Loader struct {
	fsys   fs.FS
	logger interfaces.Logger
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(fsys fs.FS, logger interfaces.Logger) *Loader {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Loader{
		fsys:   fsys,
		logger: logger,
	}
}

// LoadFile reads and parses a single Markdown document. The path is
// slash-separated and relative to the loader's filesystem root.
func (l *Loader) LoadFile(ctx context.Context, path string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("markdown loader read %s: %w", path, err)
	}

	info, err := fs.Stat(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", path, err)
	}

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontMatterInvalid, path, err)
	}

	l.logger.Trace("document loaded", "path", path, "bytes", len(data))

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: info.ModTime(),
	}, nil
}

var _ interfaces.DocumentLoader = (*Loader)(nil)
