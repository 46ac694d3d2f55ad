package contenttree

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"unicode"

	slugpkg "github.com/goliatone/go-slug"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/internal/markdown"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// ErrSectionIndexMissing indicates a section directory without an _index.md.
var ErrSectionIndexMissing = errors.New("contenttree: section index missing")

// ErrWalkerInvalid indicates the walker was constructed without its
// required collaborators.
var ErrWalkerInvalid = errors.New("contenttree: walker requires fs, loader, parser, and link extractor")

// Config wires the walker's collaborators. FS, Loader, Parser, and Links are
// required; the rest default sensibly.
type Config struct {
	FS          fs.FS
	Loader      interfaces.DocumentLoader
	Parser      interfaces.MarkdownParser
	Links       interfaces.LinkExtractor
	TagBasePath string
	Logger      interfaces.Logger
}

// Walker builds the content graph from a directory tree. Every call to Walk
// re-reads the filesystem; the walker holds no mutable state between calls.
type Walker struct {
	fsys    fs.FS
	loader  interfaces.DocumentLoader
	parser  interfaces.MarkdownParser
	links   interfaces.LinkExtractor
	tagBase string
	logger  interfaces.Logger
}

// Tree is the result of one traversal: top-level sections plus root-level
// standalone pages. Ownership is structural; entities are not mutated after
// Walk returns.
type Tree struct {
	Sections []*interfaces.Section
	Pages    []*interfaces.Page
}

// Section returns the top-level section with the given name, or nil.
func (t *Tree) Section(name string) *interfaces.Section {
	if t == nil {
		return nil
	}
	for _, section := range t.Sections {
		if section.Slug == name {
			return section
		}
	}
	return nil
}

// New constructs a Walker from the provided configuration.
func New(cfg Config) (*Walker, error) {
	if cfg.FS == nil || cfg.Loader == nil || cfg.Parser == nil || cfg.Links == nil {
		return nil, ErrWalkerInvalid
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	tagBase := strings.TrimSuffix(cfg.TagBasePath, "/")
	if tagBase == "" {
		tagBase = "/tags"
	}

	return &Walker{
		fsys:    cfg.FS,
		loader:  cfg.Loader,
		parser:  cfg.Parser,
		links:   cfg.Links,
		tagBase: tagBase,
		logger:  logger,
	}, nil
}

// Walk enumerates the content root. Top-level directories become sections,
// top-level files become standalone pages. Any file failure aborts the
// traversal; there is no partial-success mode.
func (w *Walker) Walk(ctx context.Context) (*Tree, error) {
	entries, err := fs.ReadDir(w.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("contenttree read root: %w", err)
	}

	tree := &Tree{}
	for _, entry := range entries {
		name := entry.Name()
		if name == systemArtifact {
			continue
		}

		if entry.IsDir() {
			section, err := w.walkSection(ctx, name, name)
			if err != nil {
				return nil, err
			}
			tree.Sections = append(tree.Sections, section)
			continue
		}

		slug := PageSlug(name)
		page, err := w.buildPage(ctx, name, slug, "", rootPagePath(slug))
		if err != nil {
			return nil, err
		}
		tree.Pages = append(tree.Pages, page)
	}

	w.logger.Debug("content tree built",
		"sections", len(tree.Sections), "root_pages", len(tree.Pages))

	return tree, nil
}

// walkSection scans one section directory. Sibling file reads are issued
// concurrently and joined before assembly, since the post sort depends on the
// complete list.
func (w *Walker) walkSection(ctx context.Context, dir, name string) (*interfaces.Section, error) {
	index, err := w.loader.LoadFile(ctx, path.Join(dir, sectionIndex))
	if err != nil {
		if errors.Is(err, markdown.ErrDocumentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSectionIndexMissing, dir)
		}
		return nil, err
	}

	html, err := w.parser.Parse(index.Body)
	if err != nil {
		return nil, fmt.Errorf("contenttree render %s: %w", dir, err)
	}

	words := markdown.WordCount(index.Body)
	section := &interfaces.Section{
		Title:       titleOrFallback(index.FrontMatter.Title, name),
		Slug:        name,
		Path:        "/" + dir,
		HTML:        string(html),
		Description: index.FrontMatter.Description,
		WordCount:   words,
		ReadingTime: markdown.ReadingTime(words),
	}

	entries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("contenttree read %s: %w", dir, err)
	}

	docs, err := w.loadSiblings(ctx, dir, entries)
	if err != nil {
		return nil, err
	}

	for i, entry := range entries {
		entryName := entry.Name()
		switch ClassifyEntry(entryName, entry.IsDir()) {
		case EntryKindSkip:
			continue

		case EntryKindPost:
			post, err := w.buildPost(docs[i], entryName, entry.IsDir(), dir, name)
			if err != nil {
				return nil, err
			}
			section.Posts = insertPost(section.Posts, post)

		case EntryKindSubSection:
			sub, err := w.walkSection(ctx, path.Join(dir, entryName), entryName)
			if err != nil {
				return nil, err
			}
			section.SubSections = append(section.SubSections, sub)

		case EntryKindPage:
			slug := PageSlug(entryName)
			page, err := w.buildPageFromDoc(docs[i], slug, name, "/"+dir+"/"+slug)
			if err != nil {
				return nil, err
			}
			section.Pages = append(section.Pages, page)
		}
	}

	return section, nil
}

// loadSiblings reads every post and page file in the directory concurrently,
// returning documents indexed by entry position. Subsection directories and
// skipped entries leave a nil slot.
func (w *Walker) loadSiblings(ctx context.Context, dir string, entries []fs.DirEntry) ([]*interfaces.Document, error) {
	docs := make([]*interfaces.Document, len(entries))
	g, gctx := errgroup.WithContext(ctx)

	for i, entry := range entries {
		name := entry.Name()

		var target string
		switch ClassifyEntry(name, entry.IsDir()) {
		case EntryKindPost:
			if entry.IsDir() {
				// Nested post bundle: the document lives at <entry>/index.md.
				target = path.Join(dir, name, "index.md")
			} else {
				target = path.Join(dir, name)
			}
		case EntryKindPage:
			target = path.Join(dir, name)
		default:
			continue
		}

		i, target := i, target
		g.Go(func() error {
			doc, err := w.loader.LoadFile(gctx, target)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// buildPost derives the post from its directory entry. The path uses the full
// directory, not the leaf section name, so posts nested in subsections keep
// the same prefix as their sibling pages.
func (w *Walker) buildPost(doc *interfaces.Document, entryName string, isDir bool, dir, sectionName string) (*interfaces.Post, error) {
	date, slug, err := SplitPostName(entryName, isDir)
	if err != nil {
		return nil, err
	}

	page, err := w.buildPageFromDoc(doc, slug, sectionName, "/"+dir+"/"+slug)
	if err != nil {
		return nil, err
	}
	page.Kind = interfaces.ItemKindPost

	tags, err := w.resolveTags(doc.FrontMatter.Taxonomies.Tags)
	if err != nil {
		return nil, err
	}

	return &interfaces.Post{
		Page: *page,
		Date: date,
		Tags: tags,
	}, nil
}

func (w *Walker) buildPage(ctx context.Context, file, slug, sectionName, pagePath string) (*interfaces.Page, error) {
	doc, err := w.loader.LoadFile(ctx, file)
	if err != nil {
		return nil, err
	}
	return w.buildPageFromDoc(doc, slug, sectionName, pagePath)
}

func (w *Walker) buildPageFromDoc(doc *interfaces.Document, slug, sectionName, pagePath string) (*interfaces.Page, error) {
	html, err := w.parser.Parse(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("contenttree render %s: %w", doc.FilePath, err)
	}

	links, err := w.links.ExtractLinks(doc.Body)
	if err != nil {
		return nil, err
	}

	words := markdown.WordCount(doc.Body)
	return &interfaces.Page{
		Kind:        interfaces.ItemKindPage,
		Title:       titleOrFallback(doc.FrontMatter.Title, slug),
		Slug:        slug,
		Path:        pagePath,
		Section:     sectionName,
		HTML:        string(html),
		WordCount:   words,
		ReadingTime: markdown.ReadingTime(words),
		Description: doc.FrontMatter.Description,
		Updated:     doc.FrontMatter.Updated,
		Draft:       doc.FrontMatter.Draft,
		Links:       links,
	}, nil
}

func (w *Walker) resolveTags(names []string) ([]interfaces.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	tags := make([]interfaces.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		normalized, err := slugpkg.Normalize(name)
		if err != nil {
			return nil, fmt.Errorf("contenttree tag %q: %w", name, err)
		}
		tags = append(tags, interfaces.Tag{
			Title: name,
			Slug:  normalized,
			Path:  w.tagBase + "/" + normalized,
		})
	}
	return tags, nil
}

// insertPost appends the post and re-sorts the whole list descending by date.
// The stable full re-sort per insertion mirrors incremental build order, so
// equal dates keep their discovery order.
func insertPost(list []*interfaces.Post, post *interfaces.Post) []*interfaces.Post {
	list = append(list, post)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	return list
}

func rootPagePath(slug string) string {
	if slug == "" {
		return "/"
	}
	return "/" + slug
}

func titleOrFallback(title, slug string) string {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return trimmed
	}
	return titleize(slug)
}

// titleize turns a slug like "hello-world" into "Hello World".
func titleize(slug string) string {
	if slug == "" {
		return "Untitled"
	}

	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
