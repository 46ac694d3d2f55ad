// Package content implements the public content query service on top of the
// tree walker and taxonomy aggregator.
package content

import (
	"context"
	"fmt"
	"strings"

	publiccontent "github.com/goliatone/go-sitegraph/content"
	"github.com/goliatone/go-sitegraph/internal/contenttree"
	"github.com/goliatone/go-sitegraph/internal/linkgraph"
	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/internal/taxonomy"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// Service answers content graph queries by walking the content tree on every
// call. The walker owns the filesystem; the service holds no state between
// calls, so edits to the underlying files surface on the next query.
type Service struct {
	walker      *contenttree.Walker
	agg         *taxonomy.Aggregator
	blogSection string
	logger      interfaces.Logger
}

// Config carries the service dependencies.
type Config struct {
	Walker      *contenttree.Walker
	Aggregator  *taxonomy.Aggregator
	BlogSection string
	Logger      interfaces.Logger
}

// New builds a Service. Walker and Aggregator are required.
func New(cfg Config) (*Service, error) {
	if cfg.Walker == nil {
		return nil, fmt.Errorf("content: walker is required")
	}
	if cfg.Aggregator == nil {
		return nil, fmt.Errorf("content: aggregator is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	blogSection := cfg.BlogSection
	if blogSection == "" {
		blogSection = "blog"
	}

	return &Service{
		walker:      cfg.Walker,
		agg:         cfg.Aggregator,
		blogSection: blogSection,
		logger:      logger,
	}, nil
}

var _ publiccontent.Service = (*Service)(nil)

// GetPage finds a standalone page by slug, optionally scoped to a section.
func (s *Service) GetPage(ctx context.Context, slug string, section ...string) (*interfaces.Page, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	if len(section) > 0 && section[0] != "" {
		sec := tree.Section(section[0])
		if sec == nil {
			return nil, fmt.Errorf("%w: %s/%s", publiccontent.ErrPageNotFound, section[0], slug)
		}
		if page := findPage(sec.Pages, slug); page != nil {
			return page, nil
		}
		return nil, fmt.Errorf("%w: %s/%s", publiccontent.ErrPageNotFound, section[0], slug)
	}

	if page := findPage(tree.Pages, slug); page != nil {
		return page, nil
	}
	for _, sec := range tree.Sections {
		if page := findPageDeep(sec, slug); page != nil {
			return page, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", publiccontent.ErrPageNotFound, slug)
}

// GetSection finds a top-level section by name.
func (s *Service) GetSection(ctx context.Context, name string) (*interfaces.Section, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	if sec := tree.Section(name); sec != nil {
		return sec, nil
	}
	return nil, fmt.Errorf("%w: %s", publiccontent.ErrSectionNotFound, name)
}

// GetPost finds a post by slug within the blog section. A missing post is
// not an error.
func (s *Service) GetPost(ctx context.Context, slug string, blogSection string) (*interfaces.Post, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	sec := tree.Section(s.sectionOrDefault(blogSection))
	if sec == nil {
		return nil, nil
	}
	for _, post := range taxonomy.Posts(sec) {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, nil
}

// GetPostsByTag lists the blog posts carrying the tag slug, newest first.
func (s *Service) GetPostsByTag(ctx context.Context, tagSlug string, blogSection string) ([]*interfaces.Post, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	sec := tree.Section(s.sectionOrDefault(blogSection))
	if sec == nil {
		return nil, nil
	}

	var matched []*interfaces.Post
	for _, post := range taxonomy.Posts(sec) {
		for _, tag := range post.Tags {
			if tag.Slug == tagSlug {
				matched = append(matched, post)
				break
			}
		}
	}
	return matched, nil
}

// GetAllPages flattens every page and post across the site, sorted by title.
func (s *Service) GetAllPages(ctx context.Context) ([]interfaces.ContentItem, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}
	return s.agg.AllPages(tree), nil
}

// GetAllTags lists the blog section's deduplicated tags sorted by title.
func (s *Service) GetAllTags(ctx context.Context, blogSection string) ([]interfaces.Tag, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	sec := tree.Section(s.sectionOrDefault(blogSection))
	if sec == nil {
		return nil, nil
	}
	return s.agg.Tags(sec), nil
}

// GetTag finds a tag by slug anywhere on the site, or nil when unknown.
func (s *Service) GetTag(ctx context.Context, slug string) (*interfaces.Tag, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	for _, tag := range s.agg.AllTags(tree) {
		if tag.Slug == slug {
			found := tag
			return &found, nil
		}
	}
	return nil, nil
}

// GetGlobalStats recomputes the site-wide statistics.
func (s *Service) GetGlobalStats(ctx context.Context, blogSection string) (*interfaces.Stats, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}
	return s.agg.GlobalStats(tree, s.sectionOrDefault(blogSection)), nil
}

// GetAllLinks aggregates every page's links across the site.
func (s *Service) GetAllLinks(ctx context.Context) (*interfaces.SiteLinks, error) {
	tree, err := s.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}
	return linkgraph.Aggregate(s.agg.AllPages(tree)), nil
}

func (s *Service) sectionOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return s.blogSection
	}
	return name
}

func findPage(pages []*interfaces.Page, slug string) *interfaces.Page {
	for _, page := range pages {
		if page.Slug == slug {
			return page
		}
	}
	return nil
}

func findPageDeep(sec *interfaces.Section, slug string) *interfaces.Page {
	if page := findPage(sec.Pages, slug); page != nil {
		return page
	}
	for _, sub := range sec.SubSections {
		if page := findPageDeep(sub, slug); page != nil {
			return page
		}
	}
	return nil
}
