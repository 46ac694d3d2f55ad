// Package content exposes the read-only query façade over the site's
// content graph. Every query re-walks the content tree from scratch; results
// are value-equal across calls against an unchanged tree, never shared
// instances.
package content

import (
	"context"

	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// Page exports the page entity for consumers of the content package.
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

// Service exposes content graph lookups. Lookup-style queries (GetPost,
// GetPostsByTag, GetTag) report absence as a nil result with a nil error;
// structural queries (GetPage, GetSection) return sentinel errors instead.
type Service interface {
	// GetPage finds a standalone page by slug, optionally scoped to a
	// section. Fails with ErrPageNotFound when no page matches.
	GetPage(ctx context.Context, slug string, section ...string) (*Page, error)
	// GetSection finds a top-level section by name. Fails with
	// ErrSectionNotFound when the section does not exist.
	GetSection(ctx context.Context, name string) (*Section, error)
	// GetPost finds a post by slug within the blog section. Absence is a
	// normal outcome: the result is nil with a nil error.
	GetPost(ctx context.Context, slug string, blogSection string) (*Post, error)
	// GetPostsByTag lists the blog posts carrying the tag slug, newest
	// first, or nil when none match.
	GetPostsByTag(ctx context.Context, tagSlug string, blogSection string) ([]*Post, error)
	// GetAllPages flattens every page and post across all sections, sorted
	// by title.
	GetAllPages(ctx context.Context) ([]ContentItem, error)
	// GetAllTags lists the blog section's deduplicated tags sorted by title.
	GetAllTags(ctx context.Context, blogSection string) ([]Tag, error)
	// GetTag finds a tag by slug anywhere on the site, or nil when unknown.
	GetTag(ctx context.Context, slug string) (*Tag, error)
	// GetGlobalStats recomputes the site-wide statistics.
	GetGlobalStats(ctx context.Context, blogSection string) (*Stats, error)
	// GetAllLinks aggregates every page's links, or nil when the site has
	// no links at all.
	GetAllLinks(ctx context.Context) (*SiteLinks, error)
}
