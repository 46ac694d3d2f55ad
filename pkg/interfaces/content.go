package interfaces

import "time"

// ItemKind discriminates the members of mixed content collections. Consumers
// switch on the kind instead of probing for post-only fields.
type ItemKind string

const (
	// ItemKindPage identifies an undated standalone document.
	ItemKindPage ItemKind = "page"
	// ItemKindPost identifies a dated document belonging to a section.
	ItemKindPost ItemKind = "post"
	// ItemKindSection identifies a synthetic index stub standing in for a
	// nested section inside a flattened page list.
	ItemKindSection ItemKind = "section"
)

// Page represents a rendered Markdown document. Entities are immutable once
// the traversal that produced them returns; optional fields hold their zero
// value when absent instead of being dropped from the shape.
type Page struct {
	Kind        ItemKind `json:"kind"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Path        string   `json:"path"`
	Section     string   `json:"section"`
	HTML        string   `json:"html"`
	WordCount   int      `json:"word_count"`
	ReadingTime int      `json:"reading_time"`
	Description string   `json:"description,omitempty"`
	Updated     string   `json:"updated,omitempty"`
	Draft       bool     `json:"draft,omitempty"`
	Links       *LinkSet `json:"links,omitempty"`
}

// Post is a Page with a mandatory publication date parsed from its filename
// prefix and the tags declared in its front matter.
type Post struct {
	Page
	Date time.Time `json:"date"`
	Tags []Tag     `json:"tags,omitempty"`
}

// Section groups pages and posts beneath a named directory. Posts are ordered
// newest first. SubSections is nil, not an empty slice, when the section has
// no nested sections; aggregation treats both identically.
type Section struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Path        string     `json:"path"`
	HTML        string     `json:"html"`
	Description string     `json:"description,omitempty"`
	WordCount   int        `json:"word_count"`
	ReadingTime int        `json:"reading_time"`
	Pages       []*Page    `json:"pages"`
	Posts       []*Post    `json:"posts"`
	SubSections []*Section `json:"sub_sections,omitempty"`
}

// ContentItem is the tagged union used by flattened cross-section
// collections. Exactly one of Page or Post is set, matching Kind.
type ContentItem struct {
	Kind ItemKind `json:"kind"`
	Page *Page    `json:"page,omitempty"`
	Post *Post    `json:"post,omitempty"`
}

// Meta returns the Page portion of the item regardless of kind.
func (ci ContentItem) Meta() *Page {
	if ci.Kind == ItemKindPost && ci.Post != nil {
		return &ci.Post.Page
	}
	return ci.Page
}

// Tag labels a post. Identity is by value: two tags with equal fields are the
// same entity, so the struct stays comparable for use as a set key.
type Tag struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Path  string `json:"path"`
}

// LinkSet holds a document's deduplicated hyperlink targets. Membership, not
// order, is significant.
type LinkSet struct {
	Internal []string `json:"internal,omitempty"`
	External []string `json:"external,omitempty"`
}

// Empty reports whether the set carries no links at all.
func (ls *LinkSet) Empty() bool {
	return ls == nil || (len(ls.Internal) == 0 && len(ls.External) == 0)
}

// Stats aggregates site-wide figures. Recomputed on every query; nothing is
// cached between calls.
type Stats struct {
	BlogByYear map[string][]*Post `json:"blog_by_year"`
	Posts      int                `json:"posts"`
	Words      string             `json:"words"`
	Tags       int                `json:"tags"`
	Links      *SiteLinks         `json:"links,omitempty"`
}

// SiteLinks is the site-wide link report, both lists sorted descending by
// count with discovery order preserved among ties.
type SiteLinks struct {
	Internal []InternalLink   `json:"internal"`
	External []ExternalDomain `json:"external"`
}

// InternalLink counts how many site pages reference a pathname.
type InternalLink struct {
	Pathname string `json:"pathname"`
	Count    int    `json:"count"`
}

// ExternalDomain groups outbound links under their registrable domain.
type ExternalDomain struct {
	Domain string           `json:"domain"`
	Count  int              `json:"count"`
	Links  []ExternalTarget `json:"links"`
}

// ExternalTarget lists every page path referencing one exact target URL.
type ExternalTarget struct {
	TargetURL  string   `json:"target_url"`
	SourceURLs []string `json:"source_urls"`
}
