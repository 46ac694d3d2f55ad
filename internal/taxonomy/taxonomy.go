// Package taxonomy flattens the content tree into cross-section collections:
// all pages sorted by title, deduplicated tag lists, and site-wide stats.
package taxonomy

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/goliatone/go-sitegraph/internal/contenttree"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// Aggregator derives cross-section views from a walked tree. Collation and
// number formatting follow the configured locale.
type Aggregator struct {
	locale   language.Tag
	collator *collate.Collator
}

// NewAggregator builds an aggregator for the given BCP 47 locale, e.g. "en"
// or "en-IN". Unrecognised values collate as the undetermined language.
func NewAggregator(locale string) *Aggregator {
	tag := language.Make(locale)
	return &Aggregator{
		locale:   tag,
		collator: collate.New(tag),
	}
}

// AllPages flattens every page across every section: section pages and
// posts, hoisted subsection pages with a synthetic index stub per subsection,
// plus root-level standalone pages. The result is sorted by title with a
// locale-aware comparison.
func (a *Aggregator) AllPages(tree *contenttree.Tree) []interfaces.ContentItem {
	var items []interfaces.ContentItem

	for _, section := range tree.Sections {
		items = append(items, a.sectionItems(section)...)
	}
	for _, page := range tree.Pages {
		items = append(items, interfaces.ContentItem{Kind: interfaces.ItemKindPage, Page: page})
	}

	a.sortItems(items)
	return items
}

// sectionItems flattens one section. Subsection pages are hoisted into the
// parent's list alongside an index stub representing the subsection itself.
// A nil SubSections slice behaves exactly like an empty one.
func (a *Aggregator) sectionItems(section *interfaces.Section) []interfaces.ContentItem {
	var items []interfaces.ContentItem

	for _, page := range section.Pages {
		items = append(items, interfaces.ContentItem{Kind: interfaces.ItemKindPage, Page: page})
	}
	for _, post := range section.Posts {
		items = append(items, interfaces.ContentItem{Kind: interfaces.ItemKindPost, Post: post})
	}
	for _, sub := range section.SubSections {
		items = append(items, interfaces.ContentItem{
			Kind: interfaces.ItemKindSection,
			Page: &interfaces.Page{
				Kind:  interfaces.ItemKindSection,
				Title: sub.Title,
				Slug:  sub.Slug,
				Path:  sub.Path,
			},
		})
		items = append(items, a.sectionItems(sub)...)
	}

	return items
}

func (a *Aggregator) sortItems(items []interfaces.ContentItem) {
	a.collator.Sort(itemsByTitle(items))
}

// Posts collects every post beneath the section, preserving each level's
// newest-first order.
func Posts(section *interfaces.Section) []*interfaces.Post {
	if section == nil {
		return nil
	}

	posts := append([]*interfaces.Post(nil), section.Posts...)
	for _, sub := range section.SubSections {
		posts = append(posts, Posts(sub)...)
	}
	return posts
}

// Tags returns the section's deduplicated tags sorted by title.
func (a *Aggregator) Tags(section *interfaces.Section) []interfaces.Tag {
	set := NewTagSet()
	for _, post := range Posts(section) {
		for _, tag := range post.Tags {
			set.Add(tag)
		}
	}
	return a.sortTags(set.Items())
}

// AllTags returns every tag across the whole tree, deduplicated and sorted
// by title.
func (a *Aggregator) AllTags(tree *contenttree.Tree) []interfaces.Tag {
	set := NewTagSet()
	for _, section := range tree.Sections {
		for _, post := range Posts(section) {
			for _, tag := range post.Tags {
				set.Add(tag)
			}
		}
	}
	return a.sortTags(set.Items())
}

func (a *Aggregator) sortTags(tags []interfaces.Tag) []interfaces.Tag {
	a.collator.Sort(tagsByTitle(tags))
	return tags
}

// itemsByTitle adapts a content item slice to collate.Lister so the collator
// can sort it by title.
type itemsByTitle []interfaces.ContentItem

func (x itemsByTitle) Len() int           { return len(x) }
func (x itemsByTitle) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }
func (x itemsByTitle) Bytes(i int) []byte { return []byte(x[i].Meta().Title) }

type tagsByTitle []interfaces.Tag

func (x tagsByTitle) Len() int           { return len(x) }
func (x tagsByTitle) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }
func (x tagsByTitle) Bytes(i int) []byte { return []byte(x[i].Title) }

// TagSet deduplicates tags by full value equality. Two tags are the same
// entity when every field matches; the comparable struct is the set key, so
// no serialization round-trip is involved.
type TagSet struct {
	seen  map[interfaces.Tag]struct{}
	items []interfaces.Tag
}

// NewTagSet returns an empty set.
func NewTagSet() *TagSet {
	return &TagSet{seen: map[interfaces.Tag]struct{}{}}
}

// Add inserts the tag unless an equal value is already present.
func (s *TagSet) Add(tag interfaces.Tag) {
	if _, ok := s.seen[tag]; ok {
		return
	}
	s.seen[tag] = struct{}{}
	s.items = append(s.items, tag)
}

// Len reports the number of distinct tags.
func (s *TagSet) Len() int {
	return len(s.items)
}

// Items returns the distinct tags in insertion order.
func (s *TagSet) Items() []interfaces.Tag {
	return append([]interfaces.Tag(nil), s.items...)
}
