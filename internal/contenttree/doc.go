// Package contenttree walks a markdown content root and assembles the
// Page, Post, and Section entities that make up the site's content graph.
// Classification is driven by filename convention: date-prefixed entries are
// posts, other directories are nested sections, everything else is a page.
package contenttree
