package contenttree

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrDatePrefixInvalid indicates an entry name that matches the date-prefix
// pattern but does not contain a real calendar date.
var ErrDatePrefixInvalid = errors.New("contenttree: date prefix invalid")

const (
	dateLayout     = "2006-01-02"
	datePrefixLen  = len(dateLayout)
	sectionIndex   = "_index.md"
	systemArtifact = ".DS_Store"
)

var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// EntryKind classifies one directory entry during a section scan.
type EntryKind int

const (
	// EntryKindSkip marks entries the walker ignores (index files, .DS_Store).
	EntryKindSkip EntryKind = iota
	// EntryKindPost marks date-prefixed entries, file or directory form.
	EntryKindPost
	// EntryKindSubSection marks non-date-prefixed directories.
	EntryKindSubSection
	// EntryKindPage marks every remaining file.
	EntryKindPage
)

// HasDatePrefix reports whether name begins with a YYYY-MM-DD pattern.
func HasDatePrefix(name string) bool {
	return datePrefixRe.MatchString(name)
}

// IsSectionIndex reports whether name is a section index document
// (_index.md or a localized _index.<lang>.md variant).
func IsSectionIndex(name string) bool {
	if name == sectionIndex {
		return true
	}
	return strings.HasPrefix(name, "_index.") && strings.HasSuffix(name, ".md")
}

// ClassifyEntry applies the section-scan rules to a single directory entry.
// The function is pure so the convention can be tested without touching a
// real filesystem.
func ClassifyEntry(name string, isDir bool) EntryKind {
	if name == systemArtifact || (!isDir && IsSectionIndex(name)) {
		return EntryKindSkip
	}
	if HasDatePrefix(name) {
		return EntryKindPost
	}
	if isDir {
		return EntryKindSubSection
	}
	return EntryKindPage
}

// SplitPostName derives a post's date and slug from its entry name. The slug
// strips the ten character date prefix plus exactly one separator rune,
// whichever rune it is, so both 2024-03-01-hello.md and 2024-03-01_hello.md
// yield "hello". A prefix that matches the pattern without being a real
// calendar date fails with ErrDatePrefixInvalid.
func SplitPostName(name string, isDir bool) (time.Time, string, error) {
	stem := name
	if !isDir {
		stem = strings.TrimSuffix(name, path.Ext(name))
	}
	if len(stem) < datePrefixLen {
		return time.Time{}, "", fmt.Errorf("%w: %s", ErrDatePrefixInvalid, name)
	}

	date, err := time.Parse(dateLayout, stem[:datePrefixLen])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %s", ErrDatePrefixInvalid, name)
	}

	rest := stem[datePrefixLen:]
	if rest != "" {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}

	return date, rest, nil
}

// PageSlug derives a page slug from a filename: the extension is dropped and
// the root _index document maps to the empty slug.
func PageSlug(name string) string {
	stem := strings.TrimSuffix(name, path.Ext(name))
	if stem == "_index" {
		return ""
	}
	return stem
}
