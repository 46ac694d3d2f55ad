package markdown

import (
	"slices"
	"testing"

	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

func extract(t *testing.T, body string) *interfaces.LinkSet {
	t.Helper()
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	links, err := parser.ExtractLinks([]byte(body))
	if err != nil {
		t.Fatalf("ExtractLinks: %v", err)
	}
	return links
}

func TestExtractLinksClassification(t *testing.T) {
	body := "[anchor](#top) [mail](mailto:a@b.com) [in](/internal) [out](https://ext.com)"

	links := extract(t, body)
	if links == nil {
		t.Fatal("expected a link set")
	}

	if !slices.Equal(links.Internal, []string{"/internal"}) {
		t.Fatalf("internal mismatch: %#v", links.Internal)
	}
	if !slices.Equal(links.External, []string{"https://ext.com"}) {
		t.Fatalf("external mismatch: %#v", links.External)
	}
}

func TestExtractLinksDeduplicates(t *testing.T) {
	body := "[a](/page) and [b](/page) and [c](https://ext.com/x) and [d](https://ext.com/x)"

	links := extract(t, body)
	if links == nil {
		t.Fatal("expected a link set")
	}
	if len(links.Internal) != 1 || len(links.External) != 1 {
		t.Fatalf("expected set semantics, got %#v", links)
	}
}

func TestExtractLinksReferenceStyle(t *testing.T) {
	// The same target referenced inline and via a reference definition must
	// count once.
	body := "See [docs][1] and [docs inline](https://docs.example.com/guide).\n\n[1]: https://docs.example.com/guide\n"

	links := extract(t, body)
	if links == nil {
		t.Fatal("expected a link set")
	}
	if len(links.External) != 1 || links.External[0] != "https://docs.example.com/guide" {
		t.Fatalf("expected single external target, got %#v", links.External)
	}
}

func TestExtractLinksAutoLink(t *testing.T) {
	links := extract(t, "Visit https://auto.example.com for more.")
	if links == nil {
		t.Fatal("expected a link set")
	}
	if len(links.External) != 1 || links.External[0] != "https://auto.example.com" {
		t.Fatalf("expected autolink target, got %#v", links.External)
	}
}

func TestExtractLinksEmptyResult(t *testing.T) {
	links := extract(t, "No links here, just [an anchor](#section) and [mail](mailto:x@y.z).")
	if links != nil {
		t.Fatalf("expected nil link set, got %#v", links)
	}
}
