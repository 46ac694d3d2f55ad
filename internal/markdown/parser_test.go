package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestWordCountAndReadingTime(t *testing.T) {
	words := WordCount([]byte("one two  three\nfour\tfive"))
	if words != 5 {
		t.Fatalf("expected 5 words, got %d", words)
	}

	if got := ReadingTime(0); got != 0 {
		t.Fatalf("expected zero reading time for empty body, got %d", got)
	}
	if got := ReadingTime(5); got != 1 {
		t.Fatalf("expected one minute floor, got %d", got)
	}
	if got := ReadingTime(401); got != 3 {
		t.Fatalf("expected rounding up to 3 minutes, got %d", got)
	}
}
