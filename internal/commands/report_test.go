package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sitegraph/content"
	internalcontent "github.com/goliatone/go-sitegraph/internal/content"
	"github.com/goliatone/go-sitegraph/internal/contenttree"
	"github.com/goliatone/go-sitegraph/internal/markdown"
	"github.com/goliatone/go-sitegraph/internal/taxonomy"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

func testService(t *testing.T) content.Service {
	t.Helper()

	fsys := fstest.MapFS{
		"_index.md": {Data: []byte("---\ntitle: Home\n---\nWelcome.\n")},

		"blog/_index.md": {Data: []byte("---\ntitle: Blog\n---\nPosts.\n")},
		"blog/2024-02-05-alpha.md": {Data: []byte(
			"---\ntitle: Alpha\ntaxonomies:\n  tags:\n    - Go\n---\nSee [home](/) and [docs](https://docs.example.com/a).\n")},
		"blog/2023-11-12-beta.md": {Data: []byte(
			"---\ntitle: Beta\n---\nBeta body text.\n")},
	}

	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	walker, err := contenttree.New(contenttree.Config{
		FS:     fsys,
		Loader: markdown.NewLoader(fsys, nil),
		Parser: parser,
		Links:  parser,
	})
	if err != nil {
		t.Fatalf("contenttree.New: %v", err)
	}

	svc, err := internalcontent.New(internalcontent.Config{
		Walker:     walker,
		Aggregator: taxonomy.NewAggregator("en"),
	})
	if err != nil {
		t.Fatalf("internalcontent.New: %v", err)
	}
	return svc
}

func TestExecuteStatsWritesReport(t *testing.T) {
	var buf bytes.Buffer
	h := NewReportHandler(testService(t), &buf)

	if err := h.ExecuteStats(context.Background(), StatsReportCommand{}); err != nil {
		t.Fatalf("ExecuteStats: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"posts: 2", "tags:  1", "2024 (1 posts)", "2024-02-05  Alpha", "2023-11-12  Beta"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestExecuteStatsJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewReportHandler(testService(t), &buf)

	if err := h.ExecuteStats(context.Background(), StatsReportCommand{Format: FormatJSON}); err != nil {
		t.Fatalf("ExecuteStats: %v", err)
	}

	var decoded struct {
		Posts int    `json:"posts"`
		Words string `json:"words"`
		Tags  int    `json:"tags"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if decoded.Posts != 2 || decoded.Tags != 1 {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestExecuteStatsRejectsUnknownFormat(t *testing.T) {
	h := NewReportHandler(testService(t), &bytes.Buffer{})

	err := h.ExecuteStats(context.Background(), StatsReportCommand{Format: "yaml"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestExecuteStatsRejectsNestedSectionName(t *testing.T) {
	h := NewReportHandler(testService(t), &bytes.Buffer{})

	err := h.ExecuteStats(context.Background(), StatsReportCommand{BlogSection: "blog/nested"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestExecuteLinksWritesReport(t *testing.T) {
	var buf bytes.Buffer
	h := NewReportHandler(testService(t), &buf)

	if err := h.ExecuteLinks(context.Background(), LinksReportCommand{}); err != nil {
		t.Fatalf("ExecuteLinks: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"internal links (1)", "1  /", "external domains (1)", "example.com", "https://docs.example.com/a"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestExecuteLinksContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewReportHandler(testService(t), &bytes.Buffer{})

	err := h.ExecuteLinks(ctx, LinksReportCommand{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
