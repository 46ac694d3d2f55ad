package contenttree

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-sitegraph/internal/markdown"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

func newTestWalker(t *testing.T, fsys fstest.MapFS) *Walker {
	t.Helper()

	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	walker, err := New(Config{
		FS:     fsys,
		Loader: markdown.NewLoader(fsys, nil),
		Parser: parser,
		Links:  parser,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return walker
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func testSite() fstest.MapFS {
	return fstest.MapFS{
		"_index.md": file("---\ntitle: Home\n---\nWelcome home.\n"),
		"about.md":  file("---\ntitle: About\n---\nAbout [the blog](/blog).\n"),

		"blog/_index.md": file("---\ntitle: Blog\ndescription: Dated entries\n---\nAll posts.\n"),
		"blog/2023-06-15-older.md": file(
			"---\ntitle: Older\n---\nBody of the older post.\n"),
		"blog/2024-03-01-hello-world.md": file(
			"---\ntitle: Hello\ntaxonomies:\n  tags:\n    - Go\n    - Notes\n---\nHello [external](https://example.com/a).\n"),
		"blog/2024-05-02-newest/index.md": file(
			"---\ntitle: Newest\n---\nNested bundle body.\n"),

		"projects/_index.md": file("---\ntitle: Projects\n---\nThings built.\n"),
		"projects/alpha.md":  file("---\ntitle: Alpha\n---\nAlpha body.\n"),

		"projects/archive/_index.md": file("---\ntitle: Archive\n---\nOld things.\n"),
		"projects/archive/beta.md":   file("---\ntitle: Beta\n---\nBeta body.\n"),
	}
}

func TestWalkBuildsTree(t *testing.T) {
	walker := newTestWalker(t, testSite())

	tree, err := walker.Walk(context.Background())
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(tree.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(tree.Sections))
	}
	if len(tree.Pages) != 2 {
		t.Fatalf("expected 2 root pages, got %d", len(tree.Pages))
	}

	home := tree.Pages[0]
	if home.Slug != "" || home.Path != "/" {
		t.Fatalf("expected _index.md to map to the empty slug at /, got %q %q", home.Slug, home.Path)
	}
}

func TestWalkOrdersPostsNewestFirst(t *testing.T) {
	walker := newTestWalker(t, testSite())

	tree, err := walker.Walk(context.Background())
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	blog := tree.Section("blog")
	if blog == nil {
		t.Fatal("expected blog section")
	}
	if blog.Description != "Dated entries" {
		t.Fatalf("section description mismatch: %q", blog.Description)
	}

	wantSlugs := []string{"newest", "hello-world", "older"}
	if len(blog.Posts) != len(wantSlugs) {
		t.Fatalf("expected %d posts, got %d", len(wantSlugs), len(blog.Posts))
	}
	for i, want := range wantSlugs {
		if blog.Posts[i].Slug != want {
			t.Fatalf("post %d: expected slug %q, got %q", i, want, blog.Posts[i].Slug)
		}
	}
	for i := 1; i < len(blog.Posts); i++ {
		if blog.Posts[i-1].Date.Before(blog.Posts[i].Date) {
			t.Fatalf("posts not in non-increasing date order at %d", i)
		}
	}
}

func TestWalkRoundTripsPostMetadata(t *testing.T) {
	walker := newTestWalker(t, testSite())

	tree, err := walker.Walk(context.Background())
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	var hello *interfaces.Post
	for _, post := range tree.Section("blog").Posts {
		if post.Slug == "hello-world" {
			hello = post
		}
	}
	if hello == nil {
		t.Fatal("expected hello-world post")
	}

	if hello.Kind != interfaces.ItemKindPost {
		t.Fatalf("expected post kind, got %q", hello.Kind)
	}
	if hello.Date.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("date mismatch: %v", hello.Date)
	}
	if hello.Title != "Hello" {
		t.Fatalf("title mismatch: %q", hello.Title)
	}
	if len(hello.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %#v", hello.Tags)
	}
	if hello.Tags[0].Slug != "go" || hello.Tags[0].Path != "/tags/go" {
		t.Fatalf("tag not normalized: %#v", hello.Tags[0])
	}
	if hello.Links == nil || len(hello.Links.External) != 1 {
		t.Fatalf("expected external link on post, got %#v", hello.Links)
	}
}

func TestWalkNestsSubSections(t *testing.T) {
	walker := newTestWalker(t, testSite())

	tree, err := walker.Walk(context.Background())
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	projects := tree.Section("projects")
	if projects == nil {
		t.Fatal("expected projects section")
	}
	if len(projects.SubSections) != 1 {
		t.Fatalf("expected 1 subsection, got %d", len(projects.SubSections))
	}

	archive := projects.SubSections[0]
	if archive.Slug != "archive" || archive.Path != "/projects/archive" {
		t.Fatalf("subsection mismatch: %q %q", archive.Slug, archive.Path)
	}
	if len(archive.Pages) != 1 || archive.Pages[0].Slug != "beta" {
		t.Fatalf("subsection pages mismatch: %#v", archive.Pages)
	}

	// A section with no nested sections reports nil, not an empty slice.
	if archive.SubSections != nil {
		t.Fatalf("expected nil SubSections, got %#v", archive.SubSections)
	}
}

func TestWalkNestedPostKeepsFullPath(t *testing.T) {
	fsys := testSite()
	fsys["projects/archive/2020-01-01-relic.md"] = file("---\ntitle: Relic\n---\nRelic body.\n")
	walker := newTestWalker(t, fsys)

	tree, err := walker.Walk(context.Background())
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	archive := tree.Section("projects").SubSections[0]
	if len(archive.Posts) != 1 {
		t.Fatalf("expected 1 post in archive, got %d", len(archive.Posts))
	}

	relic := archive.Posts[0]
	if relic.Path != "/projects/archive/relic" {
		t.Fatalf("expected nested post path /projects/archive/relic, got %q", relic.Path)
	}
	if relic.Section != "archive" {
		t.Fatalf("expected section archive, got %q", relic.Section)
	}

	// Sibling page in the same directory shares the path prefix.
	if archive.Pages[0].Path != "/projects/archive/beta" {
		t.Fatalf("expected sibling page path /projects/archive/beta, got %q", archive.Pages[0].Path)
	}
}

func TestWalkFailsWithoutSectionIndex(t *testing.T) {
	fsys := testSite()
	delete(fsys, "projects/_index.md")
	walker := newTestWalker(t, fsys)

	_, err := walker.Walk(context.Background())
	if !errors.Is(err, ErrSectionIndexMissing) {
		t.Fatalf("expected ErrSectionIndexMissing, got %v", err)
	}
}

func TestWalkFailsOnInvalidDatePrefix(t *testing.T) {
	fsys := testSite()
	fsys["blog/2024-13-99-impossible.md"] = file("---\ntitle: Broken\n---\nBody.\n")
	walker := newTestWalker(t, fsys)

	_, err := walker.Walk(context.Background())
	if !errors.Is(err, ErrDatePrefixInvalid) {
		t.Fatalf("expected ErrDatePrefixInvalid, got %v", err)
	}
}

func TestWalkIsIdempotent(t *testing.T) {
	walker := newTestWalker(t, testSite())
	ctx := context.Background()

	first, err := walker.Walk(ctx)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	second, err := walker.Walk(ctx)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(first.Sections) != len(second.Sections) || len(first.Pages) != len(second.Pages) {
		t.Fatal("expected identical shape across walks")
	}
	blogA, blogB := first.Section("blog"), second.Section("blog")
	for i := range blogA.Posts {
		if blogA.Posts[i].Slug != blogB.Posts[i].Slug || !blogA.Posts[i].Date.Equal(blogB.Posts[i].Date) {
			t.Fatalf("post %d differs across walks", i)
		}
	}
}
