package markdown

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"
)

func TestLoaderLoadFile(t *testing.T) {
	modified := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"blog/2024-03-01-hello.md": &fstest.MapFile{
			Data:    readFixture(t, "testdata/basic.md"),
			ModTime: modified,
		},
	}

	loader := NewLoader(fsys, nil)
	doc, err := loader.LoadFile(context.Background(), "blog/2024-03-01-hello.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.FilePath != "blog/2024-03-01-hello.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if doc.FrontMatter.Title != "Sample Document" {
		t.Fatalf("expected front matter title, got %q", doc.FrontMatter.Title)
	}
	if !doc.LastModified.Equal(modified) {
		t.Fatalf("expected LastModified %v, got %v", modified, doc.LastModified)
	}
	if len(doc.Body) == 0 {
		t.Fatal("expected Body to contain markdown content")
	}
}

func TestLoaderLoadFileMissing(t *testing.T) {
	loader := NewLoader(fstest.MapFS{}, nil)

	_, err := loader.LoadFile(context.Background(), "blog/absent.md")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestLoaderLoadFileMalformedFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.md": &fstest.MapFile{Data: []byte("---\n\ttitle: broken\n---\nbody\n")},
	}
	loader := NewLoader(fsys, nil)

	_, err := loader.LoadFile(context.Background(), "bad.md")
	if !errors.Is(err, ErrFrontMatterInvalid) {
		t.Fatalf("expected ErrFrontMatterInvalid, got %v", err)
	}
}

func TestLoaderLoadFileCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(fstest.MapFS{}, nil)
	if _, err := loader.LoadFile(ctx, "any.md"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
