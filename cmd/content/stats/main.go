package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-sitegraph/cmd/content/internal/bootstrap"
	"github.com/goliatone/go-sitegraph/internal/commands"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runStats(os.Args[1:]); err != nil {
		log.Fatalf("content stats: %v", err)
	}
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("content-stats", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	blogSection := fs.String("blog-section", "blog", "Section whose entries are dated posts")
	locale := fs.String("locale", "en", "Locale used for collation and number formatting")
	format := fs.String("format", commands.FormatText, "Output format: text or json")
	extensions := fs.String("extensions", "", "Comma separated markdown extensions (defaults to gfm,linkify)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:  *contentDir,
		BlogSection: *blogSection,
		Locale:      *locale,
		Extensions:  bootstrap.SplitList(*extensions),
		Verbose:     *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := commands.NewReportHandler(module.Service, os.Stdout, commands.WithLogger(module.Logger))
	cmd := commands.StatsReportCommand{BlogSection: *blogSection, Format: *format}
	if err := handler.ExecuteStats(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute stats command: %w", err)
	}

	return nil
}
