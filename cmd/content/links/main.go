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
	if err := runLinks(os.Args[1:]); err != nil {
		log.Fatalf("content links: %v", err)
	}
}

func runLinks(args []string) error {
	fs := flag.NewFlagSet("content-links", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	extensions := fs.String("extensions", "", "Comma separated markdown extensions (defaults to gfm,linkify)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Extensions: bootstrap.SplitList(*extensions),
		Verbose:    *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := commands.NewReportHandler(module.Service, os.Stdout, commands.WithLogger(module.Logger))
	if err := handler.ExecuteLinks(context.Background(), commands.LinksReportCommand{}); err != nil {
		return fmt.Errorf("execute links command: %w", err)
	}

	return nil
}
