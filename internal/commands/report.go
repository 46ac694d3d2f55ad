// Package commands implements the CLI-facing report operations. Handlers wrap
// service calls with shared concerns: validation, context management, logging,
// and error categorisation.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitegraph/content"
	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

const defaultHandlerTimeout = 30 * time.Second

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// StatsReportCommand requests the site-wide statistics report.
type StatsReportCommand struct {
	BlogSection string
	Format      string
}

// Validate checks the command payload. Section names are single path
// segments; nested paths are rejected before the walk starts.
func (c StatsReportCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BlogSection, validation.By(func(value any) error {
			name, _ := value.(string)
			if strings.ContainsAny(name, "/\\") {
				return fmt.Errorf("section name must not contain path separators")
			}
			return nil
		})),
		validation.Field(&c.Format, validation.In("", FormatText, FormatJSON)),
	)
}

// LinksReportCommand requests the site-wide link report.
type LinksReportCommand struct{}

// ReportHandler executes report commands against the content service and
// writes human-readable output.
type ReportHandler struct {
	service content.Service
	out     io.Writer
	logger  interfaces.Logger
	timeout time.Duration
}

// HandlerOption configures a ReportHandler instance.
type HandlerOption func(*ReportHandler)

// WithLogger injects the logger used during execution. Defaults to a no-op
// logger.
func WithLogger(logger interfaces.Logger) HandlerOption {
	return func(h *ReportHandler) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithTimeout overrides the default execution timeout. Zero or negative
// disables the timeout.
func WithTimeout(timeout time.Duration) HandlerOption {
	return func(h *ReportHandler) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// NewReportHandler creates a handler writing reports to out.
func NewReportHandler(service content.Service, out io.Writer, opts ...HandlerOption) *ReportHandler {
	if service == nil {
		panic("commands: report handler requires a content service")
	}
	h := &ReportHandler{
		service: service,
		out:     out,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ExecuteStats runs the statistics report.
func (h *ReportHandler) ExecuteStats(ctx context.Context, cmd StatsReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return wrapRequestError(err)
	}
	return h.run(ctx, "stats.report", func(ctx context.Context) error {
		stats, err := h.service.GetGlobalStats(ctx, cmd.BlogSection)
		if err != nil {
			return err
		}
		if cmd.Format == FormatJSON {
			return renderJSON(h.out, stats)
		}
		return renderStats(h.out, stats)
	})
}

// ExecuteLinks runs the link report.
func (h *ReportHandler) ExecuteLinks(ctx context.Context, _ LinksReportCommand) error {
	return h.run(ctx, "links.report", func(ctx context.Context) error {
		links, err := h.service.GetAllLinks(ctx)
		if err != nil {
			return err
		}
		return renderLinks(h.out, links)
	})
}

func (h *ReportHandler) run(ctx context.Context, operation string, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	logger := logging.WithFields(h.logger, map[string]any{"operation": operation})
	logger.Debug("command.execute.start")

	if err := fn(ctx); err != nil {
		logger.Error("command.execute.failed", "error", err)
		return wrapReportError(err)
	}

	logger.Info("command.execute.success")
	return nil
}

func renderJSON(out io.Writer, payload any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderStats(out io.Writer, stats *interfaces.Stats) error {
	if stats == nil {
		_, err := fmt.Fprintln(out, "no content found")
		return err
	}

	fmt.Fprintf(out, "posts: %d\n", stats.Posts)
	fmt.Fprintf(out, "words: %s\n", stats.Words)
	fmt.Fprintf(out, "tags:  %d\n", stats.Tags)

	years := make([]string, 0, len(stats.BlogByYear))
	for year := range stats.BlogByYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	for _, year := range years {
		fmt.Fprintf(out, "\n%s (%d posts)\n", year, len(stats.BlogByYear[year]))
		for _, post := range stats.BlogByYear[year] {
			fmt.Fprintf(out, "  %s  %s\n", post.Date.Format("2006-01-02"), post.Title)
		}
	}
	return nil
}

func renderLinks(out io.Writer, links *interfaces.SiteLinks) error {
	if links == nil {
		_, err := fmt.Fprintln(out, "no links found")
		return err
	}

	fmt.Fprintf(out, "internal links (%d)\n", len(links.Internal))
	for _, link := range links.Internal {
		fmt.Fprintf(out, "  %4d  %s\n", link.Count, link.Pathname)
	}

	fmt.Fprintf(out, "\nexternal domains (%d)\n", len(links.External))
	for _, domain := range links.External {
		fmt.Fprintf(out, "  %4d  %s\n", domain.Count, domain.Domain)
		for _, target := range domain.Links {
			fmt.Fprintf(out, "        %s\n", target.TargetURL)
			for _, source := range target.SourceURLs {
				fmt.Fprintf(out, "          from %s\n", source)
			}
		}
	}
	return nil
}
