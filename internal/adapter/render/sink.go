// Package render implements ports.Sink by writing a markdown digest.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"linear-updates/internal/domain"
)

// emptyBody is printed for updates whose body is empty or whitespace.
const emptyBody = "No update text available"

// Options control the digest's presentation.
type Options struct {
	IncludeUpdated bool // append the effective timestamp to each header
	BoldHeaders    bool // **name** headers instead of ## name
	Pretty         bool // render for the terminal via glamour
}

// Writer implements ports.Sink by writing one block per update to out.
type Writer struct {
	out  io.Writer
	opts Options
	log  *slog.Logger
}

func NewWriter(out io.Writer, opts Options, log *slog.Logger) *Writer {
	return &Writer{out: out, opts: opts, log: log}
}

// WriteDigest writes one header+body block per update, each terminated by a
// blank line. An empty list writes nothing at all.
func (w *Writer) WriteDigest(ctx context.Context, updates []domain.Update) error {
	if len(updates) == 0 {
		return nil
	}

	var b strings.Builder
	for _, u := range updates {
		b.WriteString(w.header(u))
		b.WriteByte('\n')
		body := strings.TrimSpace(u.Body)
		if body == "" {
			body = emptyBody
		}
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	text := b.String()
	if w.opts.Pretty {
		text = w.prettify(text)
	}
	_, err := io.WriteString(w.out, text)
	return err
}

func (w *Writer) header(u domain.Update) string {
	name := u.Project.Name
	if name == "" {
		name = "Unknown"
	}
	if w.opts.IncludeUpdated {
		name = fmt.Sprintf("%s (%s)", name, formatTimestamp(u.EffectiveTimestamp()))
	}
	if w.opts.BoldHeaders {
		return "**" + name + "**"
	}
	return "## " + name
}

// prettify renders the markdown for the terminal, falling back to the plain
// text on any renderer failure.
func (w *Writer) prettify(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		w.log.Warn("terminal renderer unavailable", slog.String("error", err.Error()))
		return text
	}
	rendered, err := r.Render(text)
	if err != nil {
		w.log.Warn("terminal rendering failed", slog.String("error", err.Error()))
		return text
	}
	return rendered
}

// formatTimestamp reformats an ISO-8601 timestamp as "YYYY-MM-DD HH:MM:SS",
// returning the input unchanged when it does not parse.
func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}
