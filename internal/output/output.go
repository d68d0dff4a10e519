// Package output renders command results as aligned tables or JSON.
// Data goes to stdout; notices and errors go to stderr so piped output
// stays clean.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// Printer управляет форматированием вывода CLI.
type Printer struct {
	jsonMode bool
	w        io.Writer
	errW     io.Writer
}

// New creates a Printer. With jsonMode set, Print emits JSON instead of
// a table.
func New(jsonMode bool) *Printer {
	return &Printer{
		jsonMode: jsonMode,
		w:        os.Stdout,
		errW:     os.Stderr,
	}
}

// NewWithWriters is used by tests to capture output.
func NewWithWriters(jsonMode bool, w, errW io.Writer) *Printer {
	return &Printer{jsonMode: jsonMode, w: w, errW: errW}
}

// JSONMode reports whether the printer emits JSON.
func (p *Printer) JSONMode() bool {
	return p.jsonMode
}

// Print emits either the table rows or the raw JSON payload.
func (p *Printer) Print(headers []string, rows [][]string, jsonData any) {
	if p.jsonMode {
		p.JSON(jsonData)
		return
	}
	p.Table(headers, rows)
}

// Table renders headers, a dashed rule and the rows through tabwriter.
func (p *Printer) Table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
}

// JSON emits indented JSON.
func (p *Printer) JSON(v any) {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// Notice prints a message to stderr.
func (p *Printer) Notice(format string, args ...any) {
	fmt.Fprintf(p.errW, format, args...)
}

// FormatTime renders a timestamp for table cells; nil means never.
func FormatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// FormatEnabled renders the enabled flag for table cells.
func FormatEnabled(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
