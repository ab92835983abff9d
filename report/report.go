// Package report renders a search result as the flat plain-text report the
// batch run writes out. Content order is fixed for compatibility: header
// line, the route joined by a separator, the total cost with a unit label,
// and the generated-node count labelled as excluding the start node. The
// exact strings are configurable; the order is not.
package report

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/citymaps/ucsearch/ucs"
)

// ErrNilResult is returned when a nil SearchResult is rendered.
var ErrNilResult = errors.New("report: search result is nil")

// Option configures report rendering via functional arguments.
type Option func(*Options)

// Options holds the strings the report is assembled from.
type Options struct {
	// Header is the first line of the report.
	Header string

	// Separator joins consecutive route stops, e.g. " -> ".
	Separator string

	// Unit labels the total cost, e.g. "km".
	Unit string

	// CountLabel introduces the generated-node count. It should make
	// clear the start node is excluded — the count is a search-effort
	// metric, not a route length.
	CountLabel string
}

// DefaultOptions returns the stock report strings.
func DefaultOptions() Options {
	return Options{
		Header:     "Best route (uniform-cost search):",
		Separator:  " -> ",
		Unit:       "km",
		CountLabel: "Nodes generated (start node excluded)",
	}
}

// WithHeader overrides the report's first line.
func WithHeader(h string) Option {
	return func(o *Options) { o.Header = h }
}

// WithSeparator overrides the route-stop separator.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithUnit overrides the cost unit label.
func WithUnit(u string) Option {
	return func(o *Options) { o.Unit = u }
}

// WithCountLabel overrides the generated-node count label.
func WithCountLabel(l string) Option {
	return func(o *Options) { o.CountLabel = l }
}

// Render assembles the four report lines for res.
func Render(res *ucs.SearchResult, opts ...Option) (string, error) {
	if res == nil {
		return "", ErrNilResult
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	b.WriteString(o.Header)
	b.WriteByte('\n')
	b.WriteString(strings.Join(res.Path, o.Separator))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total cost: %d %s\n", res.TotalCost, o.Unit)
	fmt.Fprintf(&b, "%s: %d\n", o.CountLabel, res.NodesGenerated)

	return b.String(), nil
}

// WriteFile renders res and writes the report to a single file at path,
// replacing any previous report.
func WriteFile(res *ucs.SearchResult, path string, opts ...Option) error {
	text, err := Render(res, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}

	return nil
}
