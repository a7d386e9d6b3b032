// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes listing pages and category facets as terminal
// tables, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/pagination"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

// Page is one page of a listing view, as returned by the HTTP endpoint and
// printed by the CLI.
type Page struct {
	Kind       types.Kind           `json:"kind" yaml:"kind"`
	Label      string               `json:"label" yaml:"label"`
	Data       []*types.ContentItem `json:"data" yaml:"data"`
	Pagination pagination.Metadata  `json:"pagination" yaml:"pagination"`
}

// NewPage slices view by params and attaches the result label. The label
// always reflects the full match count, not the page size.
func NewPage(kind types.Kind, view listing.ResultView, params pagination.Params) Page {
	resp := pagination.Paginate(view.Items, params)
	return Page{
		Kind:       kind,
		Label:      listing.ResultLabel(view.Count, kind),
		Data:       resp.Data,
		Pagination: resp.Pagination,
	}
}

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: use table, json or yaml", s)
	}
}

// Write renders p in the given format.
func Write(w io.Writer, f Format, p Page) error {
	switch f {
	case FormatJSON:
		return JSON(w, p)
	case FormatYAML:
		return YAML(w, p)
	default:
		Table(w, p)
		return nil
	}
}

const (
	titleWidth    = 50
	categoryWidth = 20
)

// Table writes p as aligned columns followed by the result label. Widths
// are measured in terminal cells so wide characters stay aligned.
func Table(w io.Writer, p Page) {
	if len(p.Data) == 0 {
		fmt.Fprintln(w, p.Label)
		return
	}

	fmt.Fprintf(w, "%-4s  %s  %s  %-10s  %s\n",
		"Rank", cell("Title", titleWidth), cell("Category", categoryWidth), "Date", "Pop")
	fmt.Fprintln(w, strings.Repeat("-", 4+2+titleWidth+2+categoryWidth+2+10+2+3))

	offset := pagination.CalculateOffset(p.Pagination.Page, p.Pagination.Limit)
	for i, item := range p.Data {
		fmt.Fprintf(w, "%-4d  %s  %s  %-10s  %d\n",
			offset+i+1,
			cell(item.Title, titleWidth),
			cell(item.Category, categoryWidth),
			item.PublishedAt.Format("2006-01-02"),
			item.Popularity)
	}

	fmt.Fprintf(w, "\n%s", p.Label)
	if p.Pagination.TotalPages > 1 {
		fmt.Fprintf(w, " (page %d of %d)", p.Pagination.Page, p.Pagination.TotalPages)
	}
	fmt.Fprintln(w)
}

// cell truncates s to width cells and pads it on the right.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}

// JSON writes p as indented JSON.
func JSON(w io.Writer, p Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// YAML writes p as a YAML document.
func YAML(w io.Writer, p Page) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(p)
}

// FacetsTable writes category counts with the "all" total first.
func FacetsTable(w io.Writer, counts []listing.CategoryCount) {
	fmt.Fprintf(w, "%s  %s\n", cell("Category", categoryWidth+4), "Count")
	fmt.Fprintf(w, "%s  %s\n", cell(listing.CategoryAll, categoryWidth+4), listing.FormatNumber(total(counts)))
	for _, c := range counts {
		fmt.Fprintf(w, "%s  %s\n", cell(c.Category, categoryWidth+4), listing.FormatNumber(c.Count))
	}
}

// FacetsMap returns the counts as an ordered object keyed by category,
// starting with the "all" total.
func FacetsMap(counts []listing.CategoryCount) *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	m.Set(listing.CategoryAll, total(counts))
	for _, c := range counts {
		m.Set(c.Category, c.Count)
	}
	return m
}

// FacetsJSON writes FacetsMap as indented JSON, preserving category order.
func FacetsJSON(w io.Writer, counts []listing.CategoryCount) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(FacetsMap(counts))
}

func total(counts []listing.CategoryCount) int {
	n := 0
	for _, c := range counts {
		n += c.Count
	}
	return n
}
