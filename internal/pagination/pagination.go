// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagination slices a listing result view into pages for the CLI
// and HTTP surfaces. The engine always reports the full match count;
// pagination only decides which window of it is shown.
package pagination

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// Config bounds page and limit values.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns page 1, limit 20, max 100.
func DefaultConfig() Config {
	return FromSettings(types.DefaultConfig().Pagination)
}

// FromSettings converts the pagination section of the configuration file.
func FromSettings(s types.PaginationConfig) Config {
	return Config{
		DefaultPage:  s.DefaultPage,
		DefaultLimit: s.DefaultLimit,
		MaxLimit:     s.MaxLimit,
	}
}

// Params are the requested page (1-based) and page size.
type Params struct {
	Page  int
	Limit int
}

// ParseQueryParams reads page and limit from query values, falling back to
// the configured defaults when a value is absent.
func ParseQueryParams(q url.Values, cfg Config) (Params, error) {
	params := Params{Page: cfg.DefaultPage, Limit: cfg.DefaultLimit}

	if s := q.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 || limit > cfg.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", cfg.MaxLimit)
		}
		params.Limit = limit
	}
	return params, nil
}

// Validate reports a page below 1 or a limit outside [1, MaxLimit].
func (p Params) Validate(cfg Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.Limit < 1 || p.Limit > cfg.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", cfg.MaxLimit)
	}
	return nil
}

// WithDefaults fills zero values from cfg and caps the limit.
func (p Params) WithDefaults(cfg Config) Params {
	if p.Page <= 0 {
		p.Page = cfg.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = cfg.DefaultLimit
	}
	if p.Limit > cfg.MaxLimit {
		p.Limit = cfg.MaxLimit
	}
	return p
}

// Resolve fills unset (zero) values from cfg and validates the result.
// Unlike WithDefaults it rejects an oversized limit instead of capping it.
func (p Params) Resolve(cfg Config) (Params, error) {
	if p.Page == 0 {
		p.Page = cfg.DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = cfg.DefaultLimit
	}
	return p, p.Validate(cfg)
}

// CalculateOffset returns the index of the first item on page. An offset
// too large for int saturates at math.MaxInt.
func CalculateOffset(page, limit int) int {
	if limit > 0 && page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// CalculateTotalPages is ceil(total/limit), with an empty result still
// occupying one page.
func CalculateTotalPages(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// Metadata accompanies every page of results.
type Metadata struct {
	Total      int `json:"total" yaml:"total"`
	Page       int `json:"page" yaml:"page"`
	Limit      int `json:"limit" yaml:"limit"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// HasNext reports whether a later page exists.
func (m Metadata) HasNext() bool {
	return m.Page < m.TotalPages
}

// Response is a page of items with its metadata.
type Response[T any] struct {
	Data       []T      `json:"data" yaml:"data"`
	Pagination Metadata `json:"pagination" yaml:"pagination"`
}

// Paginate returns the items on the requested page. A page past the end
// yields an empty, non-nil slice. items is not modified.
func Paginate[T any](items []T, p Params) Response[T] {
	meta := Metadata{
		Total:      len(items),
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: CalculateTotalPages(len(items), p.Limit),
	}

	// Compare page numbers before multiplying so a huge page cannot wrap.
	if p.Page < 1 || p.Limit <= 0 || len(items) == 0 || p.Page-1 > (len(items)-1)/p.Limit {
		return Response[T]{Data: []T{}, Pagination: meta}
	}
	start := (p.Page - 1) * p.Limit
	end := start + min(p.Limit, len(items)-start)
	return Response[T]{Data: items[start:end:end], Pagination: meta}
}
