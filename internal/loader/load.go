// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader reads listing sources (YAML or JSON data files, rendered
// page markup, RSS and Atom feeds) from disk or over HTTP and normalizes
// them into ContentItems ready for a listing engine.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/praxis-listings/internal/httputil"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

// DataFile is the on-disk layout of a listing data file.
type DataFile struct {
	Kind  string    `json:"kind" yaml:"kind"`
	Items []RawItem `json:"items" yaml:"items"`
}

// Listing is a normalized source ready to hand to an engine.
type Listing struct {
	Source types.Source
	Kind   types.Kind
	Items  []types.ContentItem
}

// Loader reads sources using a shared HTTP client.
type Loader struct {
	cfg    types.LoaderConfig
	client *http.Client
}

// New creates a Loader whose HTTP client times out per cfg.Timeout.
func New(cfg types.LoaderConfig) *Loader {
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// WithClient replaces the HTTP client, for tests against httptest servers.
func (l *Loader) WithClient(c *http.Client) *Loader {
	l.client = c
	return l
}

// Load reads src and normalizes its items. The format is taken from
// src.Format or inferred from the location's extension. For data files
// the kind declared in the file is used when src.Kind is empty.
func (l *Loader) Load(ctx context.Context, src types.Source) (*Listing, error) {
	if strings.TrimSpace(src.Location) == "" {
		return nil, fmt.Errorf("source has no location")
	}

	data, err := l.read(ctx, src.Location)
	if err != nil {
		return nil, err
	}

	format := src.Format
	if format == "" {
		format = InferFormat(src.Location)
	}

	kind := src.Kind
	var raws []RawItem
	switch format {
	case types.FormatData:
		var df DataFile
		if err := yaml.Unmarshal(data, &df); err != nil {
			return nil, fmt.Errorf("parsing data file %s: %w", src.Location, err)
		}
		if kind == "" && df.Kind != "" {
			if kind, err = types.ParseKind(df.Kind); err != nil {
				return nil, fmt.Errorf("data file %s: %w", src.Location, err)
			}
		}
		raws = df.Items
	case types.FormatMarkup:
		if kind == "" {
			kind = types.KindNews
		}
		if raws, err = ParseMarkup(bytes.NewReader(data), kind); err != nil {
			return nil, fmt.Errorf("%s: %w", src.Location, err)
		}
	case types.FormatFeed:
		if raws, err = ParseFeed(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%s: %w", src.Location, err)
		}
	default:
		return nil, fmt.Errorf("unknown source format %q", format)
	}
	if kind == "" {
		kind = types.KindNews
	}

	items, err := Normalize(raws, kind, l.cfg)
	if err != nil {
		return nil, fmt.Errorf("normalizing %s: %w", src.Location, err)
	}

	src.Kind, src.Format = kind, format
	return &Listing{Source: src, Kind: kind, Items: items}, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if isURL(location) {
		return httputil.Get(ctx, l.client, location, l.cfg.HTTPConfig)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return data, nil
}

// InferFormat guesses a source format from its extension. Anything
// unrecognized is treated as a data file.
func InferFormat(location string) types.SourceFormat {
	if isURL(location) {
		if i := strings.IndexAny(location, "?#"); i >= 0 {
			location = location[:i]
		}
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".html", ".htm":
		return types.FormatMarkup
	case ".xml", ".rss", ".atom":
		return types.FormatFeed
	default:
		return types.FormatData
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
