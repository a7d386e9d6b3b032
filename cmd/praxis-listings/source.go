// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/loader"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

// addSourceFlags registers the flags that locate a listing source.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "listing source: data file, HTML page or feed (path or URL)")
	cmd.Flags().String("kind", "", "listing kind: news or partner (default: from the data file, else news)")
	cmd.Flags().String("format", "", "source format: data, markup or feed (default: from the extension)")
}

// addQueryFlags registers the filter and sort flags shared by list and browse.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "category to show, or all")
	cmd.Flags().String("window", "", "date window: all, last-7-days, last-30-days, last-90-days, last-365-days")
	cmd.Flags().String("search", "", "case-insensitive text to match in title, body, tags and author")
	cmd.Flags().String("sort", "", "sort key: date-desc, date-asc, popularity-desc, title-asc")
	cmd.Flags().String("query-file", "", "apply a saved query file before the flags above")
}

// sourceFromFlags builds a Source from --source, --kind and --format.
func sourceFromFlags(cmd *cobra.Command) (types.Source, error) {
	location, _ := cmd.Flags().GetString("source")
	if location == "" {
		return types.Source{}, fmt.Errorf("--source is required")
	}
	src := types.Source{Location: location}

	if k, _ := cmd.Flags().GetString("kind"); k != "" {
		kind, err := types.ParseKind(k)
		if err != nil {
			return src, err
		}
		src.Kind = kind
	}
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		switch format := types.SourceFormat(f); format {
		case types.FormatData, types.FormatMarkup, types.FormatFeed:
			src.Format = format
		default:
			return src, fmt.Errorf("unknown source format %q: use data, markup or feed", f)
		}
	}
	return src, nil
}

// loadSource reads the source named on the command line.
func loadSource(ctx context.Context, cmd *cobra.Command, cfg types.Config) (*loader.Listing, error) {
	src, err := sourceFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return loader.New(cfg.Loader).Load(ctx, src)
}

// queryFromFlags resolves the query to apply: configured defaults, then a
// saved query file, then any flag given explicitly.
func queryFromFlags(cmd *cobra.Command, cfg types.Config) (listing.QueryParams, *listing.QueryFile, error) {
	q := listing.QueryParams{
		Category: cfg.Listing.Category,
		Window:   cfg.Listing.Window,
		Sort:     cfg.Listing.Sort,
	}

	var qf *listing.QueryFile
	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		var err error
		if qf, err = listing.ReadQueryFile(path); err != nil {
			return q, nil, err
		}
		q = mergeQuery(q, qf.Query)
	}

	if cmd.Flags().Changed("category") {
		q.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("window") {
		q.Window, _ = cmd.Flags().GetString("window")
	}
	if cmd.Flags().Changed("search") {
		q.Search, _ = cmd.Flags().GetString("search")
	}
	if cmd.Flags().Changed("sort") {
		q.Sort, _ = cmd.Flags().GetString("sort")
	}
	return q, qf, nil
}

// mergeQuery overlays the non-empty fields of saved onto base.
func mergeQuery(base, saved listing.QueryParams) listing.QueryParams {
	if saved.Category != "" {
		base.Category = saved.Category
	}
	if saved.Window != "" {
		base.Window = saved.Window
	}
	if saved.Search != "" {
		base.Search = saved.Search
	}
	if saved.Sort != "" {
		base.Sort = saved.Sort
	}
	return base
}

// newEngine initializes an engine over items and applies q.
func newEngine(items []types.ContentItem, q listing.QueryParams) (*listing.Engine, error) {
	e := listing.New()
	if err := e.Initialize(items); err != nil {
		return nil, err
	}
	if err := q.Apply(e); err != nil {
		return nil, err
	}
	return e, nil
}
