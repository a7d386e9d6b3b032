// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/praxis-listings/internal/bookmark"
	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/pagination"
	"github.com/pdiddy/praxis-listings/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Filter, sort and page a listing",
	Long: `List loads a listing source and prints one page of the items that match
the category, date window and search text, in the chosen sort order. The
result label ("12 articles found") always counts every match.

Use --save-query to store the query for later runs and --query-file to
reapply it; flags given explicitly override the saved values.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	src, err := loadSource(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	items := src.Items

	if only, _ := cmd.Flags().GetBool("bookmarked"); only {
		store, err := bookmark.NewStore(cfg.Bookmarks)
		if err != nil {
			return err
		}
		defer store.Close()
		if items, err = store.Filter(ctx, items); err != nil {
			return err
		}
	}

	q, qf, err := queryFromFlags(cmd, cfg)
	if err != nil {
		return err
	}
	e, err := newEngine(items, q)
	if err != nil {
		return err
	}

	paging := pagination.FromSettings(cfg.Pagination)
	params, err := pageFromFlags(cmd, qf).Resolve(paging)
	if err != nil {
		return err
	}

	view, err := e.View()
	if err != nil {
		return err
	}
	if err := render.Write(cmd.OutOrStdout(), format, render.NewPage(src.Kind, view, params)); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save-query"); path != "" {
		if err := listing.WriteQueryFile(path, e, params.Page, params.Limit); err != nil {
			return fmt.Errorf("saving query: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Query saved to %s\n", path)
	}
	return nil
}

// pageFromFlags takes page and limit from the flags, falling back to a
// saved query file. Zero values are filled from configuration later.
func pageFromFlags(cmd *cobra.Command, qf *listing.QueryFile) pagination.Params {
	var p pagination.Params
	if qf != nil {
		p.Page, p.Limit = qf.Page, qf.Limit
	}
	if cmd.Flags().Changed("page") {
		p.Page, _ = cmd.Flags().GetInt("page")
	}
	if cmd.Flags().Changed("limit") {
		p.Limit, _ = cmd.Flags().GetInt("limit")
	}
	return p
}

func outputFormat(cmd *cobra.Command) (render.Format, error) {
	out, _ := cmd.Flags().GetString("output")
	return render.ParseFormat(out)
}

func init() {
	addSourceFlags(listCmd)
	addQueryFlags(listCmd)
	listCmd.Flags().Int("page", 0, "page number, starting at 1 (default from config)")
	listCmd.Flags().Int("limit", 0, "items per page (default from config)")
	listCmd.Flags().StringP("output", "o", "table", "output format: table, json or yaml")
	listCmd.Flags().Bool("bookmarked", false, "only list bookmarked items")
	listCmd.Flags().String("save-query", "", "write the applied query to this YAML file")

	rootCmd.AddCommand(listCmd)
}
