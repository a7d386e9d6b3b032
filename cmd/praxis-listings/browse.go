// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/praxis-listings/internal/debounce"
	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/pagination"
	"github.com/pdiddy/praxis-listings/internal/render"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search a listing interactively from standard input",
	Long: `Browse loads a listing once, prints the page for the initial query and then
reads search text from standard input, one line per revision of the search
box. Input is debounced: the listing is recomputed and printed only after no
new line has arrived for the debounce period, using the most recent line. An
empty line clears the search.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := loadSource(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	q, _, err := queryFromFlags(cmd, cfg)
	if err != nil {
		return err
	}
	e, err := newEngine(src.Items, q)
	if err != nil {
		return err
	}

	delay := cfg.Listing.Debounce
	if cmd.Flags().Changed("debounce") {
		delay, _ = cmd.Flags().GetDuration("debounce")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	params := pagination.Params{Page: 1, Limit: limit}.WithDefaults(pagination.FromSettings(cfg.Pagination))

	return browse(cmd.InOrStdin(), cmd.OutOrStdout(), e, src.Kind, params, delay)
}

// browse prints the page for the engine's current query, then feeds lines
// from in to a debounced search and prints each recomputed page to out.
// Pending input is flushed at end of input.
func browse(in io.Reader, out io.Writer, e *listing.Engine, kind types.Kind, params pagination.Params, delay time.Duration) error {
	show := func(term string) error {
		view, err := e.View()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "search: %q\n", term)
		render.Table(out, render.NewPage(kind, view, params))
		fmt.Fprintln(out)
		return nil
	}

	state, _, err := e.State()
	if err != nil {
		return err
	}
	if err := show(state.Search); err != nil {
		return err
	}

	var searchErr error
	d := debounce.New(delay, func(term string) {
		if err := e.SetSearchTerm(term); err != nil {
			searchErr = err
			return
		}
		searchErr = show(term)
	})

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		d.Trigger(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		d.Stop()
		return fmt.Errorf("reading search input: %w", err)
	}
	d.Flush()
	d.Stop()
	return searchErr
}

func init() {
	addSourceFlags(browseCmd)
	addQueryFlags(browseCmd)
	browseCmd.Flags().Duration("debounce", debounce.DefaultDelay, "quiet period before a search is applied")
	browseCmd.Flags().Int("limit", 0, "items shown per search (default from config)")

	rootCmd.AddCommand(browseCmd)
}
