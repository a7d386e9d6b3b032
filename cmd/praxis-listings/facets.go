// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/render"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Count a listing's items per category",
	Long: `Facets prints how many items of a listing fall into each category, in the
order categories first appear, preceded by the total. Filters do not apply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := loadSource(cmd.Context(), cmd, cfg)
		if err != nil {
			return err
		}

		counts := listing.Facets(src.Items)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return render.FacetsJSON(cmd.OutOrStdout(), counts)
		}
		render.FacetsTable(cmd.OutOrStdout(), counts)
		return nil
	},
}

func init() {
	addSourceFlags(facetsCmd)
	facetsCmd.Flags().Bool("json", false, "output counts as a JSON object")

	rootCmd.AddCommand(facetsCmd)
}
