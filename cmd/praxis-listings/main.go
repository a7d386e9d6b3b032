// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the praxis-listings CLI, which loads
// news and partner listings and filters, sorts, pages, bookmarks and
// serves them.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the praxis-listings CLI.
var rootCmd = &cobra.Command{
	Use:   "praxis-listings",
	Short: "Filter, sort and serve news and partner listings",
	Long: `praxis-listings loads a listing of news articles or partner organizations
from a data file, rendered page or feed and answers queries over it: filter by
category, date window and free-text search, sort, and page through the result.

Use list and facets for one-off queries, browse for incremental search from
standard input, bookmark to keep a list of favourite items, and serve to expose
the listings over HTTP.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: praxis-listings.yaml in . or ~/.config/praxis-listings)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("praxis-listings")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "praxis-listings"))
		}
	}

	setDefaults(types.DefaultConfig())
	viper.SetEnvPrefix("PRAXIS_LISTINGS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every scalar key so environment variables such as
// PRAXIS_LISTINGS_PAGINATION_MAX_LIMIT are seen by Unmarshal.
func setDefaults(d types.Config) {
	viper.SetDefault("loader.timeout", d.Loader.Timeout)
	viper.SetDefault("loader.user_agent", d.Loader.UserAgent)
	viper.SetDefault("loader.max_retries", d.Loader.MaxRetries)
	viper.SetDefault("loader.default_popularity", d.Loader.DefaultPopularity)
	viper.SetDefault("listing.category", d.Listing.Category)
	viper.SetDefault("listing.window", d.Listing.Window)
	viper.SetDefault("listing.sort", d.Listing.Sort)
	viper.SetDefault("listing.debounce", d.Listing.Debounce)
	viper.SetDefault("pagination.default_page", d.Pagination.DefaultPage)
	viper.SetDefault("pagination.default_limit", d.Pagination.DefaultLimit)
	viper.SetDefault("pagination.max_limit", d.Pagination.MaxLimit)
	viper.SetDefault("bookmarks.data_dir", d.Bookmarks.DataDir)
	viper.SetDefault("serve.addr", d.Serve.Addr)
	viper.SetDefault("serve.refresh", d.Serve.Refresh)
}

// loadConfig returns the effective configuration: defaults, then the
// config file, then PRAXIS_LISTINGS_* environment variables.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
