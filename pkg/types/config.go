// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings used when a source is a URL.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on 429/503 responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// LoaderConfig holds settings for turning raw records into ContentItems.
type LoaderConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// DefaultPopularity replaces a missing popularity score.
	DefaultPopularity int `json:"default_popularity" yaml:"default_popularity" mapstructure:"default_popularity"`
}

// ListingConfig holds the initial query applied by commands that do not
// override it on the command line.
type ListingConfig struct {
	// Category is "all" or a category label.
	Category string `json:"category" yaml:"category" mapstructure:"category"`

	// Window is a date window name (all, last-7-days, ...).
	Window string `json:"window" yaml:"window" mapstructure:"window"`

	// Sort is a sort key name (date-desc, date-asc, popularity-desc, title-asc).
	Sort string `json:"sort" yaml:"sort" mapstructure:"sort"`

	// Debounce is the quiet period applied to interactive search input.
	Debounce time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`
}

// PaginationConfig bounds page and limit values.
type PaginationConfig struct {
	DefaultPage  int `json:"default_page" yaml:"default_page" mapstructure:"default_page"`
	DefaultLimit int `json:"default_limit" yaml:"default_limit" mapstructure:"default_limit"`
	MaxLimit     int `json:"max_limit" yaml:"max_limit" mapstructure:"max_limit"`
}

// BookmarkConfig locates the bookmark database.
type BookmarkConfig struct {
	// DataDir contains bookmarks.db.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// ServeConfig holds settings for the HTTP listing endpoint.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Refresh is a cron spec for reloading sources; empty disables reloads.
	Refresh string `json:"refresh" yaml:"refresh" mapstructure:"refresh"`

	// Sources are loaded at startup and on every refresh.
	Sources []Source `json:"sources" yaml:"sources" mapstructure:"sources"`
}

// Config groups all stage configurations.
type Config struct {
	Loader     LoaderConfig     `json:"loader" yaml:"loader" mapstructure:"loader"`
	Listing    ListingConfig    `json:"listing" yaml:"listing" mapstructure:"listing"`
	Pagination PaginationConfig `json:"pagination" yaml:"pagination" mapstructure:"pagination"`
	Bookmarks  BookmarkConfig   `json:"bookmarks" yaml:"bookmarks" mapstructure:"bookmarks"`
	Serve      ServeConfig      `json:"serve" yaml:"serve" mapstructure:"serve"`
}

// DefaultConfig returns the configuration used when no file or flag
// overrides a value.
func DefaultConfig() Config {
	return Config{
		Loader: LoaderConfig{
			HTTPConfig: HTTPConfig{
				Timeout:    30 * time.Second,
				UserAgent:  "praxis-listings/0.1",
				MaxRetries: 3,
			},
			DefaultPopularity: DefaultPopularity,
		},
		Listing: ListingConfig{
			Category: "all",
			Window:   "all",
			Sort:     "date-desc",
			Debounce: 300 * time.Millisecond,
		},
		Pagination: PaginationConfig{
			DefaultPage:  1,
			DefaultLimit: 20,
			MaxLimit:     100,
		},
		Bookmarks: BookmarkConfig{
			DataDir: "data",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// Validate reports the first structural problem in the configuration.
// Enum values (window, sort) are validated by the listing package when
// they are parsed.
func (c Config) Validate() error {
	if c.Pagination.DefaultPage < 1 {
		return fmt.Errorf("pagination.default_page must be at least 1, got %d", c.Pagination.DefaultPage)
	}
	if c.Pagination.MaxLimit < 1 {
		return fmt.Errorf("pagination.max_limit must be at least 1, got %d", c.Pagination.MaxLimit)
	}
	if c.Pagination.DefaultLimit < 1 || c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return fmt.Errorf("pagination.default_limit must be between 1 and %d, got %d",
			c.Pagination.MaxLimit, c.Pagination.DefaultLimit)
	}
	if c.Loader.DefaultPopularity < 0 {
		return fmt.Errorf("loader.default_popularity cannot be negative, got %d", c.Loader.DefaultPopularity)
	}
	if c.Listing.Debounce < 0 {
		return fmt.Errorf("listing.debounce cannot be negative, got %s", c.Listing.Debounce)
	}
	for i, src := range c.Serve.Sources {
		if src.Location == "" {
			return fmt.Errorf("serve.sources[%d].location is required", i)
		}
		if _, err := ParseKind(string(src.Kind)); err != nil {
			return fmt.Errorf("serve.sources[%d]: %w", i, err)
		}
	}
	return nil
}
