// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/praxis-listings/internal/bookmark"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarked listing items",
	Long: `Bookmark keeps a flat list of item IDs in a SQLite database under the data
directory. Use list --bookmarked to show only bookmarked items.`,
}

// openBookmarks opens the store in --data-dir, or the configured directory.
func openBookmarks(cmd *cobra.Command) (*bookmark.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.Bookmarks.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	return bookmark.NewStore(cfg.Bookmarks)
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <id>...",
	Short: "Bookmark one or more items",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarks(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, id := range args {
			added, err := store.Add(cmd.Context(), id)
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already bookmarked\n", id)
			}
		}
		return nil
	},
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove bookmarks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarks(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, id := range args {
			removed, err := store.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s was not bookmarked\n", id)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
		}
		return nil
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print bookmarked IDs in the order they were added",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarks(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		ids, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var bookmarkClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every bookmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarks(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d bookmark(s)\n", n)
		return nil
	},
}

func init() {
	bookmarkCmd.PersistentFlags().String("data-dir", "", "directory holding bookmarks.db (default from config)")

	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkRemoveCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkClearCmd)

	rootCmd.AddCommand(bookmarkCmd)
}
