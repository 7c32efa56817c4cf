package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage your bookmark set",
	}

	cmd.AddCommand(
		newBookmarkAddCmd(),
		newBookmarkRmCmd(),
		newBookmarkListCmd(),
	)

	// `librarian bookmark` with no subcommand defaults to list.
	cmd.RunE = newBookmarkListCmd().RunE

	return cmd
}

func newBookmarkAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <id|title>",
		Short: "Bookmark a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(args[0])
			if err != nil {
				return err
			}
			bookmarks, err := storeMgr.LoadBookmarks()
			if err != nil {
				return err
			}
			if !bookmarks.Add(*b) {
				warn("%q is already bookmarked", b.Title)
				return nil
			}
			if err := storeMgr.SaveBookmarks(bookmarks); err != nil {
				return err
			}
			ok("Bookmarked %q", b.Title)
			return nil
		},
	}
}

func newBookmarkRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id|title>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(args[0])
			if err != nil {
				return err
			}
			bookmarks, err := storeMgr.LoadBookmarks()
			if err != nil {
				return err
			}
			if !bookmarks.Remove(*b) {
				warn("%q was not bookmarked", b.Title)
				return nil
			}
			if err := storeMgr.SaveBookmarks(bookmarks); err != nil {
				return err
			}
			ok("Removed bookmark for %q", b.Title)
			return nil
		},
	}
}

func newBookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookmarked books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadBooks()
			if err != nil {
				return err
			}
			bookmarks, err := storeMgr.LoadBookmarks()
			if err != nil {
				return err
			}

			n := 0
			for _, b := range books {
				if !bookmarks.Contains(b) {
					continue
				}
				fmt.Printf("  %s %-14s %s — %s\n",
					color.GreenString("★"), color.WhiteString(b.ID), b.Title, b.Author)
				n++
			}
			if n == 0 {
				fmt.Println("No bookmarks yet.")
			}
			return nil
		},
	}
}
