package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id|title>",
		Short: "Show full details for one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(args[0])
			if err != nil {
				return err
			}
			return printBookInfo(*b)
		},
	}
}

func printBookInfo(b catalog.Book) error {
	header("── %s", b.Title)
	fmt.Printf("  %-12s %s\n", "ID:", b.ID)
	fmt.Printf("  %-12s %s\n", "Author:", b.Author)
	fmt.Printf("  %-12s %s\n", "Category:", b.Category)
	if len(b.Tags) > 0 {
		fmt.Printf("  %-12s %s\n", "Tags:", color.CyanString(strings.Join(b.Tags, ", ")))
	}
	if b.SizeMB != nil {
		fmt.Printf("  %-12s %g MB\n", "Size:", *b.SizeMB)
	}
	if b.PageCount != nil {
		fmt.Printf("  %-12s %d\n", "Pages:", *b.PageCount)
	}
	if b.Description != "" {
		fmt.Printf("  %-12s %s\n", "Summary:", b.Description)
	}
	if b.Details != "" {
		fmt.Printf("  %-12s %s\n", "Details:", b.Details)
	}
	if b.DocumentURL != "" {
		fmt.Printf("  %-12s %s\n", "Document:", b.DocumentURL)
	}

	stats, err := storeMgr.LoadReadStats()
	if err != nil {
		return err
	}
	if stat, found := stats[b.ID]; found && stat.Count > 0 {
		last := "never"
		if stat.LastRead != nil {
			last = stat.LastRead.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s opened %d time(s), last %s\n", "Read:", stat.Count, last)
	}

	bookmarks, err := storeMgr.LoadBookmarks()
	if err != nil {
		return err
	}
	if bookmarks.Contains(b) {
		fmt.Println(" ", color.GreenString("★ bookmarked"))
	}
	return nil
}
