package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with book counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadBooks()
			if err != nil {
				return err
			}

			counts := make(map[string]int, len(books))
			for _, b := range books {
				counts[b.Category]++
			}
			cats := catalog.Categories(books)

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(counts)
			}

			if len(cats) == 0 {
				fmt.Println("No categories found.")
				return nil
			}

			header("── Categories")
			for _, c := range cats {
				fmt.Printf("  %-24s %d\n", c, counts[c])
			}

			bookmarks, err := storeMgr.LoadBookmarks()
			if err != nil {
				return err
			}
			marked := 0
			for _, b := range books {
				if bookmarks.Contains(b) {
					marked++
				}
			}
			fmt.Printf("  %-24s %d\n", "Bookmarked", marked)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
