package app

import (
	"fmt"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/blackwell-systems/librarian/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "browse [query]",
		Short: "Browse query results interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search := ""
			if len(args) > 0 {
				search = args[0]
			}
			return runBrowser(qf, search)
		},
	}

	qf.register(cmd)
	return cmd
}

// runBrowser loops the list TUI: bookmark toggles return to the list,
// details and open leave it.
func runBrowser(qf queryFlags, search string) error {
	q, err := qf.buildQuery(search)
	if err != nil {
		return err
	}

	books, err := loadBooks()
	if err != nil {
		return err
	}
	if len(books) == 0 {
		warn("Catalog is empty — run 'librarian refresh' first")
		return nil
	}

	for {
		bookmarks, err := storeMgr.LoadBookmarks()
		if err != nil {
			return err
		}

		results := catalog.Run(books, q, bookmarks.Predicate())
		if len(results) == 0 {
			fmt.Println("No books match.")
			return nil
		}

		items := make([]tui.BookItem, len(results))
		for i, r := range results {
			items[i] = tui.BookItem{
				Book:       r.Book,
				Score:      r.Score,
				Bookmarked: bookmarks.Contains(r.Book),
			}
		}

		title := "Library"
		if q.Search != "" {
			title = fmt.Sprintf("Library — %q", q.Search)
		}

		res, err := tui.RunListBrowser(title, items)
		if err != nil {
			return err
		}

		switch res.Action {
		case tui.ActionShowDetails:
			return printBookInfo(res.BookItem.Book)
		case tui.ActionOpen:
			return openBook(res.BookItem.Book)
		case tui.ActionToggleBookmark:
			b := res.BookItem.Book
			if bookmarks.Contains(b) {
				bookmarks.Remove(b)
			} else {
				bookmarks.Add(b)
			}
			if err := storeMgr.SaveBookmarks(bookmarks); err != nil {
				return err
			}
			// Loop back into the browser with the updated stars.
		default:
			return nil
		}
	}
}
