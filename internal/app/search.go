package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type searchResult struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	SizeMB     *float64 `json:"size_mb,omitempty"`
	PageCount  *int     `json:"page_count,omitempty"`
	Score      float64  `json:"score"`
	Bookmarked bool     `json:"bookmarked"`
}

func newSearchCmd() *cobra.Command {
	var (
		qf       queryFlags
		page     int
		pageSize int
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search, filter and rank books in the catalog",
		Long: `Search the cached catalog with fuzzy matching across title, author,
category, tags and description. Combine with category, bookmark and
numeric range filters, and sort the survivors.

Examples:
  librarian search gita
  librarian search "neural networks" --category Science --sort title
  librarian search --bookmarked --pages 100to200
  librarian search tagore --size 1to100 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search := ""
			if len(args) > 0 {
				search = args[0]
			}

			q, err := qf.buildQuery(search)
			if err != nil {
				return err
			}

			books, err := loadBooks()
			if err != nil {
				return err
			}
			bookmarks, err := storeMgr.LoadBookmarks()
			if err != nil {
				return err
			}

			results := catalog.Run(books, q, bookmarks.Predicate())

			if pageSize <= 0 {
				pageSize = cfg.Defaults.PageSize
			}
			pageResults, totalPages := catalog.Paginate(results, page, pageSize)

			if jsonOut {
				out := make([]searchResult, 0, len(pageResults))
				for _, r := range pageResults {
					out = append(out, searchResult{
						ID:         r.Book.ID,
						Title:      r.Book.Title,
						Author:     r.Book.Author,
						Category:   r.Book.Category,
						Tags:       r.Book.Tags,
						SizeMB:     r.Book.SizeMB,
						PageCount:  r.Book.PageCount,
						Score:      r.Score,
						Bookmarked: bookmarks.Contains(r.Book),
					})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(results) == 0 {
				fmt.Println("No books found.")
				return nil
			}

			for _, r := range pageResults {
				star := " "
				if bookmarks.Contains(r.Book) {
					star = color.GreenString("★")
				}
				yellow := func(s string) string { return color.YellowString("%s", s) }
				title := catalog.Highlight(r.Book.Title, q.Search, yellow)
				author := catalog.Highlight(r.Book.Author, q.Search, yellow)

				meta := ""
				if r.Book.SizeMB != nil {
					meta += fmt.Sprintf("  %g MB", *r.Book.SizeMB)
				}
				if r.Book.PageCount != nil {
					meta += fmt.Sprintf("  %d p", *r.Book.PageCount)
				}

				tagStr := ""
				if len(r.Book.Tags) > 0 {
					tagStr = " " + color.CyanString("["+strings.Join(r.Book.Tags, ",")+"]")
				}

				fmt.Printf("%s %-14s %s — %s %s%s%s\n",
					star,
					color.WhiteString(r.Book.ID),
					title,
					author,
					color.HiBlackString(r.Book.Category),
					tagStr,
					color.HiBlackString(meta),
				)
			}

			if totalPages > 1 {
				fmt.Printf("\nPage %d of %d — %d result(s)\n", clampPage(page, totalPages), totalPages, len(results))
			} else {
				fmt.Printf("\n%d result(s)\n", len(results))
			}
			return nil
		},
	}

	qf.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Result page (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Results per page (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
