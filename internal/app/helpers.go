package app

import (
	"fmt"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/spf13/cobra"
)

// loadBooks returns the current catalog. The snapshot is preferred; when
// none exists yet a one-shot fetch is attempted, and a fetch failure
// degrades to an empty catalog with a warning rather than an error.
func loadBooks() ([]catalog.Book, error) {
	if storeMgr.HasCatalog() {
		return storeMgr.LoadCatalog()
	}

	rows, err := feedCli.Fetch()
	if err != nil {
		warn("No local snapshot and feed fetch failed: %v", err)
		return []catalog.Book{}, nil
	}
	books, dropped := catalog.FromRecords(rows)
	if dropped > 0 {
		warn("Dropped %d malformed feed row(s)", dropped)
	}
	if err := storeMgr.SaveCatalog(books); err != nil {
		return nil, err
	}
	return books, nil
}

// findBook resolves an ID or title argument against the catalog.
func findBook(key string) (*catalog.Book, error) {
	books, err := loadBooks()
	if err != nil {
		return nil, err
	}
	b := catalog.Find(books, key)
	if b == nil {
		return nil, fmt.Errorf("book %q not found — try 'librarian search'", key)
	}
	return b, nil
}

// queryFlags is the shared query surface of search and browse.
type queryFlags struct {
	category   string
	bookmarked bool
	sizeRange  string
	pagesRange string
	sortKey    string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "Filter by category (or 'bookmarked')")
	cmd.Flags().BoolVar(&f.bookmarked, "bookmarked", false, "Only bookmarked books")
	cmd.Flags().StringVar(&f.sizeRange, "size", "", "Size bucket: under1, 1to100, 100to200, over200")
	cmd.Flags().StringVar(&f.pagesRange, "pages", "", "Page bucket: under100, 100to200, 200to500, over500")
	cmd.Flags().StringVar(&f.sortKey, "sort", "", "Sort key: relevance, title, author, category, sizeAsc, sizeDesc, pagesAsc, pagesDesc")
}

// buildQuery validates the flags into a Query value. A fresh Query is
// built per invocation; nothing here is shared state.
func (f queryFlags) buildQuery(search string) (catalog.Query, error) {
	q := catalog.Query{
		Search:   search,
		Category: catalog.CategoryAll,
	}

	if f.category != "" {
		q.Category = f.category
	}
	if f.bookmarked {
		q.Category = catalog.CategoryBookmarked
	}

	size, okTag := catalog.ParseRangeTag(f.sizeRange, catalog.SizeRanges)
	if !okTag {
		return q, fmt.Errorf("unknown size bucket %q (valid: %v)", f.sizeRange, catalog.SizeRanges)
	}
	q.Size = size

	pages, okTag := catalog.ParseRangeTag(f.pagesRange, catalog.PageRanges)
	if !okTag {
		return q, fmt.Errorf("unknown pages bucket %q (valid: %v)", f.pagesRange, catalog.PageRanges)
	}
	q.Pages = pages

	sortStr := f.sortKey
	if sortStr == "" {
		sortStr = cfg.Defaults.Sort
	}
	key, okKey := catalog.ParseSortKey(sortStr)
	if !okKey {
		return q, fmt.Errorf("unknown sort key %q (valid: %v)", sortStr, catalog.SortKeys)
	}
	q.Sort = key

	return q, nil
}
