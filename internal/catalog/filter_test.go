package catalog_test

import (
	"testing"

	"github.com/blackwell-systems/librarian/internal/catalog"
)

func testBooks() []catalog.Book {
	return []catalog.Book{
		{ID: "b1", Title: "Gitanjali", Author: "Tagore", Category: "Poetry", SizeMB: fp(1), PageCount: ip(80)},
		{ID: "b2", Title: "Gita", Author: "Vyasa", Category: "Religion", SizeMB: fp(150), PageCount: ip(700)},
		{ID: "b3", Title: "Boundary", Author: "Case", Category: "Poetry", SizeMB: fp(100), PageCount: ip(100)},
		{ID: "b4", Title: "Unsized", Author: "Nobody", Category: "Other"}, // nil numerics
	}
}

func titles(results []catalog.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Book.Title
	}
	return out
}

func has(results []catalog.Result, title string) bool {
	for _, r := range results {
		if r.Book.Title == title {
			return true
		}
	}
	return false
}

func TestParseRangeTag(t *testing.T) {
	if tag, ok := catalog.ParseRangeTag("", catalog.SizeRanges); !ok || tag != catalog.RangeAny {
		t.Errorf("empty input = (%q, %v), want (any, true)", tag, ok)
	}
	if _, ok := catalog.ParseRangeTag("1to100", catalog.SizeRanges); !ok {
		t.Error("1to100 should be a valid size bucket")
	}
	if _, ok := catalog.ParseRangeTag("bogus", catalog.SizeRanges); ok {
		t.Error("bogus bucket should be rejected")
	}
}

func TestRun_CategoryFilter(t *testing.T) {
	q := catalog.Query{Category: "poetry"} // case-insensitive equality
	results := catalog.Run(testBooks(), q, nil)
	if len(results) != 2 || !has(results, "Gitanjali") || !has(results, "Boundary") {
		t.Errorf("poetry filter returned %v", titles(results))
	}
}

func TestRun_BookmarkedFilter(t *testing.T) {
	marked := func(b catalog.Book) bool { return b.ID == "b2" }
	results := catalog.Run(testBooks(), catalog.Query{Category: catalog.CategoryBookmarked}, marked)
	if len(results) != 1 || results[0].Book.ID != "b2" {
		t.Errorf("bookmarked filter returned %v", titles(results))
	}

	// Without a membership predicate nothing can qualify.
	results = catalog.Run(testBooks(), catalog.Query{Category: catalog.CategoryBookmarked}, nil)
	if len(results) != 0 {
		t.Errorf("bookmarked with nil predicate returned %v", titles(results))
	}
}

func TestRun_SizeBucketBoundaryInclusive(t *testing.T) {
	// A 100 MB book belongs to both adjacent buckets — the shared
	// boundary is deliberate.
	lower := catalog.Run(testBooks(), catalog.Query{Size: "1to100"}, nil)
	upper := catalog.Run(testBooks(), catalog.Query{Size: "100to200"}, nil)

	if !has(lower, "Boundary") {
		t.Errorf("100 MB missing from 1to100: %v", titles(lower))
	}
	if !has(upper, "Boundary") {
		t.Errorf("100 MB missing from 100to200: %v", titles(upper))
	}
}

func TestRun_SizeBucketExcludes(t *testing.T) {
	results := catalog.Run(testBooks(), catalog.Query{Size: "1to100"}, nil)
	if !has(results, "Gitanjali") {
		t.Error("1 MB book must survive 1to100")
	}
	if has(results, "Gita") {
		t.Error("150 MB book must be excluded from 1to100")
	}
}

func TestRun_NilNumericExcludedByActiveFilter(t *testing.T) {
	for _, q := range []catalog.Query{
		{Size: "under1"},
		{Size: "over200"},
		{Pages: "under100"},
		{Pages: "over500"},
	} {
		results := catalog.Run(testBooks(), q, nil)
		if has(results, "Unsized") {
			t.Errorf("book with nil numerics leaked through filter %+v", q)
		}
	}
}

func TestRun_NilNumericKeptByAnyFilter(t *testing.T) {
	results := catalog.Run(testBooks(), catalog.Query{}, nil)
	if !has(results, "Unsized") {
		t.Error("default (any) filters must keep books with nil numerics")
	}
}

func TestRun_PagesBucket(t *testing.T) {
	results := catalog.Run(testBooks(), catalog.Query{Pages: "100to200"}, nil)
	if len(results) != 1 || results[0].Book.Title != "Boundary" {
		t.Errorf("pages 100to200 returned %v", titles(results))
	}
}

func TestRun_FiltersComposeWithSearch(t *testing.T) {
	q := catalog.Query{Search: "gita", Category: "religion"}
	results := catalog.Run(testBooks(), q, nil)
	if len(results) != 1 || results[0].Book.Title != "Gita" {
		t.Errorf("search+category returned %v", titles(results))
	}
}

func TestRun_NonMatchingSearchRejects(t *testing.T) {
	results := catalog.Run(testBooks(), catalog.Query{Search: "zzqqzzqq"}, nil)
	if len(results) != 0 {
		t.Errorf("nonsense query returned %v", titles(results))
	}
}
