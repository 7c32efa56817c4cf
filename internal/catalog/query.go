package catalog

import (
	"sort"
	"strings"
)

// Run evaluates one query against the current book collection and returns
// the surviving books in final display order. The engine is a pure
// function: no state is kept between calls, and the input slice is never
// mutated. An empty collection yields an empty result, not an error.
func Run(books []Book, q Query, isBookmarked IsBookmarkedFunc) []Result {
	results := make([]Result, 0, len(books))
	for _, b := range books {
		if score, ok := q.keep(b, isBookmarked); ok {
			results = append(results, Result{Book: b, Score: score})
		}
	}

	key := q.Sort
	if key == "" {
		key = SortRelevance
	}
	sort.SliceStable(results, func(i, j int) bool {
		return less(results[i], results[j], key)
	})
	return results
}

// Paginate slices results into one page. Pages are 1-based; a page past
// the end is clamped to the last page, matching the old app's behavior
// when a filter change shrinks the result set. Returns the page and the
// total page count.
func Paginate(results []Result, page, pageSize int) ([]Result, int) {
	if len(results) == 0 || pageSize <= 0 {
		return nil, 0
	}
	totalPages := (len(results) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end], totalPages
}

// Categories returns the distinct categories across the collection in
// collated order. The special "all"/"bookmarked" selectors are the
// caller's concern.
func Categories(books []Book) []string {
	seen := make(map[string]struct{}, len(books))
	var cats []string
	for _, b := range books {
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		cats = append(cats, b.Category)
	}
	sort.Slice(cats, func(i, j int) bool {
		return collator.CompareString(cats[i], cats[j]) < 0
	})
	return cats
}

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id string) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

// Find resolves a user-supplied key to a book: by ID first, then by
// case-insensitive exact title. Title lookup keeps old bookmark files and
// muscle memory working; IDs are the real identity.
func Find(books []Book, key string) *Book {
	if b := ByID(books, key); b != nil {
		return b
	}
	for i := range books {
		if strings.EqualFold(books[i].Title, key) {
			return &books[i]
		}
	}
	return nil
}
