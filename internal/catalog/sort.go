package catalog

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator provides locale-aware, case-insensitive string ordering for
// titles, authors and categories. Und keeps the tool locale-neutral.
var collator = collate.New(language.Und, collate.IgnoreCase)

// less is the total order over results for a given sort key. Title
// ascending breaks every tie so output is deterministic.
func less(a, b Result, key SortKey) bool {
	switch key {
	case SortTitle:
		return byTitle(a, b)
	case SortAuthor:
		if c := collator.CompareString(a.Book.Author, b.Book.Author); c != 0 {
			return c < 0
		}
		return byTitle(a, b)
	case SortCategory:
		if c := collator.CompareString(a.Book.Category, b.Book.Category); c != 0 {
			return c < 0
		}
		return byTitle(a, b)
	case SortSizeAsc:
		return numericLess(sizeOf(a), sizeOf(b), false) || (numericEqual(sizeOf(a), sizeOf(b)) && byTitle(a, b))
	case SortSizeDesc:
		return numericLess(sizeOf(a), sizeOf(b), true) || (numericEqual(sizeOf(a), sizeOf(b)) && byTitle(a, b))
	case SortPagesAsc:
		return numericLess(pagesOf(a), pagesOf(b), false) || (numericEqual(pagesOf(a), pagesOf(b)) && byTitle(a, b))
	case SortPagesDesc:
		return numericLess(pagesOf(a), pagesOf(b), true) || (numericEqual(pagesOf(a), pagesOf(b)) && byTitle(a, b))
	default: // SortRelevance
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return byTitle(a, b)
	}
}

func byTitle(a, b Result) bool {
	return collator.CompareString(a.Book.Title, b.Book.Title) < 0
}

func sizeOf(r Result) *float64 { return r.Book.SizeMB }

func pagesOf(r Result) *float64 {
	if r.Book.PageCount == nil {
		return nil
	}
	p := float64(*r.Book.PageCount)
	return &p
}

// numericLess orders optional numerics. Nil sorts last regardless of
// direction — a missing size or page count is always "worst".
func numericLess(a, b *float64, desc bool) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return false
	case b == nil:
		return true
	case desc:
		return *a > *b
	default:
		return *a < *b
	}
}

func numericEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
