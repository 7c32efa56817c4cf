package tui

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/librarian/internal/catalog"
)

// BookItem represents one query result in the browser list.
type BookItem struct {
	Book       catalog.Book
	Score      float64
	Bookmarked bool
}

// FilterValue feeds the list's interactive "/" filter. The full query
// engine already ranked the collection; this only narrows the view.
func (b BookItem) FilterValue() string {
	tags := strings.Join(b.Book.Tags, " ")
	return fmt.Sprintf("%s %s %s %s", b.Book.Title, b.Book.Author, b.Book.Category, tags)
}

// metaSummary renders the gray size/pages suffix, e.g. "12 MB · 340 p".
func metaSummary(b catalog.Book) string {
	var parts []string
	if b.SizeMB != nil {
		parts = append(parts, fmt.Sprintf("%g MB", *b.SizeMB))
	}
	if b.PageCount != nil {
		parts = append(parts, fmt.Sprintf("%d p", *b.PageCount))
	}
	return strings.Join(parts, " · ")
}

// truncateText truncates a string to maxWidth visible chars with ellipsis.
func truncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return string(runes[:maxWidth-1]) + "…"
}
