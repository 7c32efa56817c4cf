package catalog

import (
	"strconv"
	"strings"

	"github.com/blackwell-systems/librarian/internal/util"
)

// Record is one raw feed row: flat string keys and values. Keys are
// lowercased by the feed client before they reach us.
type Record map[string]string

// PlaceholderCover is used when a record carries no cover reference.
const PlaceholderCover = "img/book.jpg"

// FromRecord converts a raw feed row into a canonical Book.
// Returns ok=false when the row is unusable (missing title or author after
// trimming); such rows are dropped, not reported as errors.
//
// The document URL is read from "pdfurl" and then "pdf" — nothing else.
// Generic fields like "url" or "link" often point at covers or landing
// pages, so they are never consulted.
func FromRecord(r Record) (Book, bool) {
	title := strings.TrimSpace(r["title"])
	author := strings.TrimSpace(r["author"])
	if title == "" || author == "" {
		return Book{}, false
	}

	category := strings.TrimSpace(r["category"])
	if category == "" {
		category = "Other"
	}
	category = titleCase(category)

	b := Book{
		ID:          util.BookID(title, author),
		Title:       title,
		Author:      author,
		Category:    category,
		Description: strings.TrimSpace(r["description"]),
		Details:     strings.TrimSpace(r["details"]),
		Tags:        splitTags(r["tags"]),
		Cover:       coverPath(r["cover"]),
		DocumentURL: documentURL(r),
	}
	b.SizeMB, b.PageCount = deriveNumerics(b.Tags)
	return b, true
}

// FromRecords normalizes a batch of rows, dropping unusable ones.
// Returns the kept books and the number of dropped rows.
func FromRecords(rows []Record) ([]Book, int) {
	books := make([]Book, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		b, ok := FromRecord(r)
		if !ok {
			dropped++
			continue
		}
		books = append(books, b)
	}
	return books, dropped
}

func splitTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// coverPath accepts full URLs and relative paths alike; only emptiness
// triggers the placeholder.
func coverPath(raw string) string {
	cover := strings.TrimSpace(raw)
	if cover == "" {
		return PlaceholderCover
	}
	return cover
}

func documentURL(r Record) string {
	if u := strings.TrimSpace(r["pdfurl"]); u != "" {
		return u
	}
	if u := strings.TrimSpace(r["pdf"]); u != "" {
		return u
	}
	return ""
}

// deriveNumerics scans tag tokens for "<number> MB" and "<number> page(s)"
// markers (case-insensitive). First parseable match wins per field;
// malformed numbers leave the field nil.
func deriveNumerics(tags []string) (sizeMB *float64, pageCount *int) {
	for _, tag := range tags {
		lower := strings.ToLower(strings.TrimSpace(tag))
		if sizeMB == nil {
			if num, ok := strings.CutSuffix(lower, "mb"); ok {
				if v, err := strconv.ParseFloat(strings.TrimSpace(num), 64); err == nil {
					sizeMB = &v
				}
			}
		}
		if pageCount == nil {
			num, ok := strings.CutSuffix(lower, "pages")
			if !ok {
				num, ok = strings.CutSuffix(lower, "page")
			}
			if ok {
				if v, err := strconv.Atoi(strings.TrimSpace(num)); err == nil {
					pageCount = &v
				}
			}
		}
	}
	return sizeMB, pageCount
}

// titleCase uppercases the first letter of each space-separated token and
// lowercases the rest. Applied once at ingestion so category comparisons
// are consistent downstream.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
