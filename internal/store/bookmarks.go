package store

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/blackwell-systems/librarian/internal/util"
)

// Bookmarks is the externally-owned bookmark set. Entries are book IDs;
// files written by the old web app hold titles instead, and those keep
// working through the membership predicate.
type Bookmarks struct {
	entries []string
}

// LoadBookmarks reads the bookmark set. Missing file means empty set.
func (m *Manager) LoadBookmarks() (*Bookmarks, error) {
	data, err := os.ReadFile(m.bookmarksPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Bookmarks{}, nil
		}
		return nil, fmt.Errorf("reading bookmarks: %w", err)
	}
	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing bookmarks: %w", err)
	}
	return &Bookmarks{entries: entries}, nil
}

// SaveBookmarks persists the set atomically.
func (m *Manager) SaveBookmarks(b *Bookmarks) error {
	data, err := yaml.Marshal(b.entries)
	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}
	if err := util.WriteFileAtomic(m.bookmarksPath(), data, 0644); err != nil {
		return fmt.Errorf("writing bookmarks: %w", err)
	}
	return nil
}

// Contains reports whether the book is bookmarked, matching by ID or by
// legacy title entry (case-insensitive).
func (b *Bookmarks) Contains(book catalog.Book) bool {
	for _, e := range b.entries {
		if e == book.ID || strings.EqualFold(e, book.Title) {
			return true
		}
	}
	return false
}

// Add bookmarks a book by ID. Returns false if it was already present.
func (b *Bookmarks) Add(book catalog.Book) bool {
	if b.Contains(book) {
		return false
	}
	b.entries = append(b.entries, book.ID)
	return true
}

// Remove drops a book from the set, clearing legacy title entries too.
// Returns false if it was not present.
func (b *Bookmarks) Remove(book catalog.Book) bool {
	kept := b.entries[:0]
	removed := false
	for _, e := range b.entries {
		if e == book.ID || strings.EqualFold(e, book.Title) {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	b.entries = kept
	return removed
}

// Len returns the number of stored entries.
func (b *Bookmarks) Len() int { return len(b.entries) }

// Predicate adapts the set to the query engine's membership function.
func (b *Bookmarks) Predicate() catalog.IsBookmarkedFunc {
	return b.Contains
}
