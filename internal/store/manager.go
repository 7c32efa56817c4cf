package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/blackwell-systems/librarian/internal/util"
)

// Manager owns the local data directory: the catalog snapshot plus the
// user's bookmarks and reading stats. It replaces the old web app's
// localStorage.
//
// Layout: <baseDir>/catalog.yml, bookmarks.yml, readstats.yml
type Manager struct {
	baseDir string
}

// New creates a Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// CatalogPath returns the snapshot file path.
func (m *Manager) CatalogPath() string {
	return filepath.Join(m.baseDir, "catalog.yml")
}

func (m *Manager) bookmarksPath() string {
	return filepath.Join(m.baseDir, "bookmarks.yml")
}

func (m *Manager) readStatsPath() string {
	return filepath.Join(m.baseDir, "readstats.yml")
}

// HasCatalog reports whether a snapshot has ever been saved.
func (m *Manager) HasCatalog() bool {
	_, err := os.Stat(m.CatalogPath())
	return err == nil
}

// LoadCatalog reads the snapshot. Missing file means empty catalog.
func (m *Manager) LoadCatalog() ([]catalog.Book, error) {
	return catalog.Load(m.CatalogPath())
}

// SaveCatalog replaces the snapshot wholesale. The write is atomic so a
// concurrent reader never sees a half-written file.
func (m *Manager) SaveCatalog(books []catalog.Book) error {
	data, err := catalog.Marshal(books)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(m.CatalogPath(), data, 0644); err != nil {
		return fmt.Errorf("writing catalog snapshot: %w", err)
	}
	return nil
}
