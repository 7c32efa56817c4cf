package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/librarian/internal/util"
)

// ReadStat records how often and how recently one book was opened.
type ReadStat struct {
	Count    int        `yaml:"count"`
	LastRead *time.Time `yaml:"last_read,omitempty"`
}

// ReadStats maps book ID to its stat.
type ReadStats map[string]ReadStat

// LoadReadStats reads the stats file. Missing file means no stats yet.
func (m *Manager) LoadReadStats() (ReadStats, error) {
	data, err := os.ReadFile(m.readStatsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return ReadStats{}, nil
		}
		return nil, fmt.Errorf("reading read stats: %w", err)
	}
	var stats ReadStats
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parsing read stats: %w", err)
	}
	if stats == nil {
		stats = ReadStats{}
	}
	return stats, nil
}

// SaveReadStats persists the stats atomically.
func (m *Manager) SaveReadStats(stats ReadStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding read stats: %w", err)
	}
	if err := util.WriteFileAtomic(m.readStatsPath(), data, 0644); err != nil {
		return fmt.Errorf("writing read stats: %w", err)
	}
	return nil
}

// Record bumps the open count for a book and stamps the time.
func (s ReadStats) Record(bookID string, now time.Time) {
	stat := s[bookID]
	stat.Count++
	stat.LastRead = &now
	s[bookID] = stat
}
