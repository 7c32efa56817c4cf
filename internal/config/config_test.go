package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/librarian/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Point at a nonexistent config file so only defaults apply.
	t.Setenv("LIBRARIAN_CONFIG", filepath.Join(t.TempDir(), "config.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Defaults.PageSize != 40 {
		t.Errorf("PageSize = %d, want 40", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.Sort != "relevance" {
		t.Errorf("Sort = %q, want relevance", cfg.Defaults.Sort)
	}
	if cfg.Defaults.DataDir == "" {
		t.Error("DataDir default missing")
	}
	if cfg.Feed.URL != "" {
		t.Errorf("Feed.URL = %q, want empty by default", cfg.Feed.URL)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := `feed:
  url: https://opensheet.example/sheet/1
defaults:
  data_dir: ` + dir + `
  page_size: 10
  sort: title
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LIBRARIAN_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.URL != "https://opensheet.example/sheet/1" {
		t.Errorf("Feed.URL = %q", cfg.Feed.URL)
	}
	if cfg.Defaults.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.Sort != "title" {
		t.Errorf("Sort = %q, want title", cfg.Defaults.Sort)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/x"); got != filepath.Join(home, "x") {
		t.Errorf("ExpandHome(~/x) = %q", got)
	}
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome should leave absolute paths alone, got %q", got)
	}
}
