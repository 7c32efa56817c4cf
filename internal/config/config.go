package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "librarian", "config.yml")
}

// Load reads the config from disk (or env). A missing file yields the
// defaults — only the feed URL is genuinely required, and commands that
// need it say so.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("defaults.data_dir", defaultDataDir())
	v.SetDefault("defaults.page_size", 40)
	v.SetDefault("defaults.sort", "relevance")

	v.SetEnvPrefix("LIBRARIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("LIBRARIAN_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Defaults.DataDir = ExpandHome(cfg.Defaults.DataDir)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "librarian")
}
