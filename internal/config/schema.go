package config

// Config is the top-level librarian configuration.
type Config struct {
	Feed     FeedConfig     `mapstructure:"feed" yaml:"feed"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
}

// FeedConfig points at the published library feed.
type FeedConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// DefaultsConfig holds default values for query commands.
type DefaultsConfig struct {
	DataDir  string `mapstructure:"data_dir" yaml:"data_dir"`
	PageSize int    `mapstructure:"page_size" yaml:"page_size"`
	Sort     string `mapstructure:"sort" yaml:"sort"`
}
