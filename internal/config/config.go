// Package config loads runtime settings for the love story host: built-in
// defaults, overlaid by an optional JSON or YAML config file, overlaid by
// command-line flags. Later sources take precedence.
package config

// Config holds runtime settings for the love story host.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - BackupDir: directory where snapshot export files are written.
type Config struct {
	DatabasePath string
	BackupDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lovestory.db"
	c.BackupDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the config file (if one is named by -c/-config) and command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
