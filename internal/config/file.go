package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for config-file unmarshalling. The
// file may be JSON or YAML, by extension.
type fileConfig struct {
	DatabasePath string `json:"database_path" yaml:"database_path"`
	BackupDir    string `json:"backup_dir" yaml:"backup_dir"`
}

// configFileFromArgs extracts the config file path given via -c or -config.
// Only these flags are parsed here; everything else is left for parseFlags,
// so the two stages cannot interfere with each other.
func configFileFromArgs(args []string) string {
	var path string
	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(args, []string{"-c", "-config"}))
	return path
}

// parseFile overlays cfg with values from the named config file. A missing
// -c flag means no file is loaded; read or parse errors panic, since a
// config file that was explicitly named but cannot be used is not worth
// starting with.
func parseFile(cfg *Config) {
	path := configFileFromArgs(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.BackupDir != "" {
		cfg.BackupDir = fc.BackupDir
	}
}
