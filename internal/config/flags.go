package config

import (
	"flag"
	"os"
	"strings"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-b string   directory for snapshot export files
//
// Unrelated flags (like the -c handled by parseFile) are filtered out first.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-d", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "directory for snapshot export files")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// filterArgs keeps only the allowed flags and their values, in both the
// "-f value" and "-f=value" forms, so each parsing stage sees just the flags
// it owns.
func filterArgs(args, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}
