package config

import "github.com/spf13/pflag"

// ConfigFlag names the flag that selects a config file.
const ConfigFlag = "config"

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"resource-dir":   "resource_dir",
	"primary-db":     "primary_db",
	"backup-db":      "backup_db",
	"status-active":  "status_active",
	"status-flagged": "status_flagged",
	"promote":        "promote_matches",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-file":       "log_file",
}

// RegisterFlags adds the configuration flags to fs, with defaults taken from
// LoadDefaults so that --help shows them.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(ConfigFlag, "c", "", "config file (JSON or YAML)")
	fs.String("resource-dir", d.ResourceDir, "directory holding the database files")
	fs.String("primary-db", d.PrimaryDB, "primary database file")
	fs.String("backup-db", d.BackupDB, "backup database file")
	fs.String("status-active", d.StatusActive, "status value treated as active")
	fs.String("status-flagged", d.StatusFlagged, "status value a toggle sets on active rows")
	fs.Bool("promote", d.PromoteMatches, "move rows matching a search to the top")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	fs.String("log-format", d.LogFormat, "log format: text or json")
	fs.String("log-file", d.LogFile, "write logs to this file")
}
