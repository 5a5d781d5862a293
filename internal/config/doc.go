// Package config loads runtime configuration for Chalice Compass.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file, JSON or YAML by extension, selected with
//     --config / -c.
//  3. Command-line flags, which override earlier values. Only flags the user
//     actually set count; a flag's default never masks a file value.
//
// Supported flags
//
//	--resource-dir string    directory holding the database files
//	--primary-db string      primary database file name or path
//	--backup-db string       backup database file name or path
//	--status-active string   status value treated as active
//	--status-flagged string  the other status value
//	--promote                move matching rows to the top after a search
//	--log-level string       debug, info, warn or error
//	--log-format string      text or json
//	--log-file string        write logs to this file
//
// # File schema
//
//	resource_dir: /opt/compass
//	primary_db: ChaliceCompass.db
//	backup_db: ChaliceCompass_backup.db
//	status_active: Active
//	status_flagged: FLAGGED
//	promote_matches: true
//	log_level: info
//	log_format: text
//	log_file: ""
//
// The package does not read environment variables.
package config
