package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/chalicecompass/internal/logging"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
)

// Default database file names, looked up in the resource directory.
const (
	DefaultPrimaryDB = "ChaliceCompass.db"
	DefaultBackupDB  = "ChaliceCompass_backup.db"
)

// Config holds runtime settings for the compass binary.
//
// Fields:
//   - ResourceDir: directory the database names are resolved against. Empty
//     means "next to the executable, else the working directory".
//   - PrimaryDB, BackupDB: candidate database files, tried in that order.
//   - StatusActive, StatusFlagged: the two values the status toggle swaps.
//   - PromoteMatches: move rows matching a search to the top of the list.
//   - LogLevel, LogFormat, LogFile: logging setup; see package logging.
type Config struct {
	ResourceDir    string `mapstructure:"resource_dir"`
	PrimaryDB      string `mapstructure:"primary_db"`
	BackupDB       string `mapstructure:"backup_db"`
	StatusActive   string `mapstructure:"status_active"`
	StatusFlagged  string `mapstructure:"status_flagged"`
	PromoteMatches bool   `mapstructure:"promote_matches"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	LogFile        string `mapstructure:"log_file"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ResourceDir = ""
	c.PrimaryDB = DefaultPrimaryDB
	c.BackupDB = DefaultBackupDB
	c.StatusActive = models.StatusActive
	c.StatusFlagged = models.StatusFlagged
	c.PromoteMatches = true
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
	c.LogFile = ""
}

// Statuses returns the configured status pair.
func (c *Config) Statuses() models.StatusPair {
	return models.StatusPair{Active: c.StatusActive, Flagged: c.StatusFlagged}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if err := c.Statuses().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.PrimaryDB == "" {
		return fmt.Errorf("invalid config: primary_db is empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid config: unknown log format %q", c.LogFormat)
	}
	return nil
}
