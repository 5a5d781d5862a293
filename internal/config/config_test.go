package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "ChaliceCompass.db", c.PrimaryDB)
	assert.Equal(t, "ChaliceCompass_backup.db", c.BackupDB)
	assert.Equal(t, models.DefaultStatusPair(), c.Statuses())
	assert.True(t, c.PromoteMatches)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty active", func(c *Config) { c.StatusActive = "" }},
		{"identical pair", func(c *Config) { c.StatusFlagged = c.StatusActive }},
		{"empty primary", func(c *Config) { c.PrimaryDB = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("compass", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_NilFlagsGivesDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoad_UnsetFlagsGiveDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "compass.yaml", `
resource_dir: /srv/compass
status_flagged: Expired
promote_matches: false
log_format: json
`)

	cfg, err := Load(newFlags(t, "-c", path))
	require.NoError(t, err)

	want := defaults()
	want.ResourceDir = "/srv/compass"
	want.StatusFlagged = "Expired"
	want.PromoteMatches = false
	want.LogFormat = "json"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "compass.json", `{"primary_db": "main.db", "log_level": "debug"}`)

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "main.db", cfg.PrimaryDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultBackupDB, cfg.BackupDB)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "compass.yaml", "primary_db: file.db\nbackup_db: file_backup.db\nlog_level: warn\n")

	cfg, err := Load(newFlags(t, "-c", path, "--primary-db", "flag.db", "--promote=false"))
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.PrimaryDB)
	// Unset flags do not mask file values.
	assert.Equal(t, "file_backup.db", cfg.BackupDB)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.PromoteMatches)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(newFlags(t, "-c", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", `{"primary_db": `)
	_, err = Load(newFlags(t, "-c", bad))
	assert.Error(t, err)
}
