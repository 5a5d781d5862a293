package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load builds a Config from defaults, the file named by the --config flag
// and then any flags in fs the user set. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	var d Config
	d.LoadDefaults()

	v := viper.New()
	setDefaults(v, &d)

	file := ""
	if fs != nil {
		if f := fs.Lookup(ConfigFlag); f != nil {
			file = f.Value.String()
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("resource_dir", d.ResourceDir)
	v.SetDefault("primary_db", d.PrimaryDB)
	v.SetDefault("backup_db", d.BackupDB)
	v.SetDefault("status_active", d.StatusActive)
	v.SetDefault("status_flagged", d.StatusFlagged)
	v.SetDefault("promote_matches", d.PromoteMatches)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_file", d.LogFile)
}
