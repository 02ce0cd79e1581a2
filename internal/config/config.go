package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. STOKDESK_THEME.
const EnvPrefix = "STOKDESK"

// Config represents the user's configuration
type Config struct {
	Theme            Theme     `mapstructure:"theme"`
	SidebarCollapsed bool      `mapstructure:"sidebar_collapsed"`
	MenuFile         string    `mapstructure:"menu_file"`
	WatchMenu        bool      `mapstructure:"watch_menu"`
	VATRate          float64   `mapstructure:"vat_rate"`
	Rates            Rates     `mapstructure:"rates"`
	Log              LogConfig `mapstructure:"log"`
	Debug            bool      `mapstructure:"debug"`
}

// Rates are the exchange rates shown in the header
type Rates struct {
	USD float64 `mapstructure:"usd"`
	EUR float64 `mapstructure:"eur"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:     ThemeDark,
		WatchMenu: true,
		VATRate:   20,
		Rates:     Rates{USD: 34.2401, EUR: 37.1289},
		Log: LogConfig{
			File:       filepath.Join(".stokdesk", "logs", "stokdesk.log"),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

// globalConfigDir returns the global config directory path (~/.stokdesk)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stokdesk"), nil
}

// globalConfigPath returns the global config file path (~/.stokdesk/config.yaml)
func globalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ProjectConfigPath returns the project-level config path (.stokdesk/config.yaml in cwd)
func ProjectConfigPath() string {
	return filepath.Join(".stokdesk", "config.yaml")
}

// resolvePath picks the config file to read: an explicit path, then the
// project file, then the global one. Empty means defaults and env only.
func resolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(ProjectConfigPath()); err == nil {
		return ProjectConfigPath()
	}
	if global, err := globalConfigPath(); err == nil {
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}
	return ""
}

// Load builds the config from defaults, the first config file found, a
// .env file in the working directory and STOKDESK_* variables, in rising
// order of precedence. An explicit path that does not exist is an error.
func Load(explicit string) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := resolvePath(explicit); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("theme", string(d.Theme))
	v.SetDefault("sidebar_collapsed", d.SidebarCollapsed)
	v.SetDefault("menu_file", d.MenuFile)
	v.SetDefault("watch_menu", d.WatchMenu)
	v.SetDefault("vat_rate", d.VATRate)
	v.SetDefault("rates.usd", d.Rates.USD)
	v.SetDefault("rates.eur", d.Rates.EUR)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("debug", d.Debug)
}

// Validate rejects values the UI cannot render
func (c *Config) Validate() error {
	if !c.Theme.Valid() {
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	if c.VATRate < 0 || c.VATRate > 100 {
		return fmt.Errorf("config: vat_rate %.2f out of range", c.VATRate)
	}
	return nil
}

// SaveToProject writes the config to .stokdesk/config.yaml, refusing to
// overwrite an existing file unless force is set
func SaveToProject(cfg *Config, force bool) (string, error) {
	path := ProjectConfigPath()
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%s: %w", path, os.ErrExist)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return path, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, err
	}

	v := viper.New()
	setDefaults(v, cfg)
	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
