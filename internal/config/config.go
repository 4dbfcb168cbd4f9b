// Package config manages application configuration and file paths
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/adipramono/chargelog/internal/timeutil"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timezone     string             `mapstructure:"timezone"`
		Settings     SettingsConfig     `mapstructure:"settings"`
		Notification NotificationConfig `mapstructure:"notifications"`
		System       SystemConfig       `mapstructure:"-"`
	}

	// SettingsConfig holds charging-related settings.
	SettingsConfig struct {
		DefaultLocation string `mapstructure:"default_location"`
		MinutesToFull   int    `mapstructure:"minutes_to_full"`
		TwentyFourHour  bool   `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SystemConfig holds file path settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.2.0"

var (
	configDir      = "chargelog"
	configFileName = "config.yml"
	dbFileName     = "chargelog.db"
	logFileName    = "chargelog.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file locations.
// Setting CHARGELOG_ENV isolates them per environment.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("CHARGELOG_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("chargelog_%s.db", env)
		logFileName = fmt.Sprintf("chargelog_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Timezone: string(timeutil.DefaultZone),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	cfg.System.ConfigPath = configFilePath
	cfg.System.DBPath = dbFilePath

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Get returns the configuration loaded from the default config file.
func Get() (*Config, error) {
	return New(WithViperConfig(configFilePath))
}

// Zone returns the configured presentation zone.
func (c *Config) Zone() timeutil.Zone {
	z := timeutil.Zone(c.Timezone)
	if !z.Valid() {
		return timeutil.DefaultZone
	}

	return z
}

func (c *Config) validate() error {
	if !timeutil.Zone(c.Timezone).Valid() {
		return errInvalidTimezone.Fmt(c.Timezone)
	}

	if c.Settings.MinutesToFull <= 0 {
		return errInvalidChargeRate.Fmt(c.Settings.MinutesToFull)
	}

	return nil
}
