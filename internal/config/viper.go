package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/internal/timeutil"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyTimezone        = "timezone"
	keyDefaultLocation = "settings.default_location"
	keyMinutesToFull   = "settings.minutes_to_full"
	keyTwentyFourHour  = "settings.24hr_clock"
	keyNotifications   = "notifications.enabled"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing the default config file on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTimezone, string(timeutil.DefaultZone))
	v.SetDefault(keyDefaultLocation, "Rumah")
	v.SetDefault(keyMinutesToFull, session.DefaultMinutesToFull)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyNotifications, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// PersistTimezone writes a new presentation zone to the config file. The
// change affects all subsequent formatting and aggregation but never the
// stored instants themselves.
func PersistTimezone(configPath string, zone timeutil.Zone) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil &&
		!errors.Is(err, os.ErrNotExist) {
		return errReadConfig.Wrap(err)
	}

	v.Set(keyTimezone, string(zone))

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}
