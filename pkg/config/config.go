// Package config loads sommnus settings from defaults, a .sommnus.yaml file
// and SOMMNUS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/sheet"
	"tableflip.dev/sommnus/pkg/timeutil"
	"tableflip.dev/sommnus/pkg/wheel"
)

// Keys understood in the config file and environment.
const (
	KeyMode           = "mode"
	KeyTime           = "time"
	KeyLatency        = "latency"
	KeyCycle          = "cycle"
	KeySheetOpen      = "sheet.open"
	KeySheetThreshold = "sheet.threshold"
	KeySheetTap       = "sheet.tap_epsilon"
	KeySheetRowUnits  = "sheet.row_units"
	KeyWheelCopies    = "wheel.copies"
	KeyLogFile        = "log.file"
)

// defaultRowUnits maps one terminal row to ten drag units, so the default
// threshold of 50 is crossed after six rows.
const defaultRowUnits = 10.0

// Config is the resolved configuration.
type Config struct {
	Settings app.Settings

	SheetOpen      bool
	SheetThreshold float64
	SheetTap       float64
	// SheetRowUnits converts one terminal row into drag units.
	SheetRowUnits float64
	WheelCopies   int

	LogFile string
	// File is the config file that was read, if any.
	File string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Settings:       app.DefaultSettings(),
		SheetOpen:      true,
		SheetThreshold: sheet.DefaultThreshold,
		SheetTap:       sheet.DefaultTapEpsilon,
		SheetRowUnits:  defaultRowUnits,
		WheelCopies:    wheel.DefaultCopies,
	}
}

// Load reads configuration into v. A nil v uses a fresh viper instance.
// A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)
	v.SetConfigName(".sommnus") // .yaml is implicit
	v.SetEnvPrefix("SOMMNUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("SOMMNUS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return decode(v)
}

func setDefaults(v *viper.Viper) {
	d := app.DefaultSettings()
	v.SetDefault(KeyMode, string(d.Mode))
	v.SetDefault(KeyTime, d.Target.String())
	v.SetDefault(KeyLatency, timeutil.FormatMinutes(d.Latency))
	v.SetDefault(KeyCycle, timeutil.FormatMinutes(d.CycleLength))
	v.SetDefault(KeySheetOpen, true)
	v.SetDefault(KeySheetThreshold, sheet.DefaultThreshold)
	v.SetDefault(KeySheetTap, sheet.DefaultTapEpsilon)
	v.SetDefault(KeySheetRowUnits, defaultRowUnits)
	v.SetDefault(KeyWheelCopies, wheel.DefaultCopies)
	v.SetDefault(KeyLogFile, "")
}

func decode(v *viper.Viper) (*Config, error) {
	mode, err := app.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyMode, err)
	}
	target, err := timeutil.ParseClock(v.GetString(KeyTime))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyTime, err)
	}
	latency, err := minutes(v, KeyLatency)
	if err != nil {
		return nil, err
	}
	length, err := minutes(v, KeyCycle)
	if err != nil {
		return nil, err
	}
	settings := app.Settings{Mode: mode, Target: target, Latency: latency, CycleLength: length}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &Config{
		Settings:       settings,
		SheetOpen:      v.GetBool(KeySheetOpen),
		SheetThreshold: v.GetFloat64(KeySheetThreshold),
		SheetTap:       v.GetFloat64(KeySheetTap),
		SheetRowUnits:  v.GetFloat64(KeySheetRowUnits),
		WheelCopies:    v.GetInt(KeyWheelCopies),
		LogFile:        v.GetString(KeyLogFile),
		File:           v.ConfigFileUsed(),
	}, nil
}

func minutes(v *viper.Viper, key string) (time.Duration, error) {
	d, err := timeutil.ParseMinutes(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

// Watch re-decodes the config file whenever it changes and hands the result
// to fn. Files that fail to decode are logged and skipped. Watch is a no-op
// when no config file was read.
func Watch(v *viper.Viper, logger *zap.Logger, fn func(*Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := decode(v)
		if err != nil {
			logger.Warn("config reload failed", zap.String("file", e.Name), zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		fn(cfg)
	})
	v.WatchConfig()
}
