package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/sommnus/pkg/app"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".sommnus.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SOMMNUS_CONFIG_PATH", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOMMNUS_CONFIG_PATH", t.TempDir())
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Settings != app.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", cfg.Settings)
	}
	if cfg.SheetThreshold != 50 || cfg.SheetTap != 5 || cfg.WheelCopies != 5 || !cfg.SheetOpen {
		t.Fatalf("unexpected widget defaults %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
mode: wake
time: "06:30"
latency: 30m
cycle: 100
sheet:
  open: false
  threshold: 40
log:
  file: /tmp/sommnus.log
`)
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := cfg.Settings
	if s.Mode != app.ModeWake || s.Target.String() != "06:30" || s.Latency != 30*time.Minute || s.CycleLength != 100*time.Minute {
		t.Fatalf("unexpected settings %+v", s)
	}
	if cfg.SheetOpen || cfg.SheetThreshold != 40 {
		t.Fatalf("unexpected sheet config %+v", cfg)
	}
	if cfg.LogFile != "/tmp/sommnus.log" {
		t.Fatalf("unexpected log file %q", cfg.LogFile)
	}
	if filepath.Dir(cfg.File) != dir {
		t.Fatalf("expected config file in %s, got %s", dir, cfg.File)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	writeConfig(t, "latency: 30m\n")
	t.Setenv("SOMMNUS_LATENCY", "45")
	t.Setenv("SOMMNUS_SHEET_THRESHOLD", "20")
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Settings.Latency != 45*time.Minute {
		t.Fatalf("expected env latency 45m, got %v", cfg.Settings.Latency)
	}
	if cfg.SheetThreshold != 20 {
		t.Fatalf("expected env threshold 20, got %v", cfg.SheetThreshold)
	}
}

func TestLoadRejectsOutOfPolicy(t *testing.T) {
	writeConfig(t, "cycle: 95m\n")
	_, err := Load(viper.New())
	if !errors.Is(err, app.ErrCycleLength) {
		t.Fatalf("expected ErrCycleLength, got %v", err)
	}
}

func TestLoadRejectsBadClock(t *testing.T) {
	writeConfig(t, "time: \"25:00\"\n")
	if _, err := Load(viper.New()); err == nil {
		t.Fatalf("expected error for bad clock")
	}
}

func TestDefaultMatchesLoadedDefaults(t *testing.T) {
	t.Setenv("SOMMNUS_CONFIG_PATH", t.TempDir())
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.File = ""
	if *cfg != *Default() {
		t.Fatalf("expected %+v, got %+v", *Default(), *cfg)
	}
}
