// Package ui launches the terminal interface.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/sommnus/pkg/config"
	tuiapp "tableflip.dev/sommnus/pkg/tui/app"
)

// ErrNotTerminal is returned when stdout cannot host the interface.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal, use `sommnus wake` or `sommnus bed` instead")

type UI struct {
	Config *config.Config
	// Viper is watched for config changes while the UI runs. Optional.
	Viper  *viper.Viper
	Logger *zap.Logger
}

func (d *UI) Do(ctx context.Context) error {
	if !Interactive(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	return tuiapp.Run(ctx, tuiapp.Options{
		Config: d.Config,
		Viper:  d.Viper,
		Logger: d.Logger,
	})
}

// Interactive reports whether fd is a terminal.
func Interactive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
