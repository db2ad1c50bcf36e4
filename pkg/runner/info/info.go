// Package info prints where sommnus reads its configuration from and what it
// resolved to.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sommnus/pkg/config"
	"tableflip.dev/sommnus/pkg/timeutil"
)

type Info struct {
	Config *config.Config
	// Out defaults to color.Output.
	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("SOMMNUS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "SOMMNUS_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "SOMMNUS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		return errors.New("no configuration loaded")
	}
	c := n.Config

	file := c.File
	if file == "" {
		file = "(none, using defaults)"
	}
	logFile := c.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow("config file", file)
	tbl.AddRow(config.KeyMode, c.Settings.Mode)
	tbl.AddRow(config.KeyTime, c.Settings.Target)
	tbl.AddRow(config.KeyLatency, timeutil.FormatMinutes(c.Settings.Latency))
	tbl.AddRow(config.KeyCycle, timeutil.FormatMinutes(c.Settings.CycleLength))
	tbl.AddRow(config.KeySheetOpen, c.SheetOpen)
	tbl.AddRow(config.KeySheetThreshold, c.SheetThreshold)
	tbl.AddRow(config.KeySheetTap, c.SheetTap)
	tbl.AddRow(config.KeySheetRowUnits, c.SheetRowUnits)
	tbl.AddRow(config.KeyWheelCopies, c.WheelCopies)
	tbl.AddRow(config.KeyLogFile, logFile)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
