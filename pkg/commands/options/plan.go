package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/timeutil"
)

// PlanOptions captures the inputs of a single calculation.
type PlanOptions struct {
	At      string
	Latency string
	Cycle   string
}

// AddPlanArgs wires the calculation flags on the provided command.
func AddPlanArgs(cmd *cobra.Command, o *PlanOptions, atUsage string) {
	cmd.Flags().StringVarP(&o.At, "at", "a", "", atUsage)
	cmd.Flags().StringVarP(&o.Latency, "latency", "l", "",
		"Time needed to fall asleep: 0, 15, 30, 45 or 60 minutes. Defaults to the config.")
	cmd.Flags().StringVarP(&o.Cycle, "cycle", "c", "",
		"Length of one sleep cycle, 60 to 120 minutes in steps of 10. Defaults to the config.")
}

// Settings applies the flags on top of base. An empty --at means now.
func (o *PlanOptions) Settings(mode app.Mode, base app.Settings, now time.Time) (app.Settings, error) {
	s := base
	s.Mode = mode

	s.Target = timeutil.ClockOf(now)
	if o.At != "" {
		c, err := timeutil.ParseClock(o.At)
		if err != nil {
			return s, fmt.Errorf("--at: %w", err)
		}
		s.Target = c
	}
	if o.Latency != "" {
		d, err := timeutil.ParseMinutes(o.Latency)
		if err != nil {
			return s, fmt.Errorf("--latency: %w", err)
		}
		s.Latency = d
	}
	if o.Cycle != "" {
		d, err := timeutil.ParseMinutes(o.Cycle)
		if err != nil {
			return s, fmt.Errorf("--cycle: %w", err)
		}
		s.CycleLength = d
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
