// Package plan runs a single bed or wake time calculation for the CLI.
package plan

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/printers"
)

type Plan struct {
	Settings app.Settings
	Format   string
	// Out defaults to color.Output.
	Out    io.Writer
	Now    func() time.Time
	Logger *zap.Logger
}

func (n *Plan) Do(ctx context.Context) error {
	planner := app.NewPlanner(n.Settings, app.WithClock(n.Now), app.WithLogger(n.Logger))
	planner.Recompute()
	return printers.Print(n.Out, n.Format, printers.NewPlan(planner))
}
