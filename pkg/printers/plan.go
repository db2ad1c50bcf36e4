// Package printers renders bed and wake time plans for the command line.
package printers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/cycle"
	"tableflip.dev/sommnus/pkg/timeutil"
)

// Plan is one computed set of suggestions together with its inputs.
type Plan struct {
	Settings   app.Settings
	Reference  time.Time
	Candidates []cycle.Candidate
}

// NewPlan captures the planner's last computation.
func NewPlan(p *app.Planner) *Plan {
	return &Plan{
		Settings:   p.Settings(),
		Reference:  p.Reference(),
		Candidates: p.Results(),
	}
}

func (p *Plan) Prompt() string  { return p.Settings.Mode.Prompt() }
func (p *Plan) Heading() string { return p.Settings.Mode.Heading() }
func (p *Plan) Target() string  { return p.Settings.Target.String() }

func (p *Plan) latency() string {
	return timeutil.FormatMinutes(p.Settings.Latency)
}

func (p *Plan) cycleLength() string {
	return timeutil.FormatMinutes(p.Settings.CycleLength)
}

// Output formats understood by Print.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatTable, FormatJSON}

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("unknown output format")

// Print renders p to w in the given format.
func Print(w io.Writer, format string, p *Plan) error {
	switch format {
	case FormatText, "":
		pp := PrettyPrint{Out: w}
		pp.Plan(p)
	case FormatTable:
		t := Table{Out: w}
		t.Plan(p)
	case FormatJSON:
		j := JSON{Out: w}
		return j.Plan(p)
	default:
		return fmt.Errorf("%w %q, expected one of %v", ErrFormat, format, Formats)
	}
	return nil
}
