package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/sommnus/pkg/cycle"
	"tableflip.dev/sommnus/pkg/timeutil"
)

// JSON writes plans as a single JSON document.
type JSON struct {
	// Out defaults to color.Output.
	Out io.Writer
}

type planView struct {
	Mode      string          `json:"mode"`
	Target    string          `json:"target"`
	Reference time.Time       `json:"reference"`
	Latency   string          `json:"latency"`
	Cycle     string          `json:"cycle"`
	Suggested []candidateView `json:"suggested"`
	Others    []candidateView `json:"others"`
}

type candidateView struct {
	cycle.Candidate
	Sleep string `json:"sleep"`
}

func views(cands []cycle.Candidate) []candidateView {
	out := make([]candidateView, 0, len(cands))
	for _, c := range cands {
		out = append(out, candidateView{Candidate: c, Sleep: c.Span()})
	}
	return out
}

// Plan encodes p.
func (j *JSON) Plan(p *Plan) error {
	out := j.Out
	if out == nil {
		out = color.Output
	}
	suggested, others := cycle.Split(p.Candidates)
	v := planView{
		Mode:      string(p.Settings.Mode),
		Target:    p.Target(),
		Reference: p.Reference,
		Latency:   timeutil.FormatMinutes(p.Settings.Latency),
		Cycle:     timeutil.FormatMinutes(p.Settings.CycleLength),
		Suggested: views(suggested),
		Others:    views(others),
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("printers: encode plan: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
