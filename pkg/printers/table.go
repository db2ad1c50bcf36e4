package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Table writes plans as an aligned table.
type Table struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Plan prints one row per candidate in computed order.
func (t *Table) Plan(p *Plan) {
	out := t.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(p.Heading()), bold.Sprint("Cycles"), bold.Sprint("Sleep"), bold.Sprint("Quality"))
	for _, c := range p.Candidates {
		tbl.AddRow(QualityColor(c.Quality).Sprint(c.Clock), c.Cycles, c.Span(), c.Quality.String())
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(out, tbl)
}
