package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/sommnus/pkg/cycle"
)

// PrettyPrint writes plans as colored text.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("00:00  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " option")
	default:
		_, _ = c.Fprintln(pp.out(), " options")
	}
}

// Plan prints the header line followed by the suggested and other sections.
func (pp *PrettyPrint) Plan(p *Plan) {
	f := color.New(color.Faint)

	pp.NewLine()
	_, _ = f.Fprintf(pp.out(), "%s %s, %s to fall asleep, %s cycles\n",
		p.Prompt(), p.Target(), p.latency(), p.cycleLength())
	pp.NewLine()

	suggested, others := cycle.Split(p.Candidates)
	pp.TitleWithCount(p.Heading()+" - Suggested", len(suggested))
	pp.Candidates(suggested...)
	pp.TitleWithCount("Other Options", len(others))
	pp.Candidates(others...)
}

// Candidates prints one line per candidate, or a faint "none".
func (pp *PrettyPrint) Candidates(cands ...cycle.Candidate) {
	if len(cands) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), spacing+"none\n\n")
		return
	}

	d := color.New(color.Faint)
	for _, c := range cands {
		q := QualityColor(c.Quality)
		_, _ = q.Fprintf(pp.out(), "%s  ", c.Clock)
		_, _ = fmt.Fprintf(pp.out(), "%s", Describe(c))
		_, _ = d.Fprintf(pp.out(), "  %s\n", c.Quality)
	}
	pp.NewLine()
}

// Describe renders the "N cycles (HH:MM)" label of a candidate.
func Describe(c cycle.Candidate) string {
	unit := "cycles"
	if c.Cycles == 1 {
		unit = "cycle"
	}
	return fmt.Sprintf("%d %s (%s)", c.Cycles, unit, c.Span())
}

// QualityColor is the color used for a candidate's clock.
func QualityColor(q cycle.Quality) *color.Color {
	switch q {
	case cycle.Best:
		return color.New(color.FgHiGreen, color.Bold)
	case cycle.Good:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgWhite)
	}
}
