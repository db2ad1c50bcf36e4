package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header  HeaderTheme
	Wheel   WheelTheme
	Sheet   SheetTheme
	Results ResultsTheme
	Footer  FooterTheme
	Panel   PanelTheme
}

// HeaderTheme styles the title row and the settings summary.
type HeaderTheme struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Summary lipgloss.Style
}

// WheelTheme styles the hour and minute pickers. Rows between the selection
// and the edge blend from Selected to Edge.
type WheelTheme struct {
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Marker   lipgloss.Style
	Selected color.Color
	Edge     color.Color
}

// SheetTheme styles the bottom sheet.
type SheetTheme struct {
	Handle   lipgloss.Style
	Dragging lipgloss.Style
	Body     lipgloss.Style
}

// ResultsTheme styles the suggestion list.
type ResultsTheme struct {
	Section lipgloss.Style
	Best    lipgloss.Style
	Good    lipgloss.Style
	Okay    lipgloss.Style
	Detail  lipgloss.Style
	Empty   lipgloss.Style
}

// FooterTheme groups styles used by the bottom help bar.
type FooterTheme struct {
	Help lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
	// Backdrop restyles whatever the panel covers.
	Backdrop lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("#B4A7FF")
	return Theme{
		Header: HeaderTheme{
			Title:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Prompt:  lipgloss.NewStyle().Bold(true),
			Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Wheel: WheelTheme{
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Focused:  lipgloss.NewStyle().Foreground(accent).Bold(true),
			Marker:   lipgloss.NewStyle().Foreground(accent),
			Selected: lipgloss.Color("#F5F3FF"),
			Edge:     lipgloss.Color("#3A3650"),
		},
		Sheet: SheetTheme{
			Handle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Dragging: lipgloss.NewStyle().Foreground(accent),
			Body:     lipgloss.NewStyle(),
		},
		Results: ResultsTheme{
			Section: lipgloss.NewStyle().Bold(true).Underline(true),
			Best:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9AE6B4")).Bold(true),
			Good:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F6E05E")),
			Okay:    lipgloss.NewStyle(),
			Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty:   lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Help: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Body:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(accent).Bold(true).Reverse(true),
			Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Backdrop: lipgloss.NewStyle().Faint(true),
		},
	}
}
