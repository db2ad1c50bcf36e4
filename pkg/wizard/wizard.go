// Package wizard asks for plan settings on the terminal, one question at a
// time.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/timeutil"
)

// ErrCancelled is returned when the user interrupts a question.
var ErrCancelled = errors.New("wizard: cancelled")

// Wizard prompts for the fields of app.Settings.
type Wizard struct {
	In  io.Reader
	Out io.Writer
	// AskMode adds a first question choosing bedtime or wake time entry.
	AskMode bool
}

// Ask walks through the questions, starting each one from base. The
// returned settings are validated.
func (w *Wizard) Ask(base app.Settings) (app.Settings, error) {
	s := base
	if w.AskMode {
		mode, err := w.selectMode(s.Mode)
		if err != nil {
			return s, err
		}
		s.Mode = mode
	}

	target, err := w.promptClock(s.Mode, s.Target)
	if err != nil {
		return s, err
	}
	s.Target = target

	if s.Latency, err = w.selectDuration("Time to fall asleep", app.LatencySteps, s.Latency); err != nil {
		return s, err
	}
	if s.CycleLength, err = w.selectDuration("Sleep cycle length", app.CycleLengths, s.CycleLength); err != nil {
		return s, err
	}
	return s, s.Validate()
}

type modeItem struct {
	Mode   app.Mode
	Prompt string
	Result string
}

func modeItems() []modeItem {
	return []modeItem{
		{Mode: app.ModeSleep, Prompt: app.ModeSleep.Prompt(), Result: app.ModeSleep.Heading()},
		{Mode: app.ModeWake, Prompt: app.ModeWake.Prompt(), Result: app.ModeWake.Heading()},
	}
}

func (w *Wizard) selectMode(current app.Mode) (app.Mode, error) {
	items := modeItems()
	pos := 0
	for i, it := range items {
		if it.Mode == current {
			pos = i
		}
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Prompt | bold }} {{ .Result | faint }}",
		Inactive: "   {{ .Prompt }} {{ .Result | faint }}",
		Selected: "{{ .Prompt | bold }}",
	}
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "I know when I want to",
		Items:     items,
		Templates: templates,
		CursorPos: pos,
		Stdin:     w.stdin(),
		Stdout:    w.stdout(),
	}
	i, _, err := prompt.Run()
	if err != nil {
		return current, cancelled(err)
	}
	return items[i].Mode, nil
}

func (w *Wizard) promptClock(mode app.Mode, current timeutil.Clock) (timeutil.Clock, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}
	prompt := promptui.Prompt{
		Label:     mode.Prompt(),
		Default:   current.String(),
		AllowEdit: true,
		Templates: templates,
		Validate:  ValidateClock,
		Stdin:     w.stdin(),
		Stdout:    w.stdout(),
	}
	result, err := prompt.Run()
	if err != nil {
		return current, cancelled(err)
	}
	if strings.TrimSpace(result) == "" {
		return current, nil
	}
	return timeutil.ParseClock(strings.TrimSpace(result))
}

// ValidateClock accepts an empty answer (keep the default) or HH:MM.
func ValidateClock(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	_, err := timeutil.ParseClock(input)
	return err
}

func (w *Wizard) selectDuration(label string, values []time.Duration, current time.Duration) (time.Duration, error) {
	items := Labels(values)
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		CursorPos: Nearest(values, current),
		Size:      len(items),
		Stdin:     w.stdin(),
		Stdout:    w.stdout(),
	}
	i, _, err := prompt.Run()
	if err != nil {
		return current, cancelled(err)
	}
	return values[i], nil
}

// Labels renders each duration the way the flags accept them.
func Labels(values []time.Duration) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = timeutil.FormatMinutes(v)
	}
	return out
}

// Nearest is the index of the value closest to d.
func Nearest(values []time.Duration, d time.Duration) int {
	best := 0
	for i, v := range values {
		if abs(v-d) < abs(values[best]-d) {
			best = i
		}
	}
	return best
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

func cancelled(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrCancelled
	}
	return fmt.Errorf("wizard: %w", err)
}

func (w *Wizard) stdin() io.ReadCloser {
	if w.In == nil {
		return nil
	}
	if rc, ok := w.In.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(w.In)
}

func (w *Wizard) stdout() io.WriteCloser {
	if w.Out == nil {
		return nil
	}
	if wc, ok := w.Out.(io.WriteCloser); ok {
		return wc
	}
	return nopCloser{w.Out}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
