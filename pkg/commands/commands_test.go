package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/sommnus/pkg/app"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".sommnus.yaml"), []byte("latency: 15m\ncycle: 90m\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SOMMNUS_CONFIG_PATH", dir)
	debug.LogFile = ""
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := New()
	for _, name := range []string{"wake", "bed", "ask", "ui", "info", "version", "completion"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("expected %q subcommand, got %v (%v)", name, c, err)
		}
	}
	if root.PersistentFlags().Lookup("debug-log") == nil {
		t.Fatalf("expected persistent --debug-log flag")
	}
	wake, _, _ := root.Find([]string{"wake"})
	if f := wake.Flags().Lookup("interactive"); f == nil || f.Shorthand != "i" {
		t.Fatalf("expected wake --interactive/-i")
	}
}

func TestWakeJSON(t *testing.T) {
	isolate(t)
	out, err := execute(t, "wake", "--at", "23:00", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Mode      string `json:"mode"`
		Target    string `json:"target"`
		Suggested []struct {
			Clock string `json:"clock"`
		} `json:"suggested"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if got.Mode != string(app.ModeSleep) || got.Target != "23:00" {
		t.Fatalf("unexpected plan header %+v", got)
	}
	if len(got.Suggested) != 2 || got.Suggested[0].Clock != "06:50" || got.Suggested[1].Clock != "08:20" {
		t.Fatalf("unexpected suggestions %+v", got.Suggested)
	}
}

func TestBedTable(t *testing.T) {
	isolate(t)
	out, err := execute(t, "bed", "--at", "07:00", "--latency", "0", "-o", "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Go to bed at") {
		t.Fatalf("expected bedtime header:\n%s", out)
	}
	// Six cycles before 07:00 is 22:00, five is 23:30.
	if !strings.Contains(out, "22:00") || !strings.Contains(out, "23:30") {
		t.Fatalf("expected suggested bedtimes:\n%s", out)
	}
}

func TestPlanRejectsOutOfPolicy(t *testing.T) {
	isolate(t)
	_, err := execute(t, "wake", "--at", "23:00", "--latency", "20")
	if !errors.Is(err, app.ErrLatency) {
		t.Fatalf("expected ErrLatency, got %v", err)
	}
	_, err = execute(t, "bed", "--at", "7:00", "--cycle", "2h30m")
	if !errors.Is(err, app.ErrCycleLength) {
		t.Fatalf("expected ErrCycleLength, got %v", err)
	}
	if _, err := execute(t, "bed", "--at", "7:0"); err == nil {
		t.Fatalf("expected error for malformed --at")
	}
}

func TestInfo(t *testing.T) {
	isolate(t)
	out, err := execute(t, "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"SOMMNUS_CONFIG_PATH found on env", ".sommnus.yaml", "1h30m"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in info output:\n%s", want, out)
		}
	}
}
