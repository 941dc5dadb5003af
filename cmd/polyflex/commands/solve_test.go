package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/polyfrost/polyui"
)

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.toml")
}

func TestRunSolveReport(t *testing.T) {
	layout := writeLayout(t, testLayout)

	var out bytes.Buffer
	if err := runSolve([]string{"-config", noConfig(t), layout}, &out); err != nil {
		t.Fatal(err)
	}

	report := out.String()
	for _, want := range []string{"frame 1: 200.0 x 30.0 (md)", "root/a", "root/1/0", "x=60.0"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRunSolveJSON(t *testing.T) {
	layout := writeLayout(t, testLayout)

	var out bytes.Buffer
	if err := runSolve([]string{"-config", noConfig(t), "-json", layout}, &out); err != nil {
		t.Fatal(err)
	}

	var frame polyui.Frame
	if err := json.Unmarshal(out.Bytes(), &frame); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}

	got := make(map[string][4]float32)
	for _, b := range frame.Boxes {
		got[b.Path] = [4]float32{b.X, b.Y, b.Width, b.Height}
	}
	want := map[string][4]float32{
		"root":     {0, 0, 200, 30},
		"root/a":   {0, 0, 50, 20},
		"root/1":   {60, 0, 30, 30},
		"root/1/0": {60, 0, 30, 30},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSolveUsage(t *testing.T) {
	var out bytes.Buffer
	if err := runSolve(nil, &out); err == nil {
		t.Error("runSolve without a layout succeeded")
	}
}

func TestReportWarnings(t *testing.T) {
	frame := &polyui.Frame{Number: 3, Width: 10, Height: 10}
	frame.Boxes = []polyui.LayoutBox{{Path: "root", Kind: polyui.WidgetRow, Width: 10, Height: 10}}

	report := Report(frame)
	if !strings.Contains(report, "frame 3") || !strings.Contains(report, "root") {
		t.Errorf("report = %q", report)
	}
	if strings.Contains(report, "!") {
		t.Errorf("report without warnings printed one: %q", report)
	}
}
