package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"neurograph/internal/model"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionJSON(t *testing.T) {
	out, err := runCLI(t, "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestSampleJSON(t *testing.T) {
	out, err := runCLI(t, "sample", "--seed", "5", "--json")
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if snap.Stats.InputNeurons != 2 || snap.Stats.HiddenNeurons != 3 || snap.Stats.OutputNeurons != 1 || snap.Stats.TotalConnections != 7 {
		t.Fatalf("unexpected stats: %+v", snap.Stats)
	}
}

func TestPredictIsSeedDeterministic(t *testing.T) {
	first, err := runCLI(t, "predict", "--seed", "42", "0.5", "0.8")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	second, err := runCLI(t, "predict", "--seed", "42", "0.5", "0.8")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if first != second || !strings.HasPrefix(first, "output[0] = ") {
		t.Fatalf("unexpected outputs: %q vs %q", first, second)
	}
}

func TestPredictRejectsNonNumericInput(t *testing.T) {
	if _, err := runCLI(t, "predict", "abc"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAnimateMemoryRecorder(t *testing.T) {
	out, err := runCLI(t, "animate", "--seed", "1", "--frames", "4", "--delta", "0.25")
	if err != nil {
		t.Fatalf("animate: %v", err)
	}
	if !strings.Contains(out, "frames=4") || !strings.Contains(out, "clock=1.000") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestAnimateRejectsZeroFrames(t *testing.T) {
	if _, err := runCLI(t, "animate", "--frames", "0"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDumpToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	out, err := runCLI(t, "dump", "--seed", "3", "--steps", "2", "--out", path)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, "dump saved to") {
		t.Fatalf("unexpected output: %s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(data), "CONNECTION DETAILS:") {
		t.Fatalf("unexpected dump:\n%s", data)
	}
}

func TestDotAndOrbit(t *testing.T) {
	out, err := runCLI(t, "dot", "--seed", "3")
	if err != nil {
		t.Fatalf("dot: %v", err)
	}
	if !strings.HasPrefix(out, "digraph neurograph {") {
		t.Fatalf("unexpected dot: %s", out)
	}

	out, err = runCLI(t, "orbit", "--seed", "3", "--time", "0")
	if err != nil {
		t.Fatalf("orbit: %v", err)
	}
	if !strings.Contains(out, "I1 input  pos=(600.0, 300.0)") {
		t.Fatalf("unexpected orbit output: %s", out)
	}
}
