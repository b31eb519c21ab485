package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	islaerrors "github.com/fmckeogh/isla/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"", true},
		{"SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !islaerrors.Is(err, islaerrors.ErrCodeInvalidFormat) {
				t.Errorf("validateFormat(%q) code = %v", tt.format, islaerrors.GetCode(err))
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		want   string
	}{
		{"explicit output", "out.svg", "exec.json", "svg", "out.svg"},
		{"derived from input", "", "exec.json", "svg", "exec.svg"},
		{"derived dot", "", "mp.json", "dot", "mp.dot"},
		{"stdout passthrough", "-", "exec.json", "png", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input, tt.format); got != tt.want {
				t.Errorf("basePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawList(t *testing.T) {
	cfg := Config{Relations: []string{"rf", "co"}}

	// Flag wins over config.
	got := drawList("co, fr", cfg)
	if len(got) != 2 || got[0] != "co" || got[1] != "fr" {
		t.Errorf("drawList(flag) = %v", got)
	}

	// Config wins over default.
	got = drawList("", cfg)
	if len(got) != 2 || got[0] != "rf" || got[1] != "co" {
		t.Errorf("drawList(config) = %v", got)
	}

	// Nil means keep the renderer default.
	if got := drawList("", Config{}); got != nil {
		t.Errorf("drawList(default) = %v, want nil", got)
	}
}

func TestRunRender_DOTOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "exec.json")
	doc := `{
  "executions": [
    {
      "events": [
        {"opcode": "MOV", "po": 0, "thread_id": 0, "name": "a"},
        {"instr": "mov x0, x1", "opcode": "MOV", "po": 1, "thread_id": 0, "name": "b", "value": "5"}
      ],
      "relations": [{"name": "rf", "edges": [["a", "b"]]}]
    }
  ]
}`
	if err := os.WriteFile(input, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "exec.dot")
	opts := &renderOpts{output: output, format: formatDOT}
	if err := runRender(context.Background(), input, opts, defaultConfig()); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "digraph Exec {") {
		t.Error("output missing digraph wrapper")
	}
	if !strings.Contains(out, `a -> b [color=crimson,label="  rf  ",fontcolor=crimson]`) {
		t.Errorf("output missing rf edge:\n%s", out)
	}
}

func TestRunRender_BadExecutionIndex(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "exec.json")
	doc := `{"executions": [{"events": [{"opcode": "NOP", "po": 0, "thread_id": 0, "name": "a"}]}]}`
	if err := os.WriteFile(input, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{execution: 5, format: formatDOT}
	err := runRender(context.Background(), input, opts, defaultConfig())
	if !islaerrors.Is(err, islaerrors.ErrCodeInvalidExecution) {
		t.Errorf("runRender() error = %v, want INVALID_EXECUTION", err)
	}
}
