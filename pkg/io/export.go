package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fmckeogh/isla/pkg/model"
)

// WriteExecutions encodes the executions as a JSON document and writes it
// to w. The output uses the same shape [ReadExecutions] accepts, so a
// document round-trips through import and export unchanged in content.
func WriteExecutions(executions []model.Execution, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Executions: executions}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the executions to a JSON file at path.
// This is a convenience wrapper around [WriteExecutions] for file output.
func ExportJSON(executions []model.Execution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteExecutions(executions, f)
}
