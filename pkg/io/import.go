package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fmckeogh/isla/pkg/model"
)

// document is the top-level JSON shape emitted by the evaluator: the full
// list of candidate executions for one litmus test.
type document struct {
	Executions []model.Execution `json:"executions"`
}

// ReadExecutions decodes a JSON execution document from r.
//
// The input must be a JSON object with an "executions" array, each entry
// carrying "events", "sets", "relations" and "show" per the evaluator's
// output shape:
//
//	{
//	  "executions": [
//	    {
//	      "events": [{"opcode": "MOV", "po": 0, "thread_id": 0, "name": "a"}],
//	      "sets": [{"name": "W", "elems": ["a"]}],
//	      "relations": [{"name": "rf", "edges": [["a", "b"]]}],
//	      "show": ["rf"]
//	    }
//	  ]
//	}
//
// ReadExecutions checks document shape only: it returns an error for
// malformed JSON, for events with an empty "name", and for a document with
// no executions at all. Semantic properties (unique event names, relation
// endpoints that exist, DOT-safe identifiers) are the evaluator's contract
// and are not verified here or by the renderer.
//
// ReadExecutions does not close r.
func ReadExecutions(r io.Reader) ([]model.Execution, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Executions) == 0 {
		return nil, fmt.Errorf("document contains no executions")
	}

	for i, x := range doc.Executions {
		for j, e := range x.Events {
			if e.Name == "" {
				return nil, fmt.Errorf("execution %d: event %d has no name", i, j)
			}
		}
	}
	return doc.Executions, nil
}

// ImportJSON reads the JSON execution document at path.
//
// ImportJSON opens the file, decodes it using [ReadExecutions], and closes
// the file. Errors wrap the underlying cause with the file path for
// context.
func ImportJSON(path string) ([]model.Execution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	execs, err := ReadExecutions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return execs, nil
}
