// Package io provides JSON import and export of candidate executions.
//
// # Overview
//
// The memory-model evaluator emits its candidate executions as a single
// JSON document; this package decodes that document into []model.Execution
// and re-encodes it for tooling that wants to filter or archive evaluator
// output.
//
// # JSON Format
//
// The document has one top-level array:
//
//	{
//	  "executions": [
//	    {
//	      "events": [
//	        {"instr": "mov x0, x1", "opcode": "MOV", "po": 0,
//	         "thread_id": 0, "name": "a", "value": "5"}
//	      ],
//	      "sets": [{"name": "W", "elems": ["a"]}],
//	      "relations": [{"name": "rf", "edges": [["a", "b"]]}],
//	      "show": ["rf", "co"]
//	    }
//	  ]
//	}
//
// Event fields "instr" and "value" are optional; "opcode" is the display
// fallback when "instr" is absent. Relation edges are (source, target)
// event-name pairs.
//
// # Validation
//
// Import checks document shape only (valid JSON, at least one execution,
// every event named). The deeper contract - unique event names, relation
// endpoints naming real events, DOT-safe identifiers - belongs to the
// evaluator and is deliberately not re-checked; see the dot package's trust
// model.
package io
