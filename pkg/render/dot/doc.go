// Package dot renders candidate memory-model executions as Graphviz DOT text.
//
// # Overview
//
// This package is the transformation layer between the structured execution
// data produced by a memory-model evaluator and the textual graph
// description consumed by Graphviz. It draws each execution as one cluster
// per hardware thread (program-order chains inside, anchored under a
// distinguished initial-state node) plus one colored edge set per drawn
// relation.
//
// # Usage
//
// Build a renderer over candidate executions, pick one, and render:
//
//	r, err := dot.New(executions)
//	if err != nil {
//	    return err
//	}
//	r.SelectExecution(2)
//	r.SetDraw([]string{model.RelReadsFrom, model.RelCoherence})
//	src := r.Render()
//	svg, err := dot.RenderSVG(ctx, src)
//
// # Draw List
//
// The draw list is the caller-controlled, authoritative list of relation
// names to visualize; each execution's own "show" hint is ignored here.
// Draw-list order is emission order, so later relations layer visually over
// earlier ones. Names with no matching relation are skipped silently.
//
// # Styling
//
// Relation colors and layout hints come from a fixed table ([StyleOf]); any
// name outside the known vocabulary is drawn black with no extra
// attributes. Coherence edges alone carry a ranking constraint so the
// layout engine keeps coherence order readable left to right.
//
// # Trust Model
//
// The renderer trusts its input: event names are spliced into the DOT text
// verbatim, relation endpoints are not checked against the event set, and
// per-thread event order is taken as program order. Malformed input yields
// malformed DOT, surfaced only when Graphviz rejects it.
//
// # Dependencies
//
// [RenderSVG] and [RenderPNG] use [github.com/goccy/go-graphviz] for
// in-process layout and rasterization.
package dot
