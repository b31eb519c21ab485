// Package render contains graph rendering backends for candidate
// executions.
//
// # Overview
//
// Rendering happens in two stages. A backend first serializes the selected
// candidate execution to a textual graph description, then optionally hands
// that description to an external layout engine for rasterization.
//
// Backends:
//   - [dot]: Graphviz DOT output, with SVG/PNG rasterization via the
//     embedded Graphviz engine
//
// # DOT Output
//
// The [dot] subpackage serializes executions as DOT digraphs: one dashed
// cluster per hardware thread, program-order chains inside each cluster,
// and colored edges for the drawn relations.
//
//	r, err := dot.New(executions)
//	src := r.Render()
//	svg, err := dot.RenderSVG(ctx, src)
//
// Layout is never computed here. Node and edge placement is entirely the
// layout engine's concern.
//
// [dot]: github.com/fmckeogh/isla/pkg/render/dot
package render
