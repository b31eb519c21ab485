package dot

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fmckeogh/isla/pkg/model"
)

var (
	// ErrNoExecutions is returned by [New] when called with an empty
	// candidate list. There is no valid default selection without at least
	// one execution.
	ErrNoExecutions = errors.New("no candidate executions")

	// ErrExecutionOutOfRange is returned by [Renderer.SelectExecution] when
	// the index does not refer to a held candidate.
	ErrExecutionOutOfRange = errors.New("execution index out of range")
)

// defaultDraw is the default relation draw order. Later entries are emitted
// after (and so layer visually over) earlier ones.
var defaultDraw = []string{
	model.RelReadsFrom,
	model.RelCoherence,
	model.RelFromReads,
	model.RelAddrDep,
	model.RelDataDep,
	model.RelCtrlDep,
	model.RelReadModWrite,
}

// DefaultDraw returns the default relation draw order.
func DefaultDraw() []string { return slices.Clone(defaultDraw) }

// Renderer serializes one of a set of candidate executions into Graphviz
// DOT text. It holds the full candidate list, an index selecting the
// current execution, and the draw list controlling which relations are
// emitted and in what order.
//
// Renderer is not safe for concurrent use; callers must serialize selection
// changes against Render calls.
type Renderer struct {
	executions []model.Execution
	current    int
	draw       []string
}

// New creates a renderer over the given candidate executions. The first
// candidate is selected as current and the draw list starts as
// [DefaultDraw]. Returns ErrNoExecutions when the list is empty.
func New(executions []model.Execution) (*Renderer, error) {
	if len(executions) == 0 {
		return nil, ErrNoExecutions
	}
	return &Renderer{
		executions: executions,
		draw:       DefaultDraw(),
	}, nil
}

// Len returns the number of held candidate executions.
func (r *Renderer) Len() int { return len(r.executions) }

// CurrentIndex returns the index of the current execution.
func (r *Renderer) CurrentIndex() int { return r.current }

// Current returns the currently selected execution.
func (r *Renderer) Current() model.Execution { return r.executions[r.current] }

// SelectExecution makes candidate i the current execution.
// Returns ErrExecutionOutOfRange if i does not refer to a held candidate.
func (r *Renderer) SelectExecution(i int) error {
	if i < 0 || i >= len(r.executions) {
		return fmt.Errorf("%w: %d (have %d)", ErrExecutionOutOfRange, i, len(r.executions))
	}
	r.current = i
	return nil
}

// SetDraw replaces the draw list. Any ordered list of relation names is
// accepted; names with no matching relation in the current execution simply
// produce no edges.
func (r *Renderer) SetDraw(relations []string) {
	r.draw = slices.Clone(relations)
}

// Draw returns a copy of the current draw list.
func (r *Renderer) Draw() []string { return slices.Clone(r.draw) }

// Render serializes the current execution as a Graphviz digraph.
//
// The output starts with the distinguished IW node for the initial memory
// state, followed by one dashed cluster per thread holding the thread's
// event nodes and a program-order chain through them, one invisible anchor
// edge from IW to each thread's earliest event, and finally the edges of
// every draw-listed relation in draw order.
//
// Events are chained in the order they appear in the execution's event
// list, which the evaluator is trusted to have sorted by program order per
// thread; Render does not re-sort. Event names are spliced into the output
// verbatim, so they must be valid DOT identifiers. Render is a pure
// function of the renderer's state.
func (r *Renderer) Render() string {
	x := &r.executions[r.current]

	var buf bytes.Buffer
	buf.WriteString("digraph Exec {\n")
	buf.WriteString("  IW [label=\"Initial State\",shape=hexagon];\n")

	threads := x.ThreadIDs()
	for _, tid := range threads {
		evs := x.ThreadEvents(tid)
		fmt.Fprintf(&buf, "  subgraph cluster%d {\n", tid)
		fmt.Fprintf(&buf, "    label=\"Thread #%d\"\n", tid)
		buf.WriteString("    style=dashed\n")
		buf.WriteString("    color=gray50\n")

		names := make([]string, len(evs))
		for i, e := range evs {
			names[i] = e.Name
			label := e.Label()
			if e.Value != "" {
				label += `\l` + e.Value
			}
			fmt.Fprintf(&buf, "    %s [shape=box,label=\"%s\"];\n", e.Name, label)
		}
		fmt.Fprintf(&buf, "    %s;\n", strings.Join(names, " -> "))
		buf.WriteString("  }\n")
	}

	// Anchor each cluster below the initial state without implying a real
	// dependency edge. Strict less-than keeps the earlier event on PO ties.
	for _, tid := range threads {
		evs := x.ThreadEvents(tid)
		first := evs[0]
		for _, e := range evs[1:] {
			if e.PO < first.PO {
				first = e
			}
		}
		fmt.Fprintf(&buf, "  IW -> %s [style=invis,constraint=true]\n", first.Name)
	}

	for _, name := range r.draw {
		rel, ok := x.Relation(name)
		if !ok {
			continue
		}
		style := StyleOf(name)
		for _, edge := range rel.Edges {
			fmt.Fprintf(&buf, "  %s -> %s [color=%s,label=\"  %s  \",fontcolor=%s%s]\n",
				edge[0], edge[1], style.Color, rel.Name, style.Color, style.Extra)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
