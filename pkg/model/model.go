// Package model defines the shared shape of candidate executions produced by
// a memory-model evaluator.
//
// An execution is one candidate interleaving/outcome of a concurrent litmus
// test: the dynamic instruction events of every thread plus named binary
// relations between them (reads-from, coherence, dependencies, and so on).
// The types here are plain data carriers - the evaluator produces them once
// and downstream consumers (the DOT renderer, the CLI) only read them.
//
// Event names act as node identifiers in rendered output and are trusted to
// be unique within an execution and safe to splice into the DOT grammar.
// Nothing in this package validates that contract.
package model

// Well-known relation names emitted by the evaluator. Any other name is
// legal; it simply gets default styling when rendered.
const (
	RelReadsFrom    = "rf"   // a read's source write
	RelCoherence    = "co"   // per-location total order of writes
	RelFromReads    = "fr"   // read ordered before later writes to its location
	RelAddrDep      = "addr" // address dependency
	RelDataDep      = "data" // data dependency
	RelCtrlDep      = "ctrl" // control dependency
	RelReadModWrite = "rmw"  // atomic read paired with its write
)

// Event is one dynamic instruction instance within an execution.
//
// Instr holds the decoded mnemonic and is empty when the underlying binary
// could not be disassembled; Opcode then serves as the display fallback.
// Value is the observed value (read or written), empty when there is none.
// PO orders events within a thread; it is unique per thread but carries no
// meaning across threads.
type Event struct {
	Instr  string `json:"instr,omitempty"`
	Opcode string `json:"opcode"`
	PO     int    `json:"po"`
	Thread int    `json:"thread_id"`
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
}

// Label returns the display label for the event: the decoded mnemonic when
// available, otherwise the raw opcode.
func (e Event) Label() string {
	if e.Instr != "" {
		return e.Instr
	}
	return e.Opcode
}

// NamedSet is a named collection of event names. Sets are carried through
// for views other than the graph renderer (e.g. per-location groupings) and
// are not consumed when emitting DOT.
type NamedSet struct {
	Name  string   `json:"name"`
	Elems []string `json:"elems"`
}

// Relation is a named binary relation over events, kept as an ordered list
// of directed (source, target) event-name pairs. Edge order is preserved
// from the evaluator and determines emission order when rendered.
type Relation struct {
	Name  string      `json:"name"`
	Edges [][2]string `json:"edges"`
}

// Execution is one complete candidate model graph: every event, the named
// sets, the named relations, and the evaluator's own hint of which relations
// it considers interesting ("show"). The hint is informational only - the
// renderer's draw list decides what is actually emitted.
//
// Events are expected to arrive already sorted by program order within each
// thread. Consumers that chain events rely on that ordering rather than
// re-sorting (see the dot package).
type Execution struct {
	Events    []Event    `json:"events"`
	Sets      []NamedSet `json:"sets"`
	Relations []Relation `json:"relations"`
	Show      []string   `json:"show"`
}

// Relation returns the relation with the given name and true, or a zero
// relation and false when the execution has no relation by that name.
func (x *Execution) Relation(name string) (Relation, bool) {
	for _, r := range x.Relations {
		if r.Name == name {
			return r, true
		}
	}
	return Relation{}, false
}

// ThreadIDs returns the distinct thread identifiers of the execution's
// events, in the order each identifier is first encountered. The result is
// deterministic for a fixed event list.
func (x *Execution) ThreadIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, e := range x.Events {
		if !seen[e.Thread] {
			seen[e.Thread] = true
			ids = append(ids, e.Thread)
		}
	}
	return ids
}

// ThreadEvents returns the events belonging to the given thread, preserving
// their order in the event list.
func (x *Execution) ThreadEvents(thread int) []Event {
	var evs []Event
	for _, e := range x.Events {
		if e.Thread == thread {
			evs = append(evs, e)
		}
	}
	return evs
}
