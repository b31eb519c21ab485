package model

import (
	"slices"
	"testing"
)

func TestEventLabel(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"decoded instruction", Event{Instr: "mov x0, x1", Opcode: "MOV"}, "mov x0, x1"},
		{"opcode fallback", Event{Opcode: "0xd2800021"}, "0xd2800021"},
		{"empty event", Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecutionRelation(t *testing.T) {
	x := Execution{
		Relations: []Relation{
			{Name: RelReadsFrom, Edges: [][2]string{{"a", "b"}}},
			{Name: RelCoherence},
		},
	}

	rel, ok := x.Relation(RelReadsFrom)
	if !ok {
		t.Fatal("Relation(rf) not found")
	}
	if len(rel.Edges) != 1 || rel.Edges[0] != [2]string{"a", "b"} {
		t.Errorf("Relation(rf).Edges = %v", rel.Edges)
	}

	if _, ok := x.Relation("fr"); ok {
		t.Error("Relation(fr) should not be found")
	}
}

func TestExecutionThreadIDs(t *testing.T) {
	x := Execution{
		Events: []Event{
			{Thread: 2, Name: "a"},
			{Thread: 0, Name: "b"},
			{Thread: 2, Name: "c"},
			{Thread: 1, Name: "d"},
			{Thread: 0, Name: "e"},
		},
	}

	// First-encounter order, not numeric order.
	want := []int{2, 0, 1}
	if got := x.ThreadIDs(); !slices.Equal(got, want) {
		t.Errorf("ThreadIDs() = %v, want %v", got, want)
	}

	var empty Execution
	if got := empty.ThreadIDs(); len(got) != 0 {
		t.Errorf("ThreadIDs() of empty execution = %v, want none", got)
	}
}

func TestExecutionThreadEvents(t *testing.T) {
	x := Execution{
		Events: []Event{
			{Thread: 0, Name: "a"},
			{Thread: 1, Name: "b"},
			{Thread: 0, Name: "c"},
		},
	}

	evs := x.ThreadEvents(0)
	if len(evs) != 2 || evs[0].Name != "a" || evs[1].Name != "c" {
		t.Errorf("ThreadEvents(0) = %v", evs)
	}
	if evs := x.ThreadEvents(7); len(evs) != 0 {
		t.Errorf("ThreadEvents(7) = %v, want none", evs)
	}
}
