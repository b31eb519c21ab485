package dot

import "github.com/fmckeogh/isla/pkg/model"

// Style describes how edges of one relation are drawn: the Graphviz color
// used for both the edge and its label, and an optional raw attribute
// fragment appended verbatim to the edge's attribute list.
type Style struct {
	Color string
	Extra string
}

// styles maps each well-known relation name to its style. Coherence is the
// one relation whose left-to-right direction matters for readability, so it
// alone asks the layout engine to treat its edges as ranking constraints.
var styles = map[string]Style{
	model.RelReadsFrom:    {Color: "crimson"},
	model.RelCoherence:    {Color: "goldenrod", Extra: ",constraint=true"},
	model.RelFromReads:    {Color: "limegreen"},
	model.RelAddrDep:      {Color: "blue2"},
	model.RelDataDep:      {Color: "darkgreen"},
	model.RelCtrlDep:      {Color: "darkorange2"},
	model.RelReadModWrite: {Color: "firebrick4"},
}

// defaultStyle is used for any relation name outside the known vocabulary.
var defaultStyle = Style{Color: "black"}

// StyleOf returns the style for a relation name. Unknown names get the
// default style; the function is total over string input.
func StyleOf(relation string) Style {
	if s, ok := styles[relation]; ok {
		return s
	}
	return defaultStyle
}

// ColorOf returns the edge and label color for a relation name.
func ColorOf(relation string) string { return StyleOf(relation).Color }

// ExtraAttributesOf returns the extra attribute fragment for a relation
// name, empty for every relation except coherence.
func ExtraAttributesOf(relation string) string { return StyleOf(relation).Extra }
