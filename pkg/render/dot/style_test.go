package dot

import (
	"testing"

	"github.com/fmckeogh/isla/pkg/model"
)

func TestStyleOf(t *testing.T) {
	tests := []struct {
		relation  string
		wantColor string
		wantExtra string
	}{
		{model.RelReadsFrom, "crimson", ""},
		{model.RelCoherence, "goldenrod", ",constraint=true"},
		{model.RelFromReads, "limegreen", ""},
		{model.RelAddrDep, "blue2", ""},
		{model.RelDataDep, "darkgreen", ""},
		{model.RelCtrlDep, "darkorange2", ""},
		{model.RelReadModWrite, "firebrick4", ""},
		{"po-loc", "black", ""},
		{"", "black", ""},
	}

	for _, tt := range tests {
		t.Run(tt.relation, func(t *testing.T) {
			s := StyleOf(tt.relation)
			if s.Color != tt.wantColor {
				t.Errorf("StyleOf(%q).Color = %q, want %q", tt.relation, s.Color, tt.wantColor)
			}
			if s.Extra != tt.wantExtra {
				t.Errorf("StyleOf(%q).Extra = %q, want %q", tt.relation, s.Extra, tt.wantExtra)
			}
		})
	}
}

func TestColorOf(t *testing.T) {
	if got := ColorOf(model.RelReadsFrom); got != "crimson" {
		t.Errorf("ColorOf(rf) = %q, want crimson", got)
	}
	if got := ColorOf("unheard-of"); got != "black" {
		t.Errorf("ColorOf(unknown) = %q, want black", got)
	}
}

func TestExtraAttributesOf_OnlyCoherence(t *testing.T) {
	for _, rel := range DefaultDraw() {
		extra := ExtraAttributesOf(rel)
		if rel == model.RelCoherence {
			if extra != ",constraint=true" {
				t.Errorf("ExtraAttributesOf(co) = %q, want ,constraint=true", extra)
			}
			continue
		}
		if extra != "" {
			t.Errorf("ExtraAttributesOf(%q) = %q, want empty", rel, extra)
		}
	}
}
