package vm

import "testing"

func TestSelectorFor(t *testing.T) {
	tests := []struct {
		name string
		argc int
		want string
	}{
		{"abs", 0, "abs"},
		{"toString", 0, "toString"},
		{"+", 1, "+ "},
		{"contains", 1, "contains "},
		{"write", 1, "write "},
		{"between", 2, "between  "},
	}

	for _, tt := range tests {
		if got := SelectorFor(tt.name, tt.argc); got != tt.want {
			t.Errorf("SelectorFor(%q, %d) = %q, want %q", tt.name, tt.argc, got, tt.want)
		}
	}
}

func TestSelectorHelpers(t *testing.T) {
	if got := UnarySelector("abs"); got != "abs" {
		t.Errorf("UnarySelector = %q, want abs", got)
	}
	if got := BinarySelector("+"); got != "+ " {
		t.Errorf("BinarySelector = %q, want \"+ \"", got)
	}
}

func TestSelectorArity(t *testing.T) {
	tests := []struct {
		selector string
		want     int
	}{
		{"abs", 0},
		{"+ ", 1},
		{"between  ", 2},
	}

	for _, tt := range tests {
		if got := SelectorArity(tt.selector); got != tt.want {
			t.Errorf("SelectorArity(%q) = %d, want %d", tt.selector, got, tt.want)
		}
	}
}

func TestSelectorBase(t *testing.T) {
	if got := SelectorBase("contains "); got != "contains" {
		t.Errorf("SelectorBase = %q, want contains", got)
	}
	if got := SelectorBase("abs"); got != "abs" {
		t.Errorf("SelectorBase = %q, want abs", got)
	}
}
