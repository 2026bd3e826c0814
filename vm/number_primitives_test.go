package vm

import (
	"math"
	"strconv"
	"testing"
)

// numSend dispatches a bound selector against a number receiver.
func numSend(t *testing.T, vm *VM, selector string, recv float64, args ...Value) Value {
	t.Helper()
	argv := append([]Value{FromFloat64(recv)}, args...)
	result, ok := vm.Dispatch(vm.NumberClass, vm.Selectors.Lookup(selector), argv)
	if !ok {
		t.Fatalf("Number does not understand %q", selector)
	}
	return result
}

func TestNumberAbs(t *testing.T) {
	vm := NewVM()

	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1.5, 1.5},
		{-1.5, 1.5},
		{-0.0, 0},
		{math.Inf(-1), math.Inf(1)},
	}

	for _, tt := range tests {
		got := numSend(t, vm, "abs", tt.in)
		if !got.IsNumber() || got.Float64() != tt.want {
			t.Errorf("abs(%v) = %v, want %v", tt.in, got.Float64(), tt.want)
		}
		if got.Float64() < 0 {
			t.Errorf("abs(%v) is negative", tt.in)
		}
	}
}

func TestNumberArithmetic(t *testing.T) {
	vm := NewVM()

	tests := []struct {
		selector string
		a, b     float64
		want     float64
	}{
		{"+ ", 1, 2, 3},
		{"+ ", -1.5, 0.25, -1.25},
		{"- ", 1, 2, -1},
		{"- ", 2.5, 0.5, 2},
		{"* ", 3, 4, 12},
		{"* ", -2, 0.5, -1},
		{"/ ", 1, 2, 0.5},
		{"/ ", -6, 3, -2},
	}

	for _, tt := range tests {
		got := numSend(t, vm, tt.selector, tt.a, FromFloat64(tt.b))
		if !got.IsNumber() || got.Float64() != tt.want {
			t.Errorf("%v %q %v = %v, want %v", tt.a, tt.selector, tt.b, got.Float64(), tt.want)
		}
	}
}

func TestNumberDivisionByZero(t *testing.T) {
	vm := NewVM()

	// IEEE semantics, not a fault.
	if got := numSend(t, vm, "/ ", 1, FromFloat64(0)); !math.IsInf(got.Float64(), 1) {
		t.Errorf("1/0 = %v, want +Inf", got.Float64())
	}
	if got := numSend(t, vm, "/ ", -1, FromFloat64(0)); !math.IsInf(got.Float64(), -1) {
		t.Errorf("-1/0 = %v, want -Inf", got.Float64())
	}
	if got := numSend(t, vm, "/ ", 0, FromFloat64(0)); !math.IsNaN(got.Float64()) {
		t.Errorf("0/0 = %v, want NaN", got.Float64())
	}
}

func TestNumberBinaryOpsRejectNonNumbers(t *testing.T) {
	vm := NewVM()

	operands := []Value{
		StringValueOf("x"),
		NewInstance(vm.IOClass).ToValue(),
		vm.NumberClass.ToValue(),
	}

	for _, selector := range []string{"+ ", "- ", "* ", "/ "} {
		for _, operand := range operands {
			got := numSend(t, vm, selector, 1, operand)
			// Identity-equal to the single process sentinel.
			if got != Unsupported {
				t.Errorf("%q with non-number operand = %v, want Unsupported", selector, got)
			}
		}
	}
}

func TestNumberToString(t *testing.T) {
	vm := NewVM()

	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{0, "0"},
		{-3, "-3"},
		{0.25, "0.25"},
	}

	for _, tt := range tests {
		got := numSend(t, vm, "toString", tt.in)
		if !got.IsString() {
			t.Fatalf("toString(%v) is not a string", tt.in)
		}
		if s := MustStringFromValue(got).String(); s != tt.want {
			t.Errorf("toString(%v) = %q, want %q", tt.in, s, tt.want)
		}
	}
}

func TestNumberToStringRoundTrips(t *testing.T) {
	vm := NewVM()

	for _, f := range []float64{1.5, 0.1, 1.0 / 3.0, -123456.789, math.MaxFloat64} {
		got := numSend(t, vm, "toString", f)
		parsed, err := strconv.ParseFloat(MustStringFromValue(got).String(), 64)
		if err != nil {
			t.Fatalf("cannot parse toString(%v): %v", f, err)
		}
		if parsed != f {
			t.Errorf("toString(%v) round-tripped to %v", f, parsed)
		}
	}
}
