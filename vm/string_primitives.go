package vm

import "bytes"

// ---------------------------------------------------------------------------
// String Primitives
// ---------------------------------------------------------------------------

func (vm *VM) registerStringPrimitives() {
	c := vm.StringClass

	// Substring search. The result is a Number (1 or 0): the value model
	// has no boolean variant.
	c.Bind1(vm.Selectors, "contains", func(_ *VM, recv Value, arg Value) Value {
		if !arg.IsString() {
			return Unsupported
		}
		s := StringBytes(recv)
		search := StringBytes(arg)

		// Corner case, the empty string contains the empty string.
		if len(s) == 0 && len(search) == 0 {
			return FromFloat64(1)
		}

		if bytes.Contains(s, search) {
			return FromFloat64(1)
		}
		return FromFloat64(0)
	})

	// Byte length, not logical characters.
	c.Bind0(vm.Selectors, "count", func(_ *VM, recv Value) Value {
		return FromFloat64(float64(MustStringFromValue(recv).Len()))
	})

	// Identity: the receiver itself, not a copy.
	c.Bind0(vm.Selectors, "toString", func(_ *VM, recv Value) Value {
		return recv
	})

	c.Bind1(vm.Selectors, "+", func(_ *VM, recv Value, arg Value) Value {
		if !arg.IsString() {
			return Unsupported
		}
		left := StringBytes(recv)
		right := StringBytes(arg)

		// A fresh exactly-sized buffer, owned solely by the result.
		result := make([]byte, 0, len(left)+len(right))
		result = append(result, left...)
		result = append(result, right...)
		return NewStringValue(result)
	})
}
