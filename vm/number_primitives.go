package vm

// ---------------------------------------------------------------------------
// Number Primitives
// ---------------------------------------------------------------------------

func (vm *VM) registerNumberPrimitives() {
	c := vm.NumberClass

	c.Bind0(vm.Selectors, "abs", func(_ *VM, recv Value) Value {
		f := recv.Float64()
		if f < 0 {
			return FromFloat64(-f)
		}
		return recv
	})

	c.Bind0(vm.Selectors, "toString", func(_ *VM, recv Value) Value {
		return StringValueOf(FormatNumber(recv.Float64()))
	})

	c.Bind1(vm.Selectors, "-", func(_ *VM, recv Value, arg Value) Value {
		if !arg.IsNumber() {
			return Unsupported
		}
		return FromFloat64(recv.Float64() - arg.Float64())
	})

	c.Bind1(vm.Selectors, "+", func(_ *VM, recv Value, arg Value) Value {
		if !arg.IsNumber() {
			return Unsupported
		}
		return FromFloat64(recv.Float64() + arg.Float64())
	})

	c.Bind1(vm.Selectors, "*", func(_ *VM, recv Value, arg Value) Value {
		if !arg.IsNumber() {
			return Unsupported
		}
		return FromFloat64(recv.Float64() * arg.Float64())
	})

	// Division by zero follows IEEE semantics, not a fault.
	c.Bind1(vm.Selectors, "/", func(_ *VM, recv Value, arg Value) Value {
		if !arg.IsNumber() {
			return Unsupported
		}
		return FromFloat64(recv.Float64() / arg.Float64())
	})
}
