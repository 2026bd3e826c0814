package vm

import "fmt"

// IOGlobalName is the top-level name of the console singleton.
const IOGlobalName = "io"

// ---------------------------------------------------------------------------
// IO Primitives
// ---------------------------------------------------------------------------

// registerIOPrimitives creates the IO class (if this VM doesn't have one
// yet), binds the console write primitive, and registers the "io" global
// singleton. An image-restored VM already carries both; rebinding the
// primitive is the only effect of a second run.
func (vm *VM) registerIOPrimitives() {
	if vm.IOClass == nil {
		if existing := vm.Classes.Lookup("IO"); existing != nil {
			vm.IOClass = existing
		} else {
			vm.IOClass = vm.createClass("IO")
		}
	}
	c := vm.IOClass

	// Prints the argument's text form plus a line terminator and returns
	// the argument unchanged, so writes can be chained.
	c.Bind1(vm.Selectors, "write", func(vm *VM, _ Value, arg Value) Value {
		fmt.Fprintf(vm.Stdout, "%s\n", ValueText(arg))
		return arg
	})

	if _, ok := vm.LookupGlobal(IOGlobalName); !ok {
		vm.RegisterGlobalSingleton(c, IOGlobalName)
	}
}
