package vm

import (
	"fmt"
	"io"
	"os"
)

// ---------------------------------------------------------------------------
// VM: The Siskin runtime core
// ---------------------------------------------------------------------------

// VM holds the value/dispatch substrate: the two symbol scopes, the class
// registry, the global singleton table, and the well-known built-in
// classes.
//
// A VM is single-threaded. All state is initialized exactly once
// by NewVM, before any dispatch, and is read-mostly afterwards. A
// concurrent host must serialize calls into a VM or give each execution
// context its own.
type VM struct {
	// Global tables
	Selectors     *SymbolTable // method-name scope
	GlobalSymbols *SymbolTable // top-level-name scope
	Classes       *ClassTable  // class name -> Class
	Globals       *GlobalTable // global symbol ID -> singleton value

	// Well-known classes (for fast-path checks and bootstrapping)
	NumberClass *Class
	StringClass *Class
	IOClass     *Class

	// Stdout receives console write output. Defaults to os.Stdout.
	Stdout io.Writer
}

// NewVM creates and bootstraps a new VM.
func NewVM() *VM {
	vm := newBareVM()
	vm.bootstrap()
	return vm
}

// newBareVM creates a VM with empty tables and no classes.
// Used by NewVM and by image loading, which restores tables itself.
func newBareVM() *VM {
	return &VM{
		Selectors:     NewSymbolTable(),
		GlobalSymbols: NewSymbolTable(),
		Classes:       NewClassTable(),
		Globals:       NewGlobalTable(),
		Stdout:        os.Stdout,
	}
}

// bootstrap creates the built-in classes and binds every primitive.
// Ordering invariant: runs to completion before any dispatch.
func (vm *VM) bootstrap() {
	vm.NumberClass = vm.createClass("Number")
	vm.StringClass = vm.createClass("String")

	RegisterPrimitives(vm)
}

// createClass creates and registers a class.
func (vm *VM) createClass(name string) *Class {
	c := NewClass(name)
	vm.Classes.Register(c)
	return c
}

// RegisterPrimitives binds the native method set onto the core classes and
// establishes the IO class with its "io" global singleton.
//
// It must be invoked exactly once after the core classes exist and before
// any user method dispatch. Image loading invokes it again on the restored
// VM; rebinding an already-bound slot silently replaces it, so that second
// run is idempotent.
func RegisterPrimitives(vm *VM) {
	vm.registerNumberPrimitives()
	vm.registerStringPrimitives()
	vm.registerIOPrimitives()
}

// ---------------------------------------------------------------------------
// Global singletons
// ---------------------------------------------------------------------------

// RegisterGlobalSingleton creates one instance of class, interns name in
// the global scope, and stores the instance at that slot. Bootstrap-time
// only: not re-entrant, not safe to call once dispatch has begun.
func (vm *VM) RegisterGlobalSingleton(class *Class, name string) Value {
	obj := NewInstance(class)
	symbol := vm.GlobalSymbols.Intern(name)
	v := obj.ToValue()
	vm.Globals.Set(symbol, v)
	return v
}

// LookupGlobal returns a global value by name.
func (vm *VM) LookupGlobal(name string) (Value, bool) {
	symbol := vm.GlobalSymbols.Lookup(name)
	if symbol < 0 {
		return 0, false
	}
	return vm.Globals.Get(symbol)
}

// SetGlobal stores a global value by name, interning the name if needed.
func (vm *VM) SetGlobal(name string, value Value) {
	vm.Globals.Set(vm.GlobalSymbols.Intern(name), value)
}

// LookupClass returns a class by name.
func (vm *VM) LookupClass(name string) *Class {
	return vm.Classes.Lookup(name)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

// DoesNotUnderstandError reports a method-resolution failure: no method was
// bound at the receiver class's slot for the selector.
type DoesNotUnderstandError struct {
	ClassName string
	Selector  string
}

func (e *DoesNotUnderstandError) Error() string {
	return fmt.Sprintf("%s does not understand %q", e.ClassName, e.Selector)
}

// ClassFor returns the class used to dispatch on a value, or nil for
// values that have no dispatchable class (class objects and the
// Unsupported sentinel).
func (vm *VM) ClassFor(v Value) *Class {
	switch {
	case v.IsNumber():
		return vm.NumberClass
	case v.IsString():
		return vm.StringClass
	case v.IsObject():
		return MustObjectFromValue(v).Class()
	default:
		return nil
	}
}

// Dispatch is the raw call-site interface: a class, an interned selector
// ID, and the argument array with argv[0] as the receiver. The boolean
// reports whether a method was bound at that slot; a false return is the
// caller's cue to raise a "does not understand" condition.
func (vm *VM) Dispatch(class *Class, selector int, argv []Value) (Value, bool) {
	if class == nil {
		return 0, false
	}
	method := class.Lookup(selector)
	if method == nil {
		return 0, false
	}
	return method.Invoke(vm, argv), true
}

// Send sends a named message to a receiver, resolving the class and
// selector and invoking the bound method. Returns a
// *DoesNotUnderstandError when resolution fails.
func (vm *VM) Send(receiver Value, selector string, args []Value) (Value, error) {
	class := vm.ClassFor(receiver)

	className := "<value>"
	if class != nil {
		className = class.Name
	}

	selectorID := vm.Selectors.Lookup(selector)
	if class == nil || selectorID < 0 {
		return 0, &DoesNotUnderstandError{ClassName: className, Selector: selector}
	}

	argv := make([]Value, 0, len(args)+1)
	argv = append(argv, receiver)
	argv = append(argv, args...)

	result, ok := vm.Dispatch(class, selectorID, argv)
	if !ok {
		return 0, &DoesNotUnderstandError{ClassName: className, Selector: selector}
	}
	return result, nil
}
