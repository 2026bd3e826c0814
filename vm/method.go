package vm

// Method represents a callable method in the Siskin VM.
//
// The calling convention: argv[0] is always the receiver and subsequent
// slots are the call's arguments. A primitive returns a normal Value or the
// Unsupported sentinel; it never raises for an operand-type mismatch.
//
// PrimitiveMethod is the only kind this core populates. The interface is
// the extension point for a future user-defined (compiled) method kind.
type Method interface {
	Invoke(vm *VM, argv []Value) Value
}

// PrimitiveFunc is a Go function that implements a primitive method with
// variable arity. argv[0] is the receiver.
type PrimitiveFunc func(vm *VM, argv []Value) Value

// Method0Func is a primitive taking no arguments beyond the receiver.
type Method0Func func(vm *VM, recv Value) Value

// Method1Func is a primitive taking one argument.
type Method1Func func(vm *VM, recv Value, arg Value) Value

// ---------------------------------------------------------------------------
// Arity-specialized method wrappers
// ---------------------------------------------------------------------------

// PrimitiveMethod wraps a general PrimitiveFunc as a Method.
type PrimitiveMethod struct {
	name string
	fn   PrimitiveFunc
}

func (m *PrimitiveMethod) Invoke(vm *VM, argv []Value) Value {
	return m.fn(vm, argv)
}

func (m *PrimitiveMethod) Name() string { return m.name }
func (m *PrimitiveMethod) Arity() int   { return -1 } // Variable arity

// Method0 wraps a zero-argument primitive.
type Method0 struct {
	name string
	fn   Method0Func
}

func (m *Method0) Invoke(vm *VM, argv []Value) Value {
	return m.fn(vm, argv[0])
}

func (m *Method0) Name() string { return m.name }
func (m *Method0) Arity() int   { return 0 }

// Method1 wraps a one-argument primitive.
type Method1 struct {
	name string
	fn   Method1Func
}

func (m *Method1) Invoke(vm *VM, argv []Value) Value {
	return m.fn(vm, argv[0], argv[1])
}

func (m *Method1) Name() string { return m.name }
func (m *Method1) Arity() int   { return 1 }

// ---------------------------------------------------------------------------
// Factory functions
// ---------------------------------------------------------------------------

// NewPrimitiveMethod creates a new primitive method with variable arity.
func NewPrimitiveMethod(name string, fn PrimitiveFunc) Method {
	return &PrimitiveMethod{name: name, fn: fn}
}

// NewMethod0 creates a new zero-argument primitive method.
func NewMethod0(name string, fn Method0Func) Method {
	return &Method0{name: name, fn: fn}
}

// NewMethod1 creates a new one-argument primitive method.
func NewMethod1(name string, fn Method1Func) Method {
	return &Method1{name: name, fn: fn}
}

// ---------------------------------------------------------------------------
// Method metadata
// ---------------------------------------------------------------------------

// NamedMethod is implemented by methods that have a name.
type NamedMethod interface {
	Method
	Name() string
}

// ArityMethod is implemented by methods that have a fixed arity.
type ArityMethod interface {
	Method
	Arity() int
}

// MethodName returns the name of a method if it implements NamedMethod.
func MethodName(m Method) string {
	if nm, ok := m.(NamedMethod); ok {
		return nm.Name()
	}
	return "<anonymous>"
}

// MethodArity returns the arity of a method if it implements ArityMethod.
// Returns -1 for variable arity methods.
func MethodArity(m Method) int {
	if am, ok := m.(ArityMethod); ok {
		return am.Arity()
	}
	return -1
}
