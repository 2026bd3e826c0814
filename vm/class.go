package vm

import (
	"sync"
	"unsafe"
)

// Class represents a Siskin class. Each class owns its method table: a
// sparse array of method slots indexed by selector ID. Lookup is a direct
// index, never a search; an index beyond the current length is equivalent
// to an unbound slot.
type Class struct {
	Name string

	methods []Method
}

// NewClass creates a new class with an empty method table.
func NewClass(name string) *Class {
	return &Class{
		Name:    name,
		methods: make([]Method, 0, 32), // Pre-allocate for typical class
	}
}

// ---------------------------------------------------------------------------
// Method table
// ---------------------------------------------------------------------------

// Lookup finds a method by selector ID. Returns nil if no method was ever
// bound at that slot; resolving nil into a "does not understand" fault is
// the caller's job.
func (c *Class) Lookup(selector int) Method {
	if selector >= 0 && selector < len(c.methods) {
		return c.methods[selector]
	}
	return nil
}

// BindMethod adds or replaces a method at the given selector ID.
// The methods array is grown as needed. Rebinding silently replaces the
// prior method, so a later registration can override an earlier one.
func (c *Class) BindMethod(selector int, method Method) {
	if selector >= len(c.methods) {
		// Grow the methods slice
		newMethods := make([]Method, selector+1)
		copy(newMethods, c.methods)
		c.methods = newMethods
	}
	c.methods[selector] = method
}

// Bind interns name in the selector table and binds method at the
// resulting slot. Returns the selector ID.
func (c *Class) Bind(selectors *SymbolTable, name string, method Method) int {
	selector := selectors.Intern(name)
	c.BindMethod(selector, method)
	return selector
}

// Bind0 binds a zero-argument primitive under the unary form of name.
func (c *Class) Bind0(selectors *SymbolTable, name string, fn Method0Func) {
	sel := UnarySelector(name)
	c.Bind(selectors, sel, NewMethod0(sel, fn))
}

// Bind1 binds a one-argument primitive under the one-argument form of name.
func (c *Class) Bind1(selectors *SymbolTable, name string, fn Method1Func) {
	sel := BinarySelector(name)
	c.Bind(selectors, sel, NewMethod1(sel, fn))
}

// HasMethod returns true if a method is bound at the given selector ID.
func (c *Class) HasMethod(selector int) bool {
	return c.Lookup(selector) != nil
}

// MethodCount returns the number of method slots (including empty slots).
func (c *Class) MethodCount() int {
	return len(c.methods)
}

// BoundSelectors returns the selector IDs of all bound slots, in slot order.
func (c *Class) BoundSelectors() []int {
	var result []int
	for i, m := range c.methods {
		if m != nil {
			result = append(result, i)
		}
	}
	return result
}

// String implements the Stringer interface.
func (c *Class) String() string {
	return c.Name
}

// ---------------------------------------------------------------------------
// Value boxing
// ---------------------------------------------------------------------------

// ToValue boxes the class as a Value so it can be stored in global slots
// or passed around.
func (c *Class) ToValue() Value {
	return boxPointer(tagClass, unsafe.Pointer(c))
}

// ClassFromValue extracts a Class pointer from a NaN-boxed Value.
// Returns nil if the value is not a class.
func ClassFromValue(v Value) *Class {
	if !v.IsClass() {
		return nil
	}
	return (*Class)(v.classPtr())
}

// ---------------------------------------------------------------------------
// ClassTable: Global class registry
// ---------------------------------------------------------------------------

// ClassTable manages registered classes by name. Besides lookup, it roots
// every class for the garbage collector: a boxed class pointer is invisible
// to Go's GC, so classes must stay reachable through this table.
type ClassTable struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewClassTable creates a new empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{
		classes: make(map[string]*Class),
	}
}

// Register adds a class to the table.
// Returns the previous class with this name, or nil.
func (ct *ClassTable) Register(c *Class) *Class {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	old := ct.classes[c.Name]
	ct.classes[c.Name] = c
	return old
}

// Lookup finds a class by name.
func (ct *ClassTable) Lookup(name string) *Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.classes[name]
}

// Has returns true if a class with this name is registered.
func (ct *ClassTable) Has(name string) bool {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	_, ok := ct.classes[name]
	return ok
}

// All returns all registered classes.
func (ct *ClassTable) All() []*Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	result := make([]*Class, 0, len(ct.classes))
	for _, c := range ct.classes {
		result = append(result, c)
	}
	return result
}

// Len returns the number of registered classes.
func (ct *ClassTable) Len() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.classes)
}
