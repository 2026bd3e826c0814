package vm

import (
	"sync"
	"unsafe"
)

// Object represents a heap-allocated class instance.
//
// Many instances share one Class; each instance owns its field storage, a
// mapping from field symbol ID to Value. A field that was never set reads
// as absent rather than as some default value.
type Object struct {
	class  *Class
	fields map[int]Value
}

// objectRegistry keeps instances alive to prevent Go's GC from collecting
// them. When an Object pointer is NaN-boxed into a Value, Go can't track
// the reference anymore, so this registry maintains a Go-visible reference
// until CollectGarbage proves the instance unreachable.
var objectRegistry = struct {
	sync.Mutex
	objects map[*Object]struct{}
}{
	objects: make(map[*Object]struct{}),
}

// NewInstance creates a new instance of the given class.
func NewInstance(class *Class) *Object {
	obj := &Object{class: class}

	objectRegistry.Lock()
	objectRegistry.objects[obj] = struct{}{} // Keep alive
	objectRegistry.Unlock()

	return obj
}

// Class returns the instance's class.
func (obj *Object) Class() *Class {
	return obj.class
}

// Field returns the value stored under the given field symbol ID, and
// whether the field has ever been set.
func (obj *Object) Field(symbol int) (Value, bool) {
	v, ok := obj.fields[symbol]
	return v, ok
}

// SetField stores a value under the given field symbol ID.
func (obj *Object) SetField(symbol int, value Value) {
	if obj.fields == nil {
		obj.fields = make(map[int]Value)
	}
	obj.fields[symbol] = value
}

// NumFields returns the number of fields that have been set.
func (obj *Object) NumFields() int {
	return len(obj.fields)
}

// ForEachField calls fn for each set field.
// This is useful for garbage collection and debugging.
func (obj *Object) ForEachField(fn func(symbol int, value Value)) {
	for sym, v := range obj.fields {
		fn(sym, v)
	}
}

// ClassName returns the name of the instance's class, or "?" if unset.
func (obj *Object) ClassName() string {
	if obj.class == nil {
		return "?"
	}
	return obj.class.Name
}

// ---------------------------------------------------------------------------
// Value boxing
// ---------------------------------------------------------------------------

// ToValue converts an Object pointer to a NaN-boxed Value.
func (obj *Object) ToValue() Value {
	return boxPointer(tagObject, unsafe.Pointer(obj))
}

// ObjectFromValue extracts an Object pointer from a NaN-boxed Value.
// Returns nil if the value is not an instance.
func ObjectFromValue(v Value) *Object {
	if !v.IsObject() {
		return nil
	}
	return (*Object)(v.objectPtr())
}

// MustObjectFromValue extracts an Object pointer from a NaN-boxed Value.
// Panics if the value is not an instance.
func MustObjectFromValue(v Value) *Object {
	if !v.IsObject() {
		panic("MustObjectFromValue: not an instance")
	}
	return (*Object)(v.objectPtr())
}
