package vm

import (
	"sync"
	"unsafe"
)

// StringObject represents a Siskin string value: an owned, length-tracked
// byte buffer. The buffer is not necessarily NUL-free and its length is not
// necessarily a count of logical characters.
//
// Ownership of the buffer transfers to the StringObject exactly once, at
// construction. No two Values may alias the same mutable buffer; a
// string-producing primitive always allocates a fresh buffer for its
// result. Reclamation is the embedding runtime's job (see CollectGarbage).
type StringObject struct {
	bytes []byte
}

// stringRegistry keeps string objects alive for the same reason as
// objectRegistry: a NaN-boxed *StringObject is invisible to Go's GC.
var stringRegistry = struct {
	sync.Mutex
	strings map[*StringObject]struct{}
}{
	strings: make(map[*StringObject]struct{}),
}

// NewStringValue creates a string Value taking ownership of b.
// The caller must not retain or mutate b afterwards.
func NewStringValue(b []byte) Value {
	obj := &StringObject{bytes: b}

	stringRegistry.Lock()
	stringRegistry.strings[obj] = struct{}{} // Keep alive
	stringRegistry.Unlock()

	return boxPointer(tagString, unsafe.Pointer(obj))
}

// StringValueOf creates a string Value from a Go string, copying its bytes
// into a fresh owned buffer.
func StringValueOf(s string) Value {
	return NewStringValue([]byte(s))
}

// Bytes returns the owned buffer. The caller must treat it as read-only.
func (s *StringObject) Bytes() []byte {
	return s.bytes
}

// Len returns the byte length of the string.
func (s *StringObject) Len() int {
	return len(s.bytes)
}

// String returns the content as a Go string (copying).
func (s *StringObject) String() string {
	return string(s.bytes)
}

// StringFromValue extracts a StringObject pointer from a NaN-boxed Value.
// Returns nil if the value is not a string.
func StringFromValue(v Value) *StringObject {
	if !v.IsString() {
		return nil
	}
	return (*StringObject)(v.stringPtr())
}

// MustStringFromValue extracts a StringObject pointer from a NaN-boxed
// Value. Panics if the value is not a string.
func MustStringFromValue(v Value) *StringObject {
	if !v.IsString() {
		panic("MustStringFromValue: not a string")
	}
	return (*StringObject)(v.stringPtr())
}

// StringBytes returns the byte content of a string Value.
// Panics if v is not a string.
func StringBytes(v Value) []byte {
	return MustStringFromValue(v).Bytes()
}
