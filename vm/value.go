package vm

import (
	"math"
	"unsafe"
)

// Value represents a Siskin value using NaN-boxing.
//
// All values are represented as 64-bit IEEE 754 doubles. Non-number values
// are encoded in the NaN (Not-a-Number) space using the quiet NaN prefix
// and tag bits to distinguish types.
//
// Encoding scheme:
//   - Number: Native IEEE 754 double (if not a tagged NaN, it's a number)
//   - Instance: Quiet NaN + tagObject + 48-bit pointer to Object
//   - String: Quiet NaN + tagString + 48-bit pointer to StringObject
//   - Class: Quiet NaN + tagClass + 48-bit pointer to Class
//   - Special: Quiet NaN + tagSpecial + special value ID (Unsupported)
type Value uint64

// NaN-boxing constants
const (
	// Quiet NaN prefix: exponent all 1s, quiet bit set, sign bit 0
	// 0x7FF8_0000_0000_0000
	nanBits uint64 = 0x7FF8000000000000

	// Tag mask: 3 bits within the NaN mantissa space
	// 0x0007_0000_0000_0000
	tagMask uint64 = 0x0007000000000000

	// Payload mask: 48 bits for pointer/id
	// 0x0000_FFFF_FFFF_FFFF
	payloadMask uint64 = 0x0000FFFFFFFFFFFF

	// Tag values (shifted into position)
	tagObject  uint64 = 0x0001000000000000 // Heap instance pointer
	tagString  uint64 = 0x0002000000000000 // Heap string pointer
	tagClass   uint64 = 0x0003000000000000 // Class pointer
	tagSpecial uint64 = 0x0004000000000000 // Reserved identities
)

// Special value payloads
const (
	specialUnsupported uint64 = 0
)

// Unsupported is the distinguished sentinel a primitive returns to signal
// that it does not handle a particular operand combination. The outer
// dispatch layer interprets it and may retry with a coercion; it must never
// surface as a user-visible result.
//
// There is exactly one Unsupported identity per process. No constructor
// produces it, so it can never collide with a user value, and comparing
// against it with == is an identity comparison.
const Unsupported Value = Value(nanBits | tagSpecial | specialUnsupported)

// ---------------------------------------------------------------------------
// Type checking
// ---------------------------------------------------------------------------

// IsNumber returns true if v represents a float64 number.
// A value is a number if it's not one of our tagged NaN values.
// This includes regular numbers, infinities, and "real" NaN values.
func (v Value) IsNumber() bool {
	bits := uint64(v)

	// Check if it's a NaN or Infinity (exponent all 1s)
	if (bits & 0x7FF0000000000000) != 0x7FF0000000000000 {
		// Exponent is not all 1s, so it's a regular number
		return true
	}

	// Exponent is all 1s. Could be Infinity or NaN.
	// Infinity has mantissa == 0 (ignoring sign bit)
	mantissa := bits & 0x000FFFFFFFFFFFFF
	if mantissa == 0 {
		// It's +Inf or -Inf, which are valid numbers
		return true
	}

	// It's a NaN. Our tagged values have the quiet NaN bit set plus a
	// non-zero tag.
	if (bits & nanBits) != nanBits {
		// Quiet NaN bit not set - it's a signaling NaN, treat as number
		return true
	}

	tag := bits & tagMask
	if tag == 0 {
		// No tag bits set - it's a "real" quiet NaN, treat as number
		return true
	}

	// It's one of our tagged non-number values
	return false
}

// IsObject returns true if v represents a class instance.
func (v Value) IsObject() bool {
	return (uint64(v) & (nanBits | tagMask)) == (nanBits | tagObject)
}

// IsString returns true if v represents a heap string.
func (v Value) IsString() bool {
	return (uint64(v) & (nanBits | tagMask)) == (nanBits | tagString)
}

// IsClass returns true if v represents a class.
func (v Value) IsClass() bool {
	return (uint64(v) & (nanBits | tagMask)) == (nanBits | tagClass)
}

// IsUnsupported returns true if v is the Unsupported sentinel.
func (v Value) IsUnsupported() bool {
	return v == Unsupported
}

// ---------------------------------------------------------------------------
// Number operations
// ---------------------------------------------------------------------------

// Float64 returns v as a float64.
// Panics if v is not a number.
func (v Value) Float64() float64 {
	if !v.IsNumber() {
		panic("Value.Float64: not a number")
	}
	return math.Float64frombits(uint64(v))
}

// FromFloat64 creates a Value from a float64.
func FromFloat64(f float64) Value {
	return Value(math.Float64bits(f))
}

// ---------------------------------------------------------------------------
// Pointer boxing
// ---------------------------------------------------------------------------

// objectPtr returns the raw instance pointer payload.
// Panics if v is not an instance.
func (v Value) objectPtr() unsafe.Pointer {
	if !v.IsObject() {
		panic("Value.objectPtr: not an instance")
	}
	return unsafe.Pointer(uintptr(uint64(v) & payloadMask))
}

// stringPtr returns the raw string pointer payload.
// Panics if v is not a string.
func (v Value) stringPtr() unsafe.Pointer {
	if !v.IsString() {
		panic("Value.stringPtr: not a string")
	}
	return unsafe.Pointer(uintptr(uint64(v) & payloadMask))
}

// classPtr returns the raw class pointer payload.
// Panics if v is not a class.
func (v Value) classPtr() unsafe.Pointer {
	if !v.IsClass() {
		panic("Value.classPtr: not a class")
	}
	return unsafe.Pointer(uintptr(uint64(v) & payloadMask))
}

// boxPointer encodes a 48-bit pointer under the given tag.
// The pointer must fit in 48 bits (true for all current architectures).
func boxPointer(tag uint64, ptr unsafe.Pointer) Value {
	return Value(nanBits | tag | (uint64(uintptr(ptr)) & payloadMask))
}
