package vm

import "strings"

// Selector shape encoding.
//
// A selector's argument count is part of its identity: the interned name
// carries one trailing space per argument, so the one-argument "+" interns
// as "+ " and is a different symbol from a bare unary "+". The method table
// never stores arity separately; differently-shaped calls simply intern to
// different names.
//
// All selector names must be built through SelectorFor (or the Unary/Binary
// helpers) so the convention lives in exactly one place.

// SelectorFor returns the interned form of a selector with the given
// argument count.
func SelectorFor(name string, argc int) string {
	if argc <= 0 {
		return name
	}
	return name + strings.Repeat(" ", argc)
}

// UnarySelector returns the selector name for a zero-argument send.
func UnarySelector(name string) string {
	return name
}

// BinarySelector returns the selector name for a one-argument send.
func BinarySelector(name string) string {
	return SelectorFor(name, 1)
}

// SelectorArity returns the argument count encoded in a selector name.
func SelectorArity(selector string) int {
	return len(selector) - len(strings.TrimRight(selector, " "))
}

// SelectorBase returns the selector name with its shape markers removed.
func SelectorBase(selector string) string {
	return strings.TrimRight(selector, " ")
}
