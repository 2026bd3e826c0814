package vm

import "strconv"

// ValueText returns the receiver-independent text form of a value, as
// printed by the console write primitive and produced by toString.
//
// Numbers use the shortest representation that round-trips through a
// float64 parser, with no locale-specific grouping.
func ValueText(v Value) string {
	switch {
	case v.IsNumber():
		return FormatNumber(v.Float64())
	case v.IsString():
		return MustStringFromValue(v).String()
	case v.IsClass():
		return ClassFromValue(v).Name
	case v.IsObject():
		return "a " + MustObjectFromValue(v).ClassName()
	case v.IsUnsupported():
		return "<unsupported>"
	default:
		return "<invalid>"
	}
}

// FormatNumber renders a float64 in the general floating-point format.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
