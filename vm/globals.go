package vm

// GlobalTable maps global symbol IDs to process-wide singleton values.
//
// Slots are indexed directly by the ID assigned by the global-scope symbol
// table and the array grows as names are interned. Entries are created
// once at bootstrap, before any dispatch runs, and are never torn down
// during normal execution.
type GlobalTable struct {
	slots []Value
	bound []bool
}

// NewGlobalTable creates an empty global table.
func NewGlobalTable() *GlobalTable {
	return &GlobalTable{}
}

// Set stores a value at the given global symbol ID, growing the table as
// needed.
func (gt *GlobalTable) Set(symbol int, value Value) {
	if symbol >= len(gt.slots) {
		newSlots := make([]Value, symbol+1)
		copy(newSlots, gt.slots)
		gt.slots = newSlots

		newBound := make([]bool, symbol+1)
		copy(newBound, gt.bound)
		gt.bound = newBound
	}
	gt.slots[symbol] = value
	gt.bound[symbol] = true
}

// Get returns the value at the given global symbol ID and whether the slot
// is bound. An index beyond the current length is equivalent to unbound.
func (gt *GlobalTable) Get(symbol int) (Value, bool) {
	if symbol < 0 || symbol >= len(gt.slots) || !gt.bound[symbol] {
		return 0, false
	}
	return gt.slots[symbol], true
}

// Len returns the number of slots (including unbound slots).
func (gt *GlobalTable) Len() int {
	return len(gt.slots)
}

// ForEach calls fn for each bound slot in ID order.
func (gt *GlobalTable) ForEach(fn func(symbol int, value Value)) {
	for i, v := range gt.slots {
		if gt.bound[i] {
			fn(i, v)
		}
	}
}
