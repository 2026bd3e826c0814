package vm

import "sync"

// SymbolTable interns names to dense numeric IDs for fast lookup.
//
// Two independent tables exist in a VM: one for method selectors and one
// for top-level global names. IDs are assigned in first-registration order
// within a table and are never reassigned or reused while the table lives,
// so within a table id<->name is a bijection.
//
// The table is append-only and thread-safe for concurrent reads after
// initial population. New symbols can be added concurrently.
type SymbolTable struct {
	mu     sync.RWMutex
	byName map[string]int // name -> ID
	byID   []string       // ID -> name
}

// NewSymbolTable creates a new empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		byName: make(map[string]int),
		byID:   make([]string, 0, 256), // Pre-allocate for common case
	}
}

// Intern returns the ID for a name, creating a new ID if needed.
// Interning is idempotent by name: re-interning an existing name returns
// the ID assigned at first registration.
func (st *SymbolTable) Intern(name string) int {
	// Fast path: read-only lookup
	st.mu.RLock()
	if id, ok := st.byName[name]; ok {
		st.mu.RUnlock()
		return id
	}
	st.mu.RUnlock()

	// Slow path: need to add new symbol
	st.mu.Lock()
	defer st.mu.Unlock()

	// Double-check after acquiring write lock
	if id, ok := st.byName[name]; ok {
		return id
	}

	id := len(st.byID)
	st.byName[name] = id
	st.byID = append(st.byID, name)
	return id
}

// Lookup returns the ID for a name, or -1 if not found.
// Use this when you don't want to create new entries.
func (st *SymbolTable) Lookup(name string) int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if id, ok := st.byName[name]; ok {
		return id
	}
	return -1
}

// Name returns the name for an ID, or "" if invalid.
func (st *SymbolTable) Name(id int) string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if id < 0 || id >= len(st.byID) {
		return ""
	}
	return st.byID[id]
}

// Len returns the number of interned symbols.
func (st *SymbolTable) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.byID)
}

// All returns all names in ID order.
func (st *SymbolTable) All() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]string, len(st.byID))
	copy(result, st.byID)
	return result
}

// InternAll interns multiple names and returns their IDs.
func (st *SymbolTable) InternAll(names ...string) []int {
	ids := make([]int, len(names))
	for i, name := range names {
		ids[i] = st.Intern(name)
	}
	return ids
}
