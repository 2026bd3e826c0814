package vm

import (
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// SymbolTable tests
// ---------------------------------------------------------------------------

func TestSymbolTableIntern(t *testing.T) {
	st := NewSymbolTable()

	// First intern should get ID 0
	id1 := st.Intern("abs")
	if id1 != 0 {
		t.Errorf("first Intern got ID %d, want 0", id1)
	}

	// Second intern of same name should get same ID
	id2 := st.Intern("abs")
	if id2 != id1 {
		t.Errorf("re-Intern got ID %d, want %d", id2, id1)
	}

	// Different name should get different ID
	id3 := st.Intern("toString")
	if id3 == id1 {
		t.Error("different name should get different ID")
	}
	if id3 != 1 {
		t.Errorf("second unique Intern got ID %d, want 1", id3)
	}
}

func TestSymbolTableShapeMarkersAreIdentity(t *testing.T) {
	st := NewSymbolTable()

	unary := st.Intern("+")
	binary := st.Intern(BinarySelector("+"))
	if unary == binary {
		t.Error("\"+\" and \"+ \" must intern to different symbols")
	}
}

func TestSymbolTableLookup(t *testing.T) {
	st := NewSymbolTable()
	st.Intern("foo")
	st.Intern("bar")

	// Lookup existing
	if id := st.Lookup("foo"); id != 0 {
		t.Errorf("Lookup(foo) = %d, want 0", id)
	}
	if id := st.Lookup("bar"); id != 1 {
		t.Errorf("Lookup(bar) = %d, want 1", id)
	}

	// Lookup non-existing must not register
	if id := st.Lookup("baz"); id != -1 {
		t.Errorf("Lookup(baz) = %d, want -1", id)
	}
	if st.Len() != 2 {
		t.Errorf("Lookup must not intern; Len() = %d, want 2", st.Len())
	}
}

func TestSymbolTableName(t *testing.T) {
	st := NewSymbolTable()
	st.Intern("hello")
	st.Intern("world")

	if name := st.Name(0); name != "hello" {
		t.Errorf("Name(0) = %q, want %q", name, "hello")
	}
	if name := st.Name(1); name != "world" {
		t.Errorf("Name(1) = %q, want %q", name, "world")
	}
	if name := st.Name(-1); name != "" {
		t.Errorf("Name(-1) = %q, want empty", name)
	}
	if name := st.Name(100); name != "" {
		t.Errorf("Name(100) = %q, want empty", name)
	}
}

func TestSymbolTableAll(t *testing.T) {
	st := NewSymbolTable()
	st.Intern("x")
	st.Intern("y")
	st.Intern("z")

	all := st.All()
	if len(all) != 3 {
		t.Fatalf("All() has %d elements, want 3", len(all))
	}
	if all[0] != "x" || all[1] != "y" || all[2] != "z" {
		t.Errorf("All() = %v, want [x y z]", all)
	}
}

func TestSymbolTableInternAll(t *testing.T) {
	st := NewSymbolTable()
	ids := st.InternAll("a", "b", "a")
	if ids[0] != 0 || ids[1] != 1 || ids[2] != 0 {
		t.Errorf("InternAll = %v, want [0 1 0]", ids)
	}
}

func TestSymbolScopesAreIndependent(t *testing.T) {
	selectors := NewSymbolTable()
	globals := NewSymbolTable()

	selectors.Intern("abs")
	selectors.Intern("toString")
	id := globals.Intern("io")

	// Each scope numbers from zero independently.
	if id != 0 {
		t.Errorf("global scope first ID = %d, want 0", id)
	}
	if selectors.Lookup("io") != -1 {
		t.Error("global name leaked into the selector scope")
	}
}

func TestSymbolTableConcurrentIntern(t *testing.T) {
	st := NewSymbolTable()
	names := []string{"a", "b", "c", "d", "e"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range names {
				st.Intern(n)
			}
		}()
	}
	wg.Wait()

	if st.Len() != len(names) {
		t.Errorf("Len() = %d, want %d", st.Len(), len(names))
	}
	for _, n := range names {
		if st.Lookup(n) < 0 {
			t.Errorf("missing symbol %q", n)
		}
	}
}
