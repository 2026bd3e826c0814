package vm

import "testing"

func TestCollectGarbageKeepsRootedValues(t *testing.T) {
	vm := NewVM()

	rooted := StringValueOf("keep me")
	vm.SetGlobal("keeper", rooted)

	holder := NewInstance(vm.IOClass)
	holder.SetField(0, StringValueOf("field string"))
	vm.SetGlobal("holder", holder.ToValue())

	// Unrooted garbage
	StringValueOf("drop me")
	NewInstance(vm.IOClass)

	vm.CollectGarbage()

	if got := MustStringFromValue(rooted).String(); got != "keep me" {
		t.Errorf("rooted string was disturbed: %q", got)
	}
	g, ok := vm.LookupGlobal("holder")
	if !ok {
		t.Fatal("holder global lost")
	}
	f, ok := MustObjectFromValue(g).Field(0)
	if !ok {
		t.Fatal("holder field lost")
	}
	if got := MustStringFromValue(f).String(); got != "field string" {
		t.Errorf("field string was disturbed: %q", got)
	}
}

func TestCollectGarbageDropsUnreachable(t *testing.T) {
	vm := NewVM()

	baseInstances, baseStrings := LiveHeapCounts()

	for i := 0; i < 10; i++ {
		StringValueOf("garbage")
		NewInstance(vm.IOClass)
	}

	instances, strings := vm.CollectGarbage()
	if instances < 10 {
		t.Errorf("collected %d instances, want at least 10", instances)
	}
	if strings < 10 {
		t.Errorf("collected %d strings, want at least 10", strings)
	}

	afterInstances, afterStrings := LiveHeapCounts()
	if afterInstances > baseInstances || afterStrings > baseStrings {
		t.Errorf("heap grew across collection: %d/%d -> %d/%d",
			baseInstances, baseStrings, afterInstances, afterStrings)
	}
}

func TestCollectGarbageHandlesCycles(t *testing.T) {
	vm := NewVM()

	a := NewInstance(vm.IOClass)
	b := NewInstance(vm.IOClass)
	a.SetField(0, b.ToValue())
	b.SetField(0, a.ToValue())
	vm.SetGlobal("cycle", a.ToValue())

	// Must terminate and keep both halves of the cycle.
	vm.CollectGarbage()

	g, _ := vm.LookupGlobal("cycle")
	f, ok := MustObjectFromValue(g).Field(0)
	if !ok || MustObjectFromValue(f) != b {
		t.Error("cycle member was collected")
	}
}
