package vm

// ---------------------------------------------------------------------------
// Garbage Collection
// ---------------------------------------------------------------------------

// CollectGarbage performs a mark-sweep collection over the keep-alive
// registries. It marks everything reachable from the global table (and,
// transitively, instance fields), then drops unreachable instances and
// strings from the registries so Go's own collector can reclaim them.
//
// Roots are the global table only. Run it between dispatches, when the
// embedding runtime holds no boxed Values outside the registries; classes
// are rooted by the class table and are never collected. The registries
// are process-wide, so a process hosting several VMs must not collect on
// one while another still holds live values.
func (vm *VM) CollectGarbage() (instances, strings int) {
	markedObjects := make(map[*Object]struct{})
	markedStrings := make(map[*StringObject]struct{})

	// Mark phase: find all reachable heap values
	vm.Globals.ForEach(func(_ int, v Value) {
		vm.markValue(v, markedObjects, markedStrings)
	})

	// Sweep phase: drop unmarked entries from the registries
	objectRegistry.Lock()
	for obj := range objectRegistry.objects {
		if _, ok := markedObjects[obj]; !ok {
			delete(objectRegistry.objects, obj)
			instances++
		}
	}
	objectRegistry.Unlock()

	stringRegistry.Lock()
	for s := range stringRegistry.strings {
		if _, ok := markedStrings[s]; !ok {
			delete(stringRegistry.strings, s)
			strings++
		}
	}
	stringRegistry.Unlock()

	return instances, strings
}

// markValue recursively marks a value and everything it references.
func (vm *VM) markValue(v Value, markedObjects map[*Object]struct{}, markedStrings map[*StringObject]struct{}) {
	switch {
	case v.IsString():
		markedStrings[MustStringFromValue(v)] = struct{}{}

	case v.IsObject():
		obj := MustObjectFromValue(v)

		// Already marked? Skip to avoid infinite recursion
		if _, ok := markedObjects[obj]; ok {
			return
		}
		markedObjects[obj] = struct{}{}

		obj.ForEachField(func(_ int, field Value) {
			vm.markValue(field, markedObjects, markedStrings)
		})
	}
}

// LiveHeapCounts returns the number of instances and strings currently
// held by the keep-alive registries. Useful for testing and debugging.
func LiveHeapCounts() (instances, strings int) {
	objectRegistry.Lock()
	instances = len(objectRegistry.objects)
	objectRegistry.Unlock()

	stringRegistry.Lock()
	strings = len(stringRegistry.strings)
	stringRegistry.Unlock()

	return instances, strings
}
