package vm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Image Snapshots
// ---------------------------------------------------------------------------
//
// An image captures the bootstrapped world: both symbol scopes in interning
// order, every class with the names of its bound selectors, and the global
// table. Native code is never serialized; loading re-runs
// RegisterPrimitives against the restored tables, which re-binds every
// primitive at the same slots because the symbol scopes are re-interned in
// their saved order.

// ImageFormatVersion is bumped whenever the encoding changes
// incompatibly.
const ImageFormatVersion = 1

// cborEncMode uses canonical encoding for deterministic images.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Value kinds in the image encoding.
const (
	imageKindNumber   byte = 1
	imageKindString   byte = 2
	imageKindClass    byte = 3
	imageKindInstance byte = 4
)

type imageValue struct {
	Kind  byte    `cbor:"1,keyasint"`
	Num   float64 `cbor:"2,keyasint,omitempty"`
	Str   []byte  `cbor:"3,keyasint,omitempty"`
	Class string  `cbor:"4,keyasint,omitempty"`
}

type imageClass struct {
	Name      string   `cbor:"1,keyasint"`
	Selectors []string `cbor:"2,keyasint,omitempty"` // bound slots, in slot order
}

type imageGlobal struct {
	Name  string     `cbor:"1,keyasint"`
	Value imageValue `cbor:"2,keyasint"`
}

type image struct {
	Version       int           `cbor:"1,keyasint"`
	ID            string        `cbor:"2,keyasint"`
	Selectors     []string      `cbor:"3,keyasint"`
	GlobalSymbols []string      `cbor:"4,keyasint"`
	Classes       []imageClass  `cbor:"5,keyasint"`
	Globals       []imageGlobal `cbor:"6,keyasint"`
}

// SaveImage serializes the VM's world to CBOR bytes.
func (vm *VM) SaveImage() ([]byte, error) {
	img := image{
		Version:       ImageFormatVersion,
		ID:            uuid.New().String(),
		Selectors:     vm.Selectors.All(),
		GlobalSymbols: vm.GlobalSymbols.All(),
	}

	for _, c := range vm.Classes.All() {
		ic := imageClass{Name: c.Name}
		for _, sel := range c.BoundSelectors() {
			ic.Selectors = append(ic.Selectors, vm.Selectors.Name(sel))
		}
		img.Classes = append(img.Classes, ic)
	}

	var encodeErr error
	vm.Globals.ForEach(func(symbol int, v Value) {
		if encodeErr != nil {
			return
		}
		iv, err := encodeImageValue(v)
		if err != nil {
			encodeErr = err
			return
		}
		img.Globals = append(img.Globals, imageGlobal{
			Name:  vm.GlobalSymbols.Name(symbol),
			Value: iv,
		})
	})
	if encodeErr != nil {
		return nil, encodeErr
	}

	data, err := cborEncMode.Marshal(&img)
	if err != nil {
		return nil, fmt.Errorf("vm: marshal image: %w", err)
	}
	return data, nil
}

// encodeImageValue converts a global slot's value to its image form.
// Instances are recorded by class name only; fields of global singletons
// are not captured.
func encodeImageValue(v Value) (imageValue, error) {
	switch {
	case v.IsNumber():
		return imageValue{Kind: imageKindNumber, Num: v.Float64()}, nil
	case v.IsString():
		return imageValue{Kind: imageKindString, Str: StringBytes(v)}, nil
	case v.IsClass():
		return imageValue{Kind: imageKindClass, Class: ClassFromValue(v).Name}, nil
	case v.IsObject():
		return imageValue{Kind: imageKindInstance, Class: MustObjectFromValue(v).ClassName()}, nil
	default:
		return imageValue{}, fmt.Errorf("vm: cannot encode value in image")
	}
}

// LoadImageFromBytes reconstructs a VM from image bytes.
//
// Both symbol scopes are re-interned in saved order so every ID matches
// the saving VM, then classes and globals are rebuilt and
// RegisterPrimitives re-binds the native methods.
func LoadImageFromBytes(data []byte) (*VM, error) {
	var img image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("vm: unmarshal image: %w", err)
	}
	if img.Version != ImageFormatVersion {
		return nil, fmt.Errorf("vm: unsupported image version %d (want %d)", img.Version, ImageFormatVersion)
	}

	vm := newBareVM()
	vm.Selectors.InternAll(img.Selectors...)
	vm.GlobalSymbols.InternAll(img.GlobalSymbols...)

	for _, ic := range img.Classes {
		c := vm.createClass(ic.Name)
		// Reserve the slots; primitives re-bind below, and any selector
		// without native code stays an empty slot.
		for _, name := range ic.Selectors {
			if id := vm.Selectors.Lookup(name); id >= 0 {
				c.BindMethod(id, nil)
			}
		}
	}

	vm.NumberClass = vm.Classes.Lookup("Number")
	vm.StringClass = vm.Classes.Lookup("String")
	vm.IOClass = vm.Classes.Lookup("IO")
	if vm.NumberClass == nil || vm.StringClass == nil {
		return nil, fmt.Errorf("vm: image is missing core classes")
	}

	for _, g := range img.Globals {
		v, err := vm.decodeImageValue(g.Value)
		if err != nil {
			return nil, err
		}
		vm.Globals.Set(vm.GlobalSymbols.Intern(g.Name), v)
	}

	RegisterPrimitives(vm)
	return vm, nil
}

func (vm *VM) decodeImageValue(iv imageValue) (Value, error) {
	switch iv.Kind {
	case imageKindNumber:
		return FromFloat64(iv.Num), nil
	case imageKindString:
		buf := make([]byte, len(iv.Str))
		copy(buf, iv.Str)
		return NewStringValue(buf), nil
	case imageKindClass:
		c := vm.Classes.Lookup(iv.Class)
		if c == nil {
			return 0, fmt.Errorf("vm: image references unknown class %q", iv.Class)
		}
		return c.ToValue(), nil
	case imageKindInstance:
		c := vm.Classes.Lookup(iv.Class)
		if c == nil {
			return 0, fmt.Errorf("vm: image references unknown class %q", iv.Class)
		}
		return NewInstance(c).ToValue(), nil
	default:
		return 0, fmt.Errorf("vm: unknown image value kind %d", iv.Kind)
	}
}
