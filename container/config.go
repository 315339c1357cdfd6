// This file declares the configuration contract and the static
// engine-facing dispatch helpers.
package container

// Ops is the customization-point bundle one configuration provides
// for a concrete container type C holding items of type T. Implement
// it on a zero-size type: configurations carry no state and exist
// only to be resolved at compile time.
//
// A configuration supporting several container types implements Ops
// once per type (one zero-size type each); an engine instantiated
// with an unsupported pairing fails to compile, which is the intended
// failure mode.
type Ops[C, T any] interface {
	// Insert adds item to the container, using whatever idiom is
	// correct for the container family.
	Insert(into *C, item T)

	// Remove deletes the first (or only) occurrence of item from the
	// container.
	Remove(from *C, item T)
}

// Insert adds item to the container through configuration O.
// Dispatch is static: O is instantiated at its zero value and the
// call devirtualizes at compile time.
//
//	container.Insert[[]string, string, container.SliceOps[string]](&nodes, "A")
func Insert[C, T any, O Ops[C, T]](into *C, item T) {
	var ops O
	ops.Insert(into, item)
}

// Remove deletes item from the container through configuration O.
// See Insert for the dispatch model.
func Remove[C, T any, O Ops[C, T]](from *C, item T) {
	var ops O
	ops.Remove(from, item)
}
