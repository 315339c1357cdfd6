package container_test

import (
	"fmt"
	"sort"

	"github.com/topokit/topokit/container"
)

// addBoth is a stand-in for an engine routine written once over any
// container family: it mutates nodes only through the configuration
// type arguments, never directly.
func addBoth[NC, EC any, NO container.Ops[NC, string], EO container.Ops[EC, string]](
	nodes *NC, edges *EC, node, edge string,
) {
	container.Insert[NC, string, NO](nodes, node)
	container.Insert[EC, string, EO](edges, edge)
}

// Example demonstrates parametrizing one routine over two different
// container families. Swapping families means changing type
// arguments; the routine body never changes.
func Example() {
	var nodes []string            // sequence family for nodes
	var edges map[string]struct{} // unique family for edges

	addBoth[[]string, map[string]struct{}, container.SliceOps[string], container.SetOps[string]](
		&nodes, &edges, "A", "A->B")
	addBoth[[]string, map[string]struct{}, container.SliceOps[string], container.SetOps[string]](
		&nodes, &edges, "B", "A->B") // duplicate edge collapses in the set

	fmt.Println("nodes:", nodes)

	keys := make([]string, 0, len(edges))
	for k := range edges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("edges:", keys)

	// Output:
	// nodes: [A B]
	// edges: [A->B]
}

// ExampleSliceOps shows the sequence-family semantics on their own.
func ExampleSliceOps() {
	items := []int{1, 2, 3, 2}

	ops := container.SliceOps[int]{}
	ops.Insert(&items, 9)
	ops.Remove(&items, 2) // first occurrence only

	fmt.Println(items)

	// Output:
	// [1 3 2 9]
}
