// This file implements the standard-library container family:
// slice (sequence), map-set (unique) and list (linked) configurations.
package container

import "container/list"

// SliceOps is the sequence-family configuration over []T.
// Insert appends; Remove deletes the first occurrence, preserving the
// order of the remaining items.
type SliceOps[T comparable] struct{}

// Insert appends item to the slice.
// Complexity: amortized O(1).
func (SliceOps[T]) Insert(into *[]T, item T) {
	*into = append(*into, item)
}

// Remove deletes the first occurrence of item; absent items are a
// no-op.
// Complexity: O(n).
func (SliceOps[T]) Remove(from *[]T, item T) {
	for i, x := range *from {
		if x == item {
			*from = append((*from)[:i], (*from)[i+1:]...)

			return
		}
	}
}

// SetOps is the unique-family configuration over map[T]struct{}.
// Insert is idempotent, as set semantics demand.
type SetOps[T comparable] struct{}

// Insert adds item to the set, allocating the map on first use so the
// zero-value container works.
// Complexity: O(1).
func (SetOps[T]) Insert(into *map[T]struct{}, item T) {
	if *into == nil {
		*into = make(map[T]struct{})
	}
	(*into)[item] = struct{}{}
}

// Remove deletes item from the set; absent items are a no-op.
// Complexity: O(1).
func (SetOps[T]) Remove(from *map[T]struct{}, item T) {
	delete(*from, item)
}

// ListOps is the linked-list configuration over *list.List
// (container/list). Insert pushes back; Remove unlinks the first
// element whose value equals item.
type ListOps[T comparable] struct{}

// Insert appends item at the back of the list.
// Complexity: O(1).
func (ListOps[T]) Insert(into **list.List, item T) {
	if *into == nil {
		*into = list.New()
	}
	(*into).PushBack(item)
}

// Remove unlinks the first element holding item; absent items are a
// no-op. Elements holding values of other types are skipped.
// Complexity: O(n).
func (ListOps[T]) Remove(from **list.List, item T) {
	if *from == nil {
		return
	}
	for e := (*from).Front(); e != nil; e = e.Next() {
		if v, ok := e.Value.(T); ok && v == item {
			(*from).Remove(e)

			return
		}
	}
}
