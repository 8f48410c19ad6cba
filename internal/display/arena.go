package display

import (
	"iter"
	"slices"
)

// Arena stores objects under small integer ids. Add always hands out the
// lowest free id; iteration follows insertion order.
type Arena[T any] struct {
	slots []T
	used  []bool
	free  []int // ascending
	order []int
}

// Add stores item and returns its id.
func (a *Arena[T]) Add(item T) int {
	var id int
	if len(a.free) > 0 {
		id = a.free[0]
		a.free = a.free[1:]
		a.slots[id] = item
		a.used[id] = true
	} else {
		id = len(a.slots)
		a.slots = append(a.slots, item)
		a.used = append(a.used, true)
	}
	a.order = append(a.order, id)
	return id
}

// Get returns the object stored under id.
func (a *Arena[T]) Get(id int) (T, bool) {
	if !a.valid(id) {
		var zero T
		return zero, false
	}
	return a.slots[id], true
}

// Delete removes the object stored under id and frees the id. It reports
// whether anything was removed.
func (a *Arena[T]) Delete(id int) bool {
	if !a.valid(id) {
		return false
	}
	var zero T
	a.slots[id] = zero
	a.used[id] = false

	i, _ := slices.BinarySearch(a.free, id)
	a.free = slices.Insert(a.free, i, id)

	if j := slices.Index(a.order, id); j >= 0 {
		a.order = slices.Delete(a.order, j, j+1)
	}
	return true
}

// Clear removes everything; the next Add returns 0.
func (a *Arena[T]) Clear() {
	a.slots = nil
	a.used = nil
	a.free = nil
	a.order = nil
}

func (a *Arena[T]) Len() int { return len(a.order) }

// IDs returns the ids in insertion order.
func (a *Arena[T]) IDs() []int { return slices.Clone(a.order) }

// All iterates over id/object pairs in insertion order.
func (a *Arena[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, id := range a.order {
			if !yield(id, a.slots[id]) {
				return
			}
		}
	}
}

func (a *Arena[T]) valid(id int) bool {
	return id >= 0 && id < len(a.slots) && a.used[id]
}
