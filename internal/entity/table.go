// internal/entity/table.go
package entity

import "go-tower-sim/internal/types"

// Table stores entities by ID and iterates them in insertion order,
// so every per-tick scan is deterministic.
type Table[T any] struct {
	items map[types.EntityID]T
	order []types.EntityID
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[types.EntityID]T)}
}

// Insert adds v under id. Re-inserting an existing id replaces the value and keeps its slot.
func (t *Table[T]) Insert(id types.EntityID, v T) {
	if _, exists := t.items[id]; !exists {
		t.order = append(t.order, id)
	}
	t.items[id] = v
}

func (t *Table[T]) Get(id types.EntityID) (T, bool) {
	v, ok := t.items[id]
	return v, ok
}

func (t *Table[T]) Len() int {
	return len(t.order)
}

// IDs returns a copy of the ids in iteration order.
func (t *Table[T]) IDs() []types.EntityID {
	return append([]types.EntityID(nil), t.order...)
}

// Each calls fn for every entry in insertion order. Entries inserted by fn are not visited.
func (t *Table[T]) Each(fn func(id types.EntityID, v T)) {
	for _, id := range t.order {
		if v, ok := t.items[id]; ok {
			fn(id, v)
		}
	}
}

// RemoveIf deletes every entry matching pred and returns the removed ids in order.
func (t *Table[T]) RemoveIf(pred func(id types.EntityID, v T) bool) []types.EntityID {
	var removed []types.EntityID
	kept := t.order[:0]
	for _, id := range t.order {
		if pred(id, t.items[id]) {
			delete(t.items, id)
			removed = append(removed, id)
			continue
		}
		kept = append(kept, id)
	}
	clear(t.order[len(kept):])
	t.order = kept
	return removed
}

// Clear removes every entry.
func (t *Table[T]) Clear() {
	clear(t.items)
	t.order = t.order[:0]
}
