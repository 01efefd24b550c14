package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// iComponentStore is an interface for a type-erased sparse-set component store.
// Indices are entity slot indices; the store keeps components densely packed.
type iComponentStore interface {
	Set(index uint32, item any)
	Get(index uint32) any
	Delete(index uint32)
	Has(index uint32) bool
	Len() int
	Iter() iter.Seq[uint32]
}

// genericComponentStore is a sparse-set implementation of iComponentStore.
// Components of type T live in a dense slice; an intmap maps entity slot
// indices to dense positions. Removal swaps the last element into the hole,
// so pointers returned by Get stay valid only until the next structural
// change - which is why structural changes are deferred through Commands.
type genericComponentStore[T any] struct {
	dense  []T
	owners []uint32
	index  *intmap.Map[uint32, uint32]
}

func newGenericComponentStore[T any]() *genericComponentStore[T] {
	return &genericComponentStore[T]{
		index: intmap.New[uint32, uint32](64),
	}
}

// Set inserts or overwrites the component for the given entity slot.
func (cs *genericComponentStore[T]) Set(index uint32, item any) {
	var concrete T
	if ptr, ok := item.(*T); ok {
		concrete = *ptr
	} else if val, ok := item.(T); ok {
		concrete = val
	} else {
		panic("component value does not match store type")
	}

	if pos, ok := cs.index.Get(index); ok {
		cs.dense[pos] = concrete
		return
	}

	cs.dense = append(cs.dense, concrete)
	cs.owners = append(cs.owners, index)
	cs.index.Put(index, uint32(len(cs.dense)-1))
}

// Get returns a pointer to the component for the given entity slot, or nil.
func (cs *genericComponentStore[T]) Get(index uint32) any {
	pos, ok := cs.index.Get(index)
	if !ok {
		return nil
	}
	return &cs.dense[pos]
}

// Delete removes the component for the given entity slot via swap-remove.
func (cs *genericComponentStore[T]) Delete(index uint32) {
	pos, ok := cs.index.Get(index)
	if !ok {
		return
	}

	last := uint32(len(cs.dense) - 1)
	if pos != last {
		cs.dense[pos] = cs.dense[last]
		cs.owners[pos] = cs.owners[last]
		cs.index.Put(cs.owners[pos], pos)
	}

	var zero T
	cs.dense[last] = zero
	cs.dense = cs.dense[:last]
	cs.owners = cs.owners[:last]
	cs.index.Del(index)
}

// Has checks if a component exists for the given entity slot.
func (cs *genericComponentStore[T]) Has(index uint32) bool {
	_, ok := cs.index.Get(index)
	return ok
}

// Len returns the number of components in the store.
func (cs *genericComponentStore[T]) Len() int {
	return len(cs.dense)
}

// Iter yields the entity slot index of every component in the store.
func (cs *genericComponentStore[T]) Iter() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := 0; i < len(cs.owners); i++ {
			if !yield(cs.owners[i]) {
				return
			}
		}
	}
}
