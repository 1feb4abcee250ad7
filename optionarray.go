package atomicarray

import "sync/atomic"

// OptionRefArray is a fixed-length array of optional shared-ownership
// slots. Every slot holds either nothing or one reference unit of a
// payload, and every accessor is atomic, so many goroutines can operate
// on the array without external locking. Store and Swap are a single
// atomic exchange; Load is lock-free, re-reading a slot only when a
// concurrent overwrite released the payload it observed.
//
// Indexes at or beyond Len are a caller defect and panic.
type OptionRefArray[T any] struct {
	slots []atomic.Pointer[payload[T]]
}

// NewOptionRefArray constructs an array of n slots, all empty.
func NewOptionRefArray[T any](n int) *OptionRefArray[T] {
	return &OptionRefArray[T]{slots: make([]atomic.Pointer[payload[T]], n)}
}

// NewOptionRefArrayWith constructs an array of n slots, filling slot i
// with f(i). Construction is single-threaded; concurrent access is only
// valid once it returns.
func NewOptionRefArrayWith[T any](n int, f func(i int) Value[T]) *OptionRefArray[T] {
	a := NewOptionRefArray[T](n)
	for i := range a.slots {
		a.slots[i].Store(f(i).normalize())
	}
	return a
}

// Len returns the number of slots. It is fixed at construction.
func (a *OptionRefArray[T]) Len() int { return len(a.slots) }

// IsEmpty reports whether the array has a length of 0.
func (a *OptionRefArray[T]) IsEmpty() bool { return len(a.slots) == 0 }

// Load atomically reads slot i, returning a newly minted handle to its
// payload and true, or the absent handle and false for an empty slot.
// The slot's own unit is untouched; the returned handle is the caller's
// to Release.
func (a *OptionRefArray[T]) Load(i int) (Ref[T], bool) {
	slot := &a.slots[i]
	for {
		p := slot.Load()
		if p == nil {
			return Ref[T]{}, false
		}
		if p.retain() {
			return Ref[T]{p: p}, true
		}
		// The payload died under us: a concurrent Store or Swap displaced
		// it from this slot and its last unit was dropped before our
		// increment. The slot no longer holds p, so reload.
	}
}

// Store atomically exchanges v into slot i and releases the one unit the
// slot held for whatever was previously there.
func (a *OptionRefArray[T]) Store(i int, v Value[T]) {
	if old := a.slots[i].Swap(v.normalize()); old != nil {
		old.drop()
	}
}

// Swap atomically exchanges v into slot i and returns the displaced
// content as a handle, absent if the slot was empty. The slot's unit for
// the displaced payload transfers to the caller; no count changes.
func (a *OptionRefArray[T]) Swap(i int, v Value[T]) (Ref[T], bool) {
	old := a.slots[i].Swap(v.normalize())
	if old == nil {
		return Ref[T]{}, false
	}
	return Ref[T]{p: old}, true
}

// Close empties every slot, releasing exactly one unit per occupied slot.
// It requires exclusive access: no Load, Store, or Swap may be in flight,
// and the array must not be used afterwards.
func (a *OptionRefArray[T]) Close() {
	for i := range a.slots {
		if old := a.slots[i].Swap(nil); old != nil {
			old.drop()
		}
	}
}
