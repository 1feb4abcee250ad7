package atomicarray

import "sync/atomic"

// Scalar is the set of types a ScalarArray can hold: any integer kind
// with a fixed machine representation. Values round-trip through the
// array's 64-bit cells by two's-complement widening and truncation.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ScalarArray is a fixed-length array of independently atomic scalar
// cells. It maps directly onto hardware atomics: no ownership semantics,
// no reclamation concerns, just load/store/swap/cas/add on bare values.
//
// Indexes at or beyond Len are a caller defect and panic.
type ScalarArray[T Scalar] struct {
	cells []atomic.Uint64
}

// NewScalarArray constructs an array of n cells, all zero.
func NewScalarArray[T Scalar](n int) *ScalarArray[T] {
	return &ScalarArray[T]{cells: make([]atomic.Uint64, n)}
}

// NewScalarArrayWith constructs an array of n cells, filling cell i with
// f(i). Construction is single-threaded.
func NewScalarArrayWith[T Scalar](n int, f func(i int) T) *ScalarArray[T] {
	a := NewScalarArray[T](n)
	for i := range a.cells {
		a.cells[i].Store(uint64(f(i)))
	}
	return a
}

// Len returns the number of cells. It is fixed at construction.
func (a *ScalarArray[T]) Len() int { return len(a.cells) }

// IsEmpty reports whether the array has a length of 0.
func (a *ScalarArray[T]) IsEmpty() bool { return len(a.cells) == 0 }

// Load atomically returns the value at index i.
func (a *ScalarArray[T]) Load(i int) T {
	return T(a.cells[i].Load())
}

// Store atomically writes v at index i.
func (a *ScalarArray[T]) Store(i int, v T) {
	a.cells[i].Store(uint64(v))
}

// Swap atomically writes v at index i and returns the previous value.
func (a *ScalarArray[T]) Swap(i int, v T) T {
	return T(a.cells[i].Swap(uint64(v)))
}

// CompareAndSwap atomically replaces old with new at index i if the cell
// still holds old, reporting whether it did.
func (a *ScalarArray[T]) CompareAndSwap(i int, old, new T) bool {
	return a.cells[i].CompareAndSwap(uint64(old), uint64(new))
}

// Add atomically adds delta to the value at index i and returns the new
// value. Overflow wraps at T's width. The sum is computed in T and
// rewidened so the cell always holds the canonical representation of the
// value Load reports.
func (a *ScalarArray[T]) Add(i int, delta T) T {
	cell := &a.cells[i]
	for {
		old := cell.Load()
		sum := T(old) + delta
		if cell.CompareAndSwap(old, uint64(sum)) {
			return sum
		}
	}
}

// BoolArray is a fixed-length array of independently atomic booleans.
type BoolArray struct {
	cells []atomic.Bool
}

// NewBoolArray constructs an array of n cells, all false.
func NewBoolArray(n int) *BoolArray {
	return &BoolArray{cells: make([]atomic.Bool, n)}
}

// NewBoolArrayWith constructs an array of n cells, filling cell i with
// f(i). Construction is single-threaded.
func NewBoolArrayWith(n int, f func(i int) bool) *BoolArray {
	a := NewBoolArray(n)
	for i := range a.cells {
		a.cells[i].Store(f(i))
	}
	return a
}

// Len returns the number of cells. It is fixed at construction.
func (a *BoolArray) Len() int { return len(a.cells) }

// IsEmpty reports whether the array has a length of 0.
func (a *BoolArray) IsEmpty() bool { return len(a.cells) == 0 }

// Load atomically returns the value at index i.
func (a *BoolArray) Load(i int) bool { return a.cells[i].Load() }

// Store atomically writes v at index i.
func (a *BoolArray) Store(i int, v bool) { a.cells[i].Store(v) }

// Swap atomically writes v at index i and returns the previous value.
func (a *BoolArray) Swap(i int, v bool) bool { return a.cells[i].Swap(v) }

// CompareAndSwap atomically replaces old with new at index i if the cell
// still holds old, reporting whether it did.
func (a *BoolArray) CompareAndSwap(i int, old, new bool) bool {
	return a.cells[i].CompareAndSwap(old, new)
}
