package atomicarray

// RefArray is an OptionRefArray in which every slot always holds a value.
// Construction populates all slots, stores and swaps refuse absent
// inputs, and a Load that ever observed an empty slot would mean the
// structure itself is broken, so it panics rather than returning.
type RefArray[T any] struct {
	buf OptionRefArray[T]
}

// NewRefArray constructs an array of n slots, each holding T's zero value
// in its own payload.
func NewRefArray[T any](n int) *RefArray[T] {
	return NewRefArrayWith(n, func(int) Value[T] {
		var zero T
		return Of(zero)
	})
}

// NewRefArrayWith constructs an array of n slots, filling slot i with
// f(i). It panics if f yields an absent value for any index.
func NewRefArrayWith[T any](n int, f func(i int) Value[T]) *RefArray[T] {
	return &RefArray[T]{buf: *NewOptionRefArrayWith(n, func(i int) Value[T] {
		v := f(i)
		if v.kind == valueNone || v.kind == valueShared && !v.ref.Valid() {
			panic("atomicarray: absent initializer value for RefArray")
		}
		return v
	})}
}

// Len returns the number of slots. It is fixed at construction.
func (a *RefArray[T]) Len() int { return a.buf.Len() }

// IsEmpty reports whether the array has a length of 0.
func (a *RefArray[T]) IsEmpty() bool { return a.buf.IsEmpty() }

// Load atomically reads slot i, returning a newly minted handle to its
// payload. The handle is the caller's to Release.
func (a *RefArray[T]) Load(i int) Ref[T] {
	r, ok := a.buf.Load(i)
	if !ok {
		panic("atomicarray: empty slot observed in RefArray")
	}
	return r
}

// Store atomically exchanges v into slot i, releasing the displaced
// payload's unit. It panics if v is absent.
func (a *RefArray[T]) Store(i int, v Value[T]) {
	a.buf.Store(i, requireValue(v))
}

// Swap atomically exchanges v into slot i and returns the displaced
// content as a handle. It panics if v is absent.
func (a *RefArray[T]) Swap(i int, v Value[T]) Ref[T] {
	r, ok := a.buf.Swap(i, requireValue(v))
	if !ok {
		panic("atomicarray: empty slot observed in RefArray")
	}
	return r
}

// Close empties every slot, releasing one unit per slot. It requires
// exclusive access and the array must not be used afterwards.
func (a *RefArray[T]) Close() { a.buf.Close() }

func requireValue[T any](v Value[T]) Value[T] {
	if v.kind == valueNone || v.kind == valueShared && !v.ref.Valid() {
		panic("atomicarray: absent value stored into RefArray")
	}
	return v
}
