package atomicarray

import "sync/atomic"

// payload is the heap cell a slot indirectly points at: the stored value
// plus a count of outstanding reference units. One unit belongs to each
// live Ref and one to any slot currently holding the payload. The cell is
// destroyed exactly once, when the count reaches zero.
type payload[T any] struct {
	value   T
	refs    atomic.Int32
	release func()
}

func newPayload[T any](v T, release func()) *payload[T] {
	p := &payload[T]{value: v, release: release}
	p.refs.Store(1)
	return p
}

// retain attempts to mint one more unit. It only succeeds while the count
// is still nonzero: a payload whose last unit has been dropped is dead and
// must not come back, so callers that lose this race have to re-read
// whatever location handed them the pointer.
func (p *payload[T]) retain() bool {
	for {
		n := p.refs.Load()
		if n == 0 {
			return false
		}
		if p.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// drop releases one unit, running the release hook when the count hits
// zero. Dropping more units than were minted is a caller defect.
func (p *payload[T]) drop() {
	n := p.refs.Add(-1)
	switch {
	case n == 0:
		if p.release != nil {
			p.release()
		}
	case n < 0:
		panic("atomicarray: release of already-released payload")
	}
}

// Ref is one countable unit of shared ownership of a payload. Each Ref
// must be Released exactly once; the payload is destroyed when its last
// unit is released. The zero value is the absent handle.
type Ref[T any] struct {
	p *payload[T]
}

// NewRef allocates a payload holding v and returns its first handle.
// If release is non-nil it runs exactly once, when the last handle to the
// payload is gone.
func NewRef[T any](v T, release func()) Ref[T] {
	return Ref[T]{p: newPayload(v, release)}
}

// Valid reports whether the handle refers to a payload.
func (r Ref[T]) Valid() bool { return r.p != nil }

// Value returns the payload's value. It panics on the absent handle.
func (r Ref[T]) Value() T {
	if r.p == nil {
		panic("atomicarray: Value on absent Ref")
	}
	return r.p.value
}

// Clone mints an additional handle to the same payload, incrementing the
// count by one. The clone must be Released independently.
func (r Ref[T]) Clone() Ref[T] {
	if r.p == nil {
		panic("atomicarray: Clone on absent Ref")
	}
	r.p.refs.Add(1)
	return Ref[T]{p: r.p}
}

// Release invalidates the handle and must be called exactly once. The
// payload is destroyed if this was its last outstanding unit.
func (r Ref[T]) Release() {
	if r.p == nil {
		panic("atomicarray: Release on absent Ref")
	}
	r.p.drop()
}
