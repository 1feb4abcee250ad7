package atomicarray

// Value describes the content to place in a slot. It normalizes the three
// accepted input forms into one optional-handle shape: a raw value (Of),
// an existing handle (Shared), or nothing (None). Raw values allocate a
// payload exactly once, at the moment the store consumes the Value;
// already-shared inputs never allocate.
type Value[T any] struct {
	kind uint8
	raw  T
	ref  Ref[T]
}

const (
	valueNone uint8 = iota
	valueRaw
	valueShared
)

// Of wraps a raw value. The store that consumes it allocates one new
// payload with a count of one.
func Of[T any](v T) Value[T] {
	return Value[T]{kind: valueRaw, raw: v}
}

// Shared wraps an existing handle. The store that consumes it transfers
// the handle's unit into the slot without touching the count; the caller
// must not Release the handle afterwards. Clone first to keep one.
func Shared[T any](r Ref[T]) Value[T] {
	return Value[T]{kind: valueShared, ref: r}
}

// None is the absent input: the consuming store empties the slot.
func None[T any]() Value[T] {
	return Value[T]{kind: valueNone}
}

// normalize resolves the Value into the payload pointer a slot stores,
// allocating only for the raw form. The returned payload carries the one
// unit the slot will own; nil means empty.
func (v Value[T]) normalize() *payload[T] {
	switch v.kind {
	case valueRaw:
		return newPayload(v.raw, nil)
	case valueShared:
		return v.ref.p
	default:
		return nil
	}
}
