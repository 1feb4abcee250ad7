// package atomicarray provides fixed-length arrays whose elements can be
// loaded, stored, and swapped atomically by many goroutines without any
// external locking.
//
// The interesting array is OptionRefArray: each slot holds either nothing
// or one reference-counted payload, and every accessor is a single atomic
// operation on the slot. A naive way to build this on top of an atomic
// pointer might be:
//
//	var slot atomic.Pointer[payload]
//
//	func Load() *payload {
//		p := slot.Load()
//		if p != nil {
//			p.refs.Add(1)
//		}
//		return p
//	}
//
//	func Store(p *payload) {
//		if old := slot.Swap(p); old != nil && old.refs.Add(-1) == 0 {
//			old.destroy()
//		}
//	}
//
// This solution has a reclamation race: between the pointer load and the
// count increment, a concurrent Store can drop the last reference and run
// the payload's destructor, after which the increment resurrects a dead
// payload and hands the caller a handle to it. The types in this package
// close that window: a load only trusts a pointer after winning a
// compare-and-swap that moves the count from nonzero to one higher, and
// retries the slot when the count has already hit zero. Stores and swaps
// remain a single atomic exchange and never wait on readers.
//
//	arr := atomicarray.NewOptionRefArray[string](8)
//	arr.Store(0, atomicarray.Of("hello"))
//
//	if ref, ok := arr.Load(0); ok {
//		use(ref.Value())
//		ref.Release()
//	}
//
// RefArray is the same structure with the "every slot always holds a
// value" invariant enforced at its boundary, and ScalarArray/BoolArray
// provide the same fixed-length shape over bare machine scalars with no
// ownership semantics at all.
package atomicarray
