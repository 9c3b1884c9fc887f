package memory

import "sync/atomic"

// RetireRing is a fixed-size FIFO for objects leaving the book.
// Single producer (the engine), single consumer (the reclaimer).
type RetireRing struct {
	head atomic.Uint64
	_    [56]byte
	tail atomic.Uint64
	_    [56]byte
	buf  []any
	mask uint64
}

func NewRetireRing(size uint64) *RetireRing {
	if size == 0 || size&(size-1) != 0 {
		panic("memory: retire ring size must be a power of two")
	}
	return &RetireRing{
		buf:  make([]any, size),
		mask: size - 1,
	}
}

// Enqueue reports false when the ring is full; the object is then
// left to the garbage collector instead of being recycled.
func (r *RetireRing) Enqueue(v any) bool {
	h := r.head.Load()
	t := r.tail.Load()
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	r.head.Store(h + 1)
	return true
}

func (r *RetireRing) Dequeue() any {
	t := r.tail.Load()
	h := r.head.Load()
	if t == h {
		return nil
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = nil
	r.tail.Store(t + 1)
	return v
}
