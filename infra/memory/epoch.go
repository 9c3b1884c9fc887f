package memory

import "sync/atomic"

// Clock is the monotonically increasing reclamation epoch.
type Clock struct {
	now atomic.Uint64
}

func (c *Clock) Now() uint64     { return c.now.Load() }
func (c *Clock) Advance() uint64 { return c.now.Add(1) }

const idle = ^uint64(0)

// ReaderEpoch marks when a reader entered a read section.
type ReaderEpoch struct {
	clock *Clock
	epoch atomic.Uint64
}

func NewReaderEpoch(c *Clock) *ReaderEpoch {
	r := &ReaderEpoch{clock: c}
	r.epoch.Store(idle)
	return r
}

func (r *ReaderEpoch) Enter()        { r.epoch.Store(r.clock.Now()) }
func (r *ReaderEpoch) Exit()         { r.epoch.Store(idle) }
func (r *ReaderEpoch) Value() uint64 { return r.epoch.Load() }

// ReclaimablePool is the only requirement reclamation places on
// the allocator. It is intentionally type-erased.
type ReclaimablePool interface {
	PutAny(any)
}

// Reclaim advances the clock, then returns retired objects to the
// pool as long as every registered reader entered its read section
// after the object was retired. The ring is FIFO: the first unsafe
// object stops the scan, newer ones cannot be safe either.
func Reclaim(clock *Clock, ring *RetireRing, pool ReclaimablePool, readers ...*ReaderEpoch) {
	clock.Advance()
	floor := minReaderEpoch(readers...)

	for {
		obj := ring.Dequeue()
		if obj == nil {
			return
		}
		rec := obj.(Reclaimable)
		if floor == idle || rec.RetireEpoch() < floor {
			rec.Reset()
			pool.PutAny(obj)
			continue
		}
		_ = ring.Enqueue(obj)
		return
	}
}

func minReaderEpoch(rs ...*ReaderEpoch) uint64 {
	floor := idle
	for _, r := range rs {
		if r == nil {
			continue
		}
		if v := r.Value(); v < floor {
			floor = v
		}
	}
	return floor
}
