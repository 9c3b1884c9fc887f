package memory

import "sync"

// Reclaimable is implemented by arena objects that pass through
// epoch-based reclamation.
type Reclaimable interface {
	Reset()
	RetireEpoch() uint64
	SetRetireEpoch(uint64)
}

// Arena hands out *T values backed by slab allocations. A slot
// address is stable for the process lifetime; a freed slot is
// reused only after the reclaimer decides no reader can still
// see it. Get and Put may run on different goroutines.
type Arena[T any] struct {
	mu       sync.Mutex
	slabSize int
	free     []*T
	slabs    [][]T
}

func NewArena[T any](slabSize int) *Arena[T] {
	if slabSize <= 0 {
		slabSize = 1024
	}
	return &Arena[T]{slabSize: slabSize}
}

func (a *Arena[T]) Get() *T {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		v := a.free[n-1]
		a.free = a.free[:n-1]
		return v
	}

	slab := make([]T, a.slabSize)
	a.slabs = append(a.slabs, slab)
	for i := 1; i < len(slab); i++ {
		a.free = append(a.free, &slab[i])
	}
	return &slab[0]
}

func (a *Arena[T]) Put(v *T) {
	a.mu.Lock()
	a.free = append(a.free, v)
	a.mu.Unlock()
}

// PutAny lets Arena[T] satisfy ReclaimablePool. The adapter
// panics on a foreign type: that is a wiring bug, not a runtime
// condition.
func (a *Arena[T]) PutAny(v any) {
	obj, ok := v.(*T)
	if !ok {
		panic("memory.Arena: PutAny received wrong type")
	}
	a.Put(obj)
}
