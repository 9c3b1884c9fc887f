package memory

import "testing"

type box struct {
	val   int
	epoch uint64
}

func (b *box) Reset()                  { *b = box{} }
func (b *box) RetireEpoch() uint64     { return b.epoch }
func (b *box) SetRetireEpoch(v uint64) { b.epoch = v }

func TestArenaReuse(t *testing.T) {
	a := NewArena[box](4)

	first := a.Get()
	first.val = 7
	a.Put(first)

	got := a.Get()
	if got != first {
		t.Fatal("freed slot not reused")
	}
}

func TestArenaGrowth(t *testing.T) {
	a := NewArena[box](2)
	seen := map[*box]bool{}
	for i := 0; i < 10; i++ {
		p := a.Get()
		if seen[p] {
			t.Fatalf("Get returned a live pointer twice at %d", i)
		}
		seen[p] = true
	}
}

func TestRetireRingFIFO(t *testing.T) {
	r := NewRetireRing(4)

	a, b := &box{val: 1}, &box{val: 2}
	if !r.Enqueue(a) || !r.Enqueue(b) {
		t.Fatal("enqueue failed on a non-full ring")
	}
	if got := r.Dequeue(); got != a {
		t.Fatal("dequeue order not FIFO")
	}
	if got := r.Dequeue(); got != b {
		t.Fatal("dequeue order not FIFO")
	}
	if got := r.Dequeue(); got != nil {
		t.Fatal("dequeue on empty ring returned a value")
	}
}

func TestRetireRingFull(t *testing.T) {
	r := NewRetireRing(2)
	if !r.Enqueue(&box{}) || !r.Enqueue(&box{}) {
		t.Fatal("ring filled early")
	}
	if r.Enqueue(&box{}) {
		t.Fatal("enqueue succeeded on a full ring")
	}
	r.Dequeue()
	if !r.Enqueue(&box{}) {
		t.Fatal("enqueue failed after a slot freed up")
	}
}

func TestRetireRingSizeMustBePowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non power-of-two size")
		}
	}()
	NewRetireRing(3)
}

func TestReclaimWithoutReaders(t *testing.T) {
	clock := &Clock{}
	ring := NewRetireRing(8)
	pool := NewArena[box](8)

	b := pool.Get()
	b.SetRetireEpoch(clock.Now())
	ring.Enqueue(b)

	Reclaim(clock, ring, pool)

	if got := pool.Get(); got != b {
		t.Fatal("retired object not returned to the arena")
	}
	if b.val != 0 || b.epoch != 0 {
		t.Fatal("object not reset before reuse")
	}
}

func TestReclaimBlockedByActiveReader(t *testing.T) {
	clock := &Clock{}
	ring := NewRetireRing(8)
	pool := NewArena[box](8)
	reader := NewReaderEpoch(clock)

	b := pool.Get()

	reader.Enter()
	b.SetRetireEpoch(clock.Now())
	ring.Enqueue(b)

	// The reader entered at the retire epoch, so b may still be
	// visible to it and must stay in the ring.
	Reclaim(clock, ring, pool, reader)
	if got := pool.Get(); got == b {
		t.Fatal("object reclaimed while a reader could observe it")
	}

	reader.Exit()
	Reclaim(clock, ring, pool, reader)
	found := false
	for i := 0; i < 8; i++ {
		if pool.Get() == b {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("object not reclaimed after the reader exited")
	}
}

func TestReclaimAfterReaderMovesOn(t *testing.T) {
	clock := &Clock{}
	ring := NewRetireRing(8)
	pool := NewArena[box](8)
	reader := NewReaderEpoch(clock)

	b := pool.Get()
	b.SetRetireEpoch(clock.Now())
	ring.Enqueue(b)

	clock.Advance()
	reader.Enter() // enters after the retire epoch

	Reclaim(clock, ring, pool, reader)

	found := false
	for i := 0; i < 8; i++ {
		if pool.Get() == b {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("object not reclaimed although the reader entered later")
	}
}
