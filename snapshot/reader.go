package snapshot

import "mimir/infra/memory"

// Reader is a thin adapter over memory.ReaderEpoch marking where
// a consistent view begins and ends. Reclamation happens elsewhere.
type Reader struct {
	epoch *memory.ReaderEpoch
}

func NewReader(clock *memory.Clock) *Reader {
	return &Reader{epoch: memory.NewReaderEpoch(clock)}
}

// Begin marks the start of a consistent view.
func (r *Reader) Begin() {
	r.epoch.Enter()
}

// End marks the end of the view.
func (r *Reader) End() {
	r.epoch.Exit()
}

// Epoch exposes the underlying epoch for the reclaimer.
func (r *Reader) Epoch() *memory.ReaderEpoch {
	return r.epoch
}
