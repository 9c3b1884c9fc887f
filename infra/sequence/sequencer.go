// Package sequence issues the arrival stamps that break price
// ties: among equal prices the smaller sequence matched first.
package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic sequence IDs. Sequences
// are internal only; they are never exposed on the wire.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer that will issue start+1 first.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}
