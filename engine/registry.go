package engine

import "mimir/domain/orderbook"

// Registry tracks every order id the engine has ever accepted.
// Ids are permanent: once accepted an id is never reassigned,
// even after the order leaves the book.
type Registry struct {
	live map[uint64]*orderbook.Order
	used map[uint64]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		live: make(map[uint64]*orderbook.Order, 1024),
		used: make(map[uint64]struct{}, 1024),
	}
}

// Used reports whether id was ever accepted.
func (r *Registry) Used(id uint64) bool {
	_, ok := r.used[id]
	return ok
}

// Live returns the order if it still rests in a book.
func (r *Registry) Live(id uint64) *orderbook.Order {
	return r.live[id]
}

// Add records a newly accepted order. The caller must have
// checked Used first; a duplicate here is an invariant failure.
func (r *Registry) Add(o *orderbook.Order) {
	if _, ok := r.used[o.ID]; ok {
		panic("engine: registry id reused")
	}
	r.used[o.ID] = struct{}{}
	r.live[o.ID] = o
}

// Deactivate drops the live pointer. The id stays used forever.
func (r *Registry) Deactivate(id uint64) {
	delete(r.live, id)
}
