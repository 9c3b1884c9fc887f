package snapshot

import (
	"sort"

	"github.com/shopspring/decimal"

	"mimir/domain/orderbook"
)

// Entry is one active order in a point-in-time view across all
// symbols.
type Entry struct {
	OID    uint64
	Symbol string
	Side   orderbook.Side
	Open   int64
	Px     decimal.Decimal
}

// Sort orders entries price-descending; equal prices fall back to
// ascending order id so the view is stable.
func Sort(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].Px.Cmp(entries[j].Px); c != 0 {
			return c > 0
		}
		return entries[i].OID < entries[j].OID
	})
}

// Collect walks both sides of a book and appends every active
// order to entries.
func Collect(entries []Entry, book *orderbook.OrderBook) []Entry {
	walk := func(lvl *orderbook.PriceLevel) bool {
		for o := lvl.Head(); o != nil; o = o.Next() {
			if !o.Active() {
				continue
			}
			entries = append(entries, Entry{
				OID:    o.ID,
				Symbol: o.Symbol,
				Side:   o.Side,
				Open:   o.Remaining(),
				Px:     o.Px,
			})
		}
		return true
	}
	book.Bids.ForEachDescending(walk)
	book.Asks.ForEachAscending(walk)
	return entries
}
