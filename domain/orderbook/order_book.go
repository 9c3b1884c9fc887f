package orderbook

import "github.com/shopspring/decimal"

// OrderBook holds the two priority structures for one symbol.
// It is single-writer and deterministic: callers apply one request
// to completion before starting the next.
type OrderBook struct {
	Symbol string
	Bids   *RBTree
	Asks   *RBTree
}

func NewOrderBook(symbol string) *OrderBook {
	return &OrderBook{
		Symbol: symbol,
		Bids:   NewRBTree(),
		Asks:   NewRBTree(),
	}
}

func (b *OrderBook) side(s Side) *RBTree {
	if s == Buy {
		return b.Bids
	}
	return b.Asks
}

// Insert enqueues a live order at its price level.
func (b *OrderBook) Insert(o *Order) {
	b.side(o.Side).UpsertLevel(o.Px).Enqueue(o)
}

// PeekBest returns the highest-priority live order on a side:
// highest bid or lowest ask, earliest arrival within the level.
func (b *OrderBook) PeekBest(s Side) *Order {
	var lvl *PriceLevel
	if s == Buy {
		lvl = b.Bids.MaxLevel()
	} else {
		lvl = b.Asks.MinLevel()
	}
	if lvl == nil {
		return nil
	}
	return lvl.head
}

// Remove unlinks o from its price level and drops the level once empty.
func (b *OrderBook) Remove(o *Order) {
	t := b.side(o.Side)
	lvl := t.FindLevel(o.Px)
	if lvl == nil {
		return
	}
	lvl.Unlink(o)
	if lvl.Empty() {
		t.DeleteLevel(o.Px)
	}
}

// Empty reports whether no order rests on either side.
func (b *OrderBook) Empty() bool {
	return b.Bids.Size() == 0 && b.Asks.Size() == 0
}

// Execution is one match between the best bid and best ask.
// Px is the resting order's limit price.
type Execution struct {
	Resting  *Order
	Incoming *Order
	Px       decimal.Decimal
	Qty      int64
}

// Cross repeatedly matches top of book until the sides no longer
// overlap. Each iteration trades min(open, open) at the resting
// order's price, updates both orders' fill state, and removes any
// order whose open quantity reached zero. Termination: every
// iteration removes at least one order from the book.
func (b *OrderBook) Cross(onExec func(Execution)) {
	for {
		bid := b.PeekBest(Buy)
		ask := b.PeekBest(Sell)
		if bid == nil || ask == nil {
			return
		}
		if bid.Px.Cmp(ask.Px) < 0 {
			return
		}

		// The earlier arrival was already resting when the other
		// side came in; the trade prints at its limit price.
		resting := bid
		if ask.Seq < bid.Seq {
			resting = ask
		}

		qty := min(bid.Remaining(), ask.Remaining())
		bid.Filled += qty
		ask.Filled += qty
		b.settle(bid)
		b.settle(ask)

		onExec(Execution{
			Resting:  resting,
			Incoming: other(resting, bid, ask),
			Px:       resting.Px,
			Qty:      qty,
		})
	}
}

func (b *OrderBook) settle(o *Order) {
	if o.Remaining() == 0 {
		o.Status = Filled
		b.Remove(o)
		return
	}
	if o.Filled > 0 {
		o.Status = PartialFill
	}
}

func other(resting, bid, ask *Order) *Order {
	if resting == bid {
		return ask
	}
	return bid
}
