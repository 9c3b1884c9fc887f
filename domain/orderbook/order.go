package orderbook

import "github.com/shopspring/decimal"

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "S"
	}
	return "B"
}

type Status int

const (
	Open Status = iota
	PartialFill
	Filled
	Cancelled
)

// Order is one resting or fully processed limit order.
// Qty is the original quantity and Filled only grows, so
// Remaining() is the open quantity at every point in time.
type Order struct {
	ID     uint64
	Symbol string
	Px     decimal.Decimal
	Qty    int64
	Filled int64
	Seq    uint64
	Side   Side
	Status Status

	retireEpoch uint64
	next        *Order
	prev        *Order
}

func (o *Order) Remaining() int64 { return o.Qty - o.Filled }

// Active reports whether the order still rests in a book.
func (o *Order) Active() bool { return o.Status == Open || o.Status == PartialFill }

// Next walks the FIFO queue within a price level.
func (o *Order) Next() *Order { return o.next }

// Implement memory.Reclaimable.
func (o *Order) Reset()                  { *o = Order{} }
func (o *Order) RetireEpoch() uint64     { return o.retireEpoch }
func (o *Order) SetRetireEpoch(v uint64) { o.retireEpoch = v }
