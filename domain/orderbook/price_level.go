package orderbook

import "github.com/shopspring/decimal"

// PriceLevel is a FIFO queue of live orders at one price.
// Arrival order within a level IS time priority; nothing in the
// level ever reorders, so no position index can go stale.
type PriceLevel struct {
	Price      decimal.Decimal
	head       *Order
	tail       *Order
	OrderCount int
}

func (p *PriceLevel) Head() *Order { return p.head }
func (p *PriceLevel) Empty() bool  { return p.head == nil }

func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
	} else {
		p.tail.next = o
		o.prev = p.tail
	}
	p.tail = o
	p.OrderCount++
}

// Unlink removes o from the queue. o must belong to this level.
func (p *PriceLevel) Unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next, o.prev = nil, nil
	p.OrderCount--
}
