package orderbook

import "testing"

var seq uint64

func newOrder(id uint64, side Side, qty int64, price string) *Order {
	seq++
	return &Order{
		ID:     id,
		Symbol: "AAPL",
		Px:     px(price),
		Qty:    qty,
		Seq:    seq,
		Side:   side,
		Status: Open,
	}
}

func TestPeekBest(t *testing.T) {
	b := NewOrderBook("AAPL")
	b.Insert(newOrder(1, Buy, 10, "9.00"))
	b.Insert(newOrder(2, Buy, 10, "10.00"))
	b.Insert(newOrder(3, Sell, 10, "12.00"))
	b.Insert(newOrder(4, Sell, 10, "11.00"))

	if got := b.PeekBest(Buy); got.ID != 2 {
		t.Fatalf("best bid = %d, want 2", got.ID)
	}
	if got := b.PeekBest(Sell); got.ID != 4 {
		t.Fatalf("best ask = %d, want 4", got.ID)
	}
}

func TestCrossFullFill(t *testing.T) {
	b := NewOrderBook("AAPL")
	b.Insert(newOrder(1, Buy, 100, "10.00"))
	b.Insert(newOrder(2, Sell, 100, "10.00"))

	var execs []Execution
	b.Cross(func(ex Execution) { execs = append(execs, ex) })

	if len(execs) != 1 {
		t.Fatalf("executions = %d, want 1", len(execs))
	}
	ex := execs[0]
	if ex.Resting.ID != 1 || ex.Incoming.ID != 2 {
		t.Fatalf("resting/incoming = %d/%d, want 1/2", ex.Resting.ID, ex.Incoming.ID)
	}
	if ex.Qty != 100 || ex.Px.Cmp(px("10.00")) != 0 {
		t.Fatalf("qty/px = %d/%s, want 100/10.00", ex.Qty, ex.Px)
	}
	if !b.Empty() {
		t.Fatal("book not empty after full fill")
	}
	if ex.Resting.Status != Filled || ex.Incoming.Status != Filled {
		t.Fatal("filled orders not marked Filled")
	}
}

func TestCrossPartialAtRestingPrice(t *testing.T) {
	b := NewOrderBook("AAPL")
	resting := newOrder(1, Buy, 50, "10.00")
	b.Insert(resting)
	b.Insert(newOrder(2, Sell, 30, "9.50"))

	var execs []Execution
	b.Cross(func(ex Execution) { execs = append(execs, ex) })

	if len(execs) != 1 {
		t.Fatalf("executions = %d, want 1", len(execs))
	}
	if got := execs[0].Px; got.Cmp(px("10.00")) != 0 {
		t.Fatalf("trade price = %s, want resting 10.00", got)
	}
	if execs[0].Qty != 30 {
		t.Fatalf("qty = %d, want 30", execs[0].Qty)
	}
	if resting.Remaining() != 20 || resting.Status != PartialFill {
		t.Fatalf("resting remaining/status = %d/%v, want 20/PartialFill", resting.Remaining(), resting.Status)
	}
	if b.PeekBest(Sell) != nil {
		t.Fatal("filled aggressor still resting")
	}
}

func TestCrossPriceTimePriority(t *testing.T) {
	b := NewOrderBook("AAPL")
	b.Insert(newOrder(1, Sell, 40, "10.00"))
	b.Insert(newOrder(2, Sell, 40, "10.00"))
	b.Insert(newOrder(3, Buy, 60, "10.00"))

	var execs []Execution
	b.Cross(func(ex Execution) { execs = append(execs, ex) })

	if len(execs) != 2 {
		t.Fatalf("executions = %d, want 2", len(execs))
	}
	// Earlier arrival at the level matches first and fully.
	if execs[0].Resting.ID != 1 || execs[0].Qty != 40 {
		t.Fatalf("first exec resting/qty = %d/%d, want 1/40", execs[0].Resting.ID, execs[0].Qty)
	}
	if execs[1].Resting.ID != 2 || execs[1].Qty != 20 {
		t.Fatalf("second exec resting/qty = %d/%d, want 2/20", execs[1].Resting.ID, execs[1].Qty)
	}
	if rem := b.PeekBest(Sell); rem == nil || rem.ID != 2 || rem.Remaining() != 20 {
		t.Fatal("order 2 should rest with 20 open")
	}
}

func TestCrossBetterPriceFirst(t *testing.T) {
	b := NewOrderBook("AAPL")
	b.Insert(newOrder(1, Sell, 10, "10.50"))
	b.Insert(newOrder(2, Sell, 10, "10.00"))
	b.Insert(newOrder(3, Buy, 20, "11.00"))

	var order []uint64
	b.Cross(func(ex Execution) { order = append(order, ex.Resting.ID) })

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("match order = %v, want [2 1]", order)
	}
}

func TestNoCrossOnSpread(t *testing.T) {
	b := NewOrderBook("AAPL")
	b.Insert(newOrder(1, Buy, 10, "9.00"))
	b.Insert(newOrder(2, Sell, 10, "10.00"))

	b.Cross(func(Execution) { t.Fatal("unexpected execution on a spread") })

	if b.PeekBest(Buy).Remaining() != 10 || b.PeekBest(Sell).Remaining() != 10 {
		t.Fatal("orders mutated without a cross")
	}
}

func TestRemoveDropsEmptyLevel(t *testing.T) {
	b := NewOrderBook("AAPL")
	o1 := newOrder(1, Buy, 10, "10.00")
	o2 := newOrder(2, Buy, 10, "10.00")
	b.Insert(o1)
	b.Insert(o2)

	b.Remove(o1)
	if b.Bids.Size() != 1 {
		t.Fatalf("Bids size = %d, want 1", b.Bids.Size())
	}
	if got := b.PeekBest(Buy); got != o2 {
		t.Fatal("wrong head after unlinking the first order")
	}

	b.Remove(o2)
	if b.Bids.Size() != 0 {
		t.Fatalf("Bids size = %d after last removal, want 0", b.Bids.Size())
	}
	if !b.Empty() {
		t.Fatal("book not empty")
	}
}

func TestOpenPlusFilledInvariant(t *testing.T) {
	b := NewOrderBook("AAPL")
	orders := []*Order{
		newOrder(1, Buy, 50, "10.00"),
		newOrder(2, Sell, 30, "9.50"),
		newOrder(3, Sell, 40, "10.00"),
	}
	for _, o := range orders {
		b.Insert(o)
		b.Cross(func(Execution) {})
	}
	for _, o := range orders {
		if o.Remaining()+o.Filled != o.Qty {
			t.Fatalf("order %d: open %d + filled %d != qty %d",
				o.ID, o.Remaining(), o.Filled, o.Qty)
		}
	}
}
