// Package engine hosts the request facade: the single write entry
// point that sequences validation, book mutation, matching and
// snapshots, one request to full completion at a time.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mimir/domain/orderbook"
	"mimir/infra/memory"
	"mimir/infra/sequence"
	"mimir/snapshot"
	"mimir/wire"
)

// Trade is one execution, as published on the trade feed.
type Trade struct {
	Seq     uint64
	Symbol  string
	Px      decimal.Decimal
	Qty     int64
	MakerID uint64 // resting side
	TakerID uint64 // incoming side
}

// TradeSink receives every execution, e.g. the durable outbox.
type TradeSink interface {
	Record(Trade)
}

// Engine owns one book per symbol plus the id registry. It is
// single-writer: a concurrent host must serialize calls into it.
type Engine struct {
	books    map[string]*orderbook.OrderBook
	reg      *Registry
	arrivals *sequence.Sequencer
	trades   *sequence.Sequencer

	arena  *memory.Arena[orderbook.Order]
	ring   *memory.RetireRing
	clock  *memory.Clock
	reader *snapshot.Reader

	sink TradeSink
}

type Option func(*Engine)

// WithTradeSink journals every execution to sink.
func WithTradeSink(sink TradeSink) Option {
	return func(e *Engine) { e.sink = sink }
}

func New(opts ...Option) *Engine {
	clock := &memory.Clock{}
	e := &Engine{
		books:    make(map[string]*orderbook.OrderBook, 16),
		reg:      NewRegistry(),
		arrivals: sequence.New(0),
		trades:   sequence.New(0),
		arena:    memory.NewArena[orderbook.Order](1024),
		ring:     memory.NewRetireRing(1 << 16),
		clock:    clock,
		reader:   snapshot.NewReader(clock),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply processes one request line to completion and returns the
// response lines. A rejected line leaves all state untouched.
func (e *Engine) Apply(line string) []string {
	rq, err := wire.Parse(line)
	if err != nil {
		return []string{err.Error()}
	}
	switch rq.Kind {
	case wire.Print:
		return e.print()
	case wire.Cancel:
		return e.cancel(rq.OID)
	default:
		return e.place(rq)
	}
}

// AdvanceEpoch reclaims retired orders no snapshot reader can
// still observe. Intended for a periodic background job.
func (e *Engine) AdvanceEpoch() {
	memory.Reclaim(e.clock, e.ring, e.arena, e.reader.Epoch())
}

// Book exposes the book for a symbol, or nil. Read-only use.
func (e *Engine) Book(symbol string) *orderbook.OrderBook {
	return e.books[symbol]
}

func (e *Engine) book(symbol string) *orderbook.OrderBook {
	b := e.books[symbol]
	if b == nil {
		b = orderbook.NewOrderBook(symbol)
		e.books[symbol] = b
	}
	return b
}

func (e *Engine) place(rq wire.Request) []string {
	if e.reg.Used(rq.OID) {
		return []string{fmt.Sprintf("E %d Duplicate order id", rq.OID)}
	}

	book := e.book(rq.Symbol)
	o := e.arena.Get()
	*o = orderbook.Order{
		ID:     rq.OID,
		Symbol: rq.Symbol,
		Px:     rq.Px,
		Qty:    rq.Qty,
		Seq:    e.arrivals.Next(),
		Side:   rq.Side,
		Status: orderbook.Open,
	}
	e.reg.Add(o)
	book.Insert(o)

	var out []string
	book.Cross(func(ex orderbook.Execution) {
		// Resting side's fill first, then the aggressor's.
		out = append(out,
			wire.FillLine(ex.Resting.ID, book.Symbol, ex.Qty, ex.Px),
			wire.FillLine(ex.Incoming.ID, book.Symbol, ex.Qty, ex.Px),
		)
		if e.sink != nil {
			e.sink.Record(Trade{
				Seq:     e.trades.Next(),
				Symbol:  book.Symbol,
				Px:      ex.Px,
				Qty:     ex.Qty,
				MakerID: ex.Resting.ID,
				TakerID: ex.Incoming.ID,
			})
		}
		e.retireIfDone(ex.Resting)
		e.retireIfDone(ex.Incoming)
	})
	return out
}

func (e *Engine) cancel(oid uint64) []string {
	o := e.reg.Live(oid)
	if o == nil {
		if e.reg.Used(oid) {
			return []string{fmt.Sprintf("E %d Order already fully filled", oid)}
		}
		return []string{fmt.Sprintf("E %d Order id not in the order book", oid)}
	}

	e.book(o.Symbol).Remove(o)
	o.Status = orderbook.Cancelled
	e.retire(o)
	return []string{wire.CancelLine(oid)}
}

func (e *Engine) print() []string {
	e.reader.Begin()
	defer e.reader.End()

	var entries []snapshot.Entry
	for _, book := range e.books {
		entries = snapshot.Collect(entries, book)
	}
	snapshot.Sort(entries)

	lines := make([]string, 0, len(entries))
	for _, en := range entries {
		lines = append(lines, wire.PrintLine(en.OID, en.Symbol, en.Side, en.Open, en.Px))
	}
	return lines
}

func (e *Engine) retireIfDone(o *orderbook.Order) {
	if !o.Active() {
		e.retire(o)
	}
}

// retire drops the live registry entry and hands the order object
// to the reclaimer. If the ring is full the object is simply left
// to the garbage collector.
func (e *Engine) retire(o *orderbook.Order) {
	e.reg.Deactivate(o.ID)
	o.SetRetireEpoch(e.clock.Now())
	_ = e.ring.Enqueue(o)
}
