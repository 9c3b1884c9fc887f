package broadcaster

import (
	"encoding/json"

	"go.uber.org/zap"

	"mimir/engine"
	"mimir/infra/outbox"
	"mimir/wire"
)

// Event is the wire form of one execution on the feed.
type Event struct {
	V       int    `json:"v"`
	Type    string `json:"type"`
	Seq     uint64 `json:"seq"`
	Symbol  string `json:"symbol"`
	Px      string `json:"px"`
	Qty     int64  `json:"qty"`
	MakerID uint64 `json:"maker_id"`
	TakerID uint64 `json:"taker_id"`
}

// Journal adapts engine.TradeSink onto the durable outbox.
type Journal struct {
	ob  *outbox.Outbox
	log *zap.Logger
}

func NewJournal(ob *outbox.Outbox, log *zap.Logger) *Journal {
	return &Journal{ob: ob, log: log}
}

func (j *Journal) Record(t engine.Trade) {
	ev := Event{
		V:       1,
		Type:    "trade",
		Seq:     t.Seq,
		Symbol:  t.Symbol,
		Px:      wire.FormatPx(t.Px),
		Qty:     t.Qty,
		MakerID: t.MakerID,
		TakerID: t.TakerID,
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		j.log.Error("encode trade event", zap.Uint64("seq", t.Seq), zap.Error(err))
		return
	}
	if err := j.ob.Put(t.Seq, payload); err != nil {
		j.log.Error("journal trade", zap.Uint64("seq", t.Seq), zap.Error(err))
	}
}
