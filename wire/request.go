package wire

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mimir/domain/orderbook"
)

type Kind uint8

const (
	Print Kind = iota
	New
	Cancel
)

// Request is one validated engine request. Fields beyond OID are
// only meaningful for Kind == New.
type Request struct {
	Kind   Kind
	OID    uint64
	Symbol string
	Side   orderbook.Side
	Qty    int64
	Px     decimal.Decimal
}

// ProtocolError is a rejected request. Error() is the exact
// response line, leading "E" included, so callers emit it as-is.
type ProtocolError struct {
	Line string
}

func (e *ProtocolError) Error() string { return e.Line }

func Errorf(format string, args ...any) *ProtocolError {
	return &ProtocolError{Line: "E " + fmt.Sprintf(format, args...)}
}
