package wire

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"mimir/domain/orderbook"
)

var (
	symbolPat = regexp.MustCompile(`^[A-Z0-9]{1,8}$`)
	negIntPat = regexp.MustCompile(`^-[0-9]+$`)
	negPxPat  = regexp.MustCompile(`^-[0-9]+(.*)$`)
)

// Parse turns one request line into a typed Request. It touches no
// engine state; a non-nil error means the line must be rejected
// with exactly that error and nothing else may happen.
//
// Grammar (whitespace-delimited tokens):
//
//	P
//	O <oid> <symbol> <B|S> <qty> <px>
//	X <oid>
func Parse(line string) (Request, error) {
	tok := strings.Fields(line)
	if len(tok) == 0 {
		return Request{}, Errorf("Missing arguments")
	}
	if len(tok) == 1 && tok[0] == "P" {
		return Request{Kind: Print}, nil
	}
	if tok[0] != "O" && tok[0] != "X" {
		return Request{}, Errorf("Invalid action type: %s", tok[0])
	}
	if (tok[0] == "X" && len(tok) < 2) || (tok[0] == "O" && len(tok) < 6) {
		return Request{}, Errorf("Missing arguments")
	}

	if negIntPat.MatchString(tok[1]) {
		return Request{}, Errorf("%s OID must be positive", tok[1])
	}
	oid, err := strconv.ParseUint(tok[1], 10, 64)
	if err != nil {
		return Request{}, Errorf("%s OID must be an unsigned integer", tok[1])
	}
	if tok[0] == "X" {
		return Request{Kind: Cancel, OID: oid}, nil
	}

	rq := Request{Kind: New, OID: oid}

	if !symbolPat.MatchString(tok[2]) {
		return Request{}, Errorf("%d Invalid symbol: %s", oid, tok[2])
	}
	rq.Symbol = tok[2]

	switch tok[3] {
	case "B":
		rq.Side = orderbook.Buy
	case "S":
		rq.Side = orderbook.Sell
	default:
		return Request{}, Errorf("%d Invalid side: %s", oid, tok[3])
	}

	if negIntPat.MatchString(tok[4]) {
		return Request{}, Errorf("%d QTY must be positive", oid)
	}
	qty, err := strconv.ParseUint(tok[4], 10, 63)
	if err != nil {
		return Request{}, Errorf("%d QTY must be an unsigned integer", oid)
	}
	rq.Qty = int64(qty)

	if negPxPat.MatchString(tok[5]) {
		return Request{}, Errorf("%d PX must be positive", oid)
	}
	px, err := decimal.NewFromString(tok[5])
	if err != nil {
		return Request{}, Errorf("%d PX must be a double", oid)
	}
	if px.IsNegative() {
		return Request{}, Errorf("%d PX must be positive", oid)
	}
	rq.Px = px
	return rq, nil
}
