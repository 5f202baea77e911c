// Package event defines the ordered, append-only event stream the
// engine publishes: one OrderPlaced per accepted order, zero or more
// OrderMatched as trades execute, one OrderCancelled per cancellation.
package event

import (
	"encoding/json"

	"github.com/google/uuid"
)

type Type string

const (
	TypeOrderPlaced    Type = "order_placed"
	TypeOrderMatched   Type = "order_matched"
	TypeOrderCancelled Type = "order_cancelled"
)

type OrderPlaced struct {
	ID     uint64    `json:"id"`
	Trader uuid.UUID `json:"trader"`
	Amount int64     `json:"amount"`
	Price  int64     `json:"price"`
	IsBuy  bool      `json:"is_buy"`
}

type OrderMatched struct {
	BuyOrderID  uint64 `json:"buy_order_id"`
	SellOrderID uint64 `json:"sell_order_id"`
	Amount      int64  `json:"amount"`
	Price       int64  `json:"price"`
}

type OrderCancelled struct {
	ID uint64 `json:"id"`
}

// Event is one entry of the stream. Seq is strictly increasing and
// assigned at emission; exactly one payload field is set, matching Type.
type Event struct {
	V    int    `json:"v"`
	Seq  uint64 `json:"seq"`
	Type Type   `json:"type"`
	Time int64  `json:"time"`

	Placed    *OrderPlaced    `json:"placed,omitempty"`
	Matched   *OrderMatched   `json:"matched,omitempty"`
	Cancelled *OrderCancelled `json:"cancelled,omitempty"`
}

const schemaVersion = 1

func NewPlaced(seq uint64, now int64, p OrderPlaced) Event {
	return Event{V: schemaVersion, Seq: seq, Type: TypeOrderPlaced, Time: now, Placed: &p}
}

func NewMatched(seq uint64, now int64, m OrderMatched) Event {
	return Event{V: schemaVersion, Seq: seq, Type: TypeOrderMatched, Time: now, Matched: &m}
}

func NewCancelled(seq uint64, now int64, c OrderCancelled) Event {
	return Event{V: schemaVersion, Seq: seq, Type: TypeOrderCancelled, Time: now, Cancelled: &c}
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func Decode(b []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(b, &e)
	return e, err
}
