package snapshot

import (
	"encoding/gob"
	"os"

	"vega/domain/ledger"
	"vega/domain/orderbook"
	"vega/infra/memory"
)

// Load restores a snapshot into the ledger and book. A missing file is
// not an error: recovery starts from an empty book. Returns the
// sequence watermark of the snapshot.
func Load(path string, led *ledger.Ledger, book *orderbook.Book, pool *memory.Pool[orderbook.Order]) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Orders {
		o := pool.Get()
		*o = orderbook.Order{
			ID:     e.ID,
			Trader: e.Trader,
			Side:   orderbook.Side(e.Side),
			Price:  e.Price,
			Qty:    e.Qty,
			Filled: e.Filled,
			SeqID:  e.SeqID,
			Status: orderbook.Status(e.Status),
		}
		led.Restore(o)
		book.Insert(o)
	}

	return s.Seq, nil
}
