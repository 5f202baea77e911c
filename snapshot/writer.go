package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"vega/domain/orderbook"
)

// FileName is the snapshot file within a Writer's directory. Writes go
// to a temp file first and replace it atomically.
const FileName = "snapshot.bin"

type Writer struct {
	Dir string
}

// Write persists every order still resting in the book. Terminal
// orders are not part of the snapshot; they are only event history.
func (w *Writer) Write(seq uint64, book *orderbook.Book) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, 1024),
	}

	collect := func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			s.Orders = append(s.Orders, OrderEntry{
				ID:     o.ID,
				Trader: o.Trader,
				Side:   int(o.Side),
				Price:  o.Price,
				Qty:    o.Qty,
				Filled: o.Filled,
				SeqID:  o.SeqID,
				Status: int(o.Status),
			})
		}
	}
	book.BidsWalk(collect)
	book.AsksWalk(collect)

	tmp := filepath.Join(w.Dir, FileName+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(w.Dir, FileName))
}
