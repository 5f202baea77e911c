package entry

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

type Config struct {
	Dir         string
	SegmentSize int64
}

const defaultSegmentSize = 2 * 1024 * 1024

// WAL appends framed records to size-bounded segment files. A mutex
// guards the current segment: appends come from the writer path while
// truncation runs from the snapshot job.
type WAL struct {
	mu       sync.Mutex
	dir      string
	segSize  int64
	current  *segment
	segIndex int
}

func Open(cfg Config) (*WAL, error) {
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = defaultSegmentSize
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	// Resume appending to the newest segment, if any.
	idx := 0
	if files, err := filepath.Glob(filepath.Join(cfg.Dir, "segment-*.wal")); err == nil && len(files) > 0 {
		sort.Strings(files)
		idx = segmentIndex(files[len(files)-1])
	}

	seg, err := openSegment(cfg.Dir, idx)
	if err != nil {
		return nil, err
	}

	return &WAL{
		dir:      cfg.Dir,
		segSize:  cfg.SegmentSize,
		current:  seg,
		segIndex: idx,
	}, nil
}

// Append frames and writes one record:
// [type:1][seq:8][time:8][len:4][payload][crc:4]
// The CRC covers header and payload.
func (w *WAL) Append(r *Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	payloadLen := uint32(len(r.Data))

	buf := make([]byte, 1+8+8+4+payloadLen+4)
	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[21:], r.Data)

	crc := CRC32(buf[:21+payloadLen])
	binary.BigEndian.PutUint32(buf[21+payloadLen:], crc)

	if err := w.current.append(buf); err != nil {
		return err
	}

	if w.current.offset >= w.segSize {
		return w.rotate()
	}
	return nil
}

func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current.sync()
}

func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current.close()
}

func (w *WAL) rotate() error {
	_ = w.current.close()
	w.segIndex++

	seg, err := openSegment(w.dir, w.segIndex)
	if err != nil {
		return err
	}
	w.current = seg
	return nil
}

// TruncateBefore drops whole segments whose records are all covered by
// a snapshot at seq. The current segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(w.dir, "segment-*.wal"))
	if err != nil {
		return err
	}

	w.mu.Lock()
	current := w.current.file.Name()
	w.mu.Unlock()
	for _, path := range files {
		if filepath.Base(path) == filepath.Base(current) {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func segmentIndex(path string) int {
	var idx int
	if n, err := fmt.Sscanf(filepath.Base(path), "segment-%06d.wal", &idx); err != nil || n != 1 {
		return 0
	}
	return idx
}
