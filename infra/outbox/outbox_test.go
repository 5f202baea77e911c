package outbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Outbox {
	t.Helper()
	ob, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ob.Close()) })
	return ob
}

func TestAppendAndGet(t *testing.T) {
	ob := openTest(t)

	require.NoError(t, ob.Append(1, []byte("hello")))
	rec, err := ob.Get(1)
	require.NoError(t, err)
	require.Equal(t, StateNew, rec.State)
	require.Equal(t, []byte("hello"), rec.Payload)
	require.Zero(t, rec.Retries)
}

func TestLastSeq(t *testing.T) {
	ob := openTest(t)

	last, err := ob.LastSeq()
	require.NoError(t, err)
	require.Zero(t, last)

	for seq := uint64(1); seq <= 25; seq++ {
		require.NoError(t, ob.Append(seq, []byte(fmt.Sprintf("e%d", seq))))
	}
	last, err = ob.LastSeq()
	require.NoError(t, err)
	require.EqualValues(t, 25, last)
}

func TestStateTransitions(t *testing.T) {
	ob := openTest(t)
	require.NoError(t, ob.Append(7, []byte("x")))

	require.NoError(t, ob.MarkSent(7))
	rec, err := ob.Get(7)
	require.NoError(t, err)
	require.Equal(t, StateSent, rec.State)
	require.EqualValues(t, 1, rec.Retries)
	require.NotZero(t, rec.LastAttempt)

	require.NoError(t, ob.MarkAcked(7))
	rec, err = ob.Get(7)
	require.NoError(t, err)
	require.Equal(t, StateAcked, rec.State)
}

func TestScanPendingSkipsAcked(t *testing.T) {
	ob := openTest(t)
	for seq := uint64(1); seq <= 5; seq++ {
		require.NoError(t, ob.Append(seq, []byte("e")))
	}
	require.NoError(t, ob.MarkSent(2)) // sent but never acked: still pending
	require.NoError(t, ob.MarkSent(3))
	require.NoError(t, ob.MarkAcked(3))

	var got []uint64
	require.NoError(t, ob.ScanPending(func(r Record) error {
		got = append(got, r.Seq)
		return nil
	}))
	require.Equal(t, []uint64{1, 2, 4, 5}, got)
}

func TestTruncateAckedUpTo(t *testing.T) {
	ob := openTest(t)
	for seq := uint64(1); seq <= 4; seq++ {
		require.NoError(t, ob.Append(seq, []byte("e")))
		require.NoError(t, ob.MarkSent(seq))
	}
	require.NoError(t, ob.MarkAcked(1))
	require.NoError(t, ob.MarkAcked(2))
	require.NoError(t, ob.MarkAcked(4))

	require.NoError(t, ob.TruncateAckedUpTo(2))

	_, err := ob.Get(1)
	require.Error(t, err)
	_, err = ob.Get(2)
	require.Error(t, err)

	// Past the bound or not acked: untouched.
	_, err = ob.Get(3)
	require.NoError(t, err)
	_, err = ob.Get(4)
	require.NoError(t, err)
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ob, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, ob.Append(9, []byte("durable")))
	require.NoError(t, ob.Close())

	ob, err = Open(dir)
	require.NoError(t, err)
	defer ob.Close()

	rec, err := ob.Get(9)
	require.NoError(t, err)
	require.Equal(t, []byte("durable"), rec.Payload)
	last, err := ob.LastSeq()
	require.NoError(t, err)
	require.EqualValues(t, 9, last)
}
