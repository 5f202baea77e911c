package broadcaster

import (
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vega/infra/outbox"
)

func newBroadcaster(t *testing.T) (*Broadcaster, *outbox.Outbox, *mocks.SyncProducer) {
	t.Helper()
	ob, err := outbox.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { ob.Close() })

	producer := mocks.NewSyncProducer(t, nil)
	b := &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    "market.events",
		interval: time.Second,
		log:      zap.NewNop(),
	}
	return b, ob, producer
}

func TestDrainAcksPublished(t *testing.T) {
	b, ob, producer := newBroadcaster(t)

	require.NoError(t, ob.Append(1, []byte(`{"seq":1}`)))
	require.NoError(t, ob.Append(2, []byte(`{"seq":2}`)))
	producer.ExpectSendMessageAndSucceed()
	producer.ExpectSendMessageAndSucceed()

	b.drainOnce()

	for seq := uint64(1); seq <= 2; seq++ {
		rec, err := ob.Get(seq)
		require.NoError(t, err)
		require.Equal(t, outbox.StateAcked, rec.State)
	}
}

func TestDrainLeavesFailedAsSent(t *testing.T) {
	b, ob, producer := newBroadcaster(t)

	require.NoError(t, ob.Append(1, []byte(`{"seq":1}`)))
	producer.ExpectSendMessageAndFail(errors.New("broker down"))

	b.drainOnce()

	rec, err := ob.Get(1)
	require.NoError(t, err)
	require.Equal(t, outbox.StateSent, rec.State)

	// Next drain retries the SENT record.
	producer.ExpectSendMessageAndSucceed()
	b.drainOnce()

	rec, err = ob.Get(1)
	require.NoError(t, err)
	require.Equal(t, outbox.StateAcked, rec.State)
}

func TestDrainSkipsAcked(t *testing.T) {
	b, ob, _ := newBroadcaster(t)

	require.NoError(t, ob.Append(1, []byte(`{"seq":1}`)))
	require.NoError(t, ob.MarkSent(1))
	require.NoError(t, ob.MarkAcked(1))

	// No expectations registered: any publish would fail the test.
	b.drainOnce()
}
