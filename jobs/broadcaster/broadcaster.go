// Package broadcaster drains the durable outbox to Kafka. Delivery is
// at-least-once: a record is marked SENT before publish and ACKED
// after, so a crash between the two replays the event.
package broadcaster

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"vega/infra/outbox"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

func New(ob *outbox.Outbox, brokers []string, topic string, interval time.Duration, log *zap.Logger) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}, nil
}

func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info("broadcaster started", zap.String("topic", b.topic))

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	err := b.outbox.ScanPending(func(rec outbox.Record) error {
		if err := b.outbox.MarkSent(rec.Seq); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(keyOf(rec.Seq)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// leave as SENT, retried on the next tick
			b.log.Warn("publish failed", zap.Uint64("seq", rec.Seq), zap.Error(err))
			return nil
		}

		return b.outbox.MarkAcked(rec.Seq)
	})
	if err != nil {
		b.log.Error("outbox scan failed", zap.Error(err))
	}
}

func keyOf(seq uint64) string {
	return "evt-" + strconv.FormatUint(seq, 10)
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
