// Package kafka publishes the best-effort last-trade tick feed. The
// reliable event stream goes through the outbox and broadcaster; this
// feed may drop ticks and that is fine.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
	pair   string
}

// Tick is one executed trade on the pair.
type Tick struct {
	Pair  string `json:"pair"`
	Qty   int64  `json:"qty"`
	Price int64  `json:"price"`
	Time  int64  `json:"time"`
}

func NewProducer(brokers []string, topic, pair string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 10 * time.Millisecond,
		},
		pair: pair,
	}
}

func (p *Producer) PublishTrade(ctx context.Context, qty, price int64) error {
	tick := Tick{
		Pair:  p.pair,
		Qty:   qty,
		Price: price,
		Time:  time.Now().UnixNano(),
	}
	value, err := json.Marshal(tick)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(p.pair + "/" + strconv.FormatInt(price, 10)),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
