// Package config loads the engine's runtime configuration from a JSON
// file. Every field has a working default so the server can start with
// no config at all.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config mirrors the JSON config layout.
type Config struct {
	ListenAddr string `json:"listenAddr"`

	Pair       string `json:"pair"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`

	WALDir      string `json:"walDir"`
	OutboxDir   string `json:"outboxDir"`
	SnapshotDir string `json:"snapshotDir"`

	WALSegmentSize uint64 `json:"walSegmentSize"`

	Brokers    []string `json:"brokers"`
	EventTopic string   `json:"eventTopic"`
	TickTopic  string   `json:"tickTopic"`

	// Durations are milliseconds in the file.
	SettlementTimeoutMS int64 `json:"settlementTimeoutMs"`
	BroadcastIntervalMS int64 `json:"broadcastIntervalMs"`
	SnapshotIntervalMS  int64 `json:"snapshotIntervalMs"`
	EpochIntervalMS     int64 `json:"epochIntervalMs"`

	// Balances seeds the in-process asset ledger at boot.
	Balances []Balance `json:"balances"`
}

// Balance is one trader's opening position in one asset.
type Balance struct {
	Trader string `json:"trader"`
	Asset  string `json:"asset"`
	Amount int64  `json:"amount"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ListenAddr:          ":50051",
		Pair:                "BTC/USD",
		BaseAsset:           "BTC",
		QuoteAsset:          "USD",
		WALDir:              "./data/wal",
		OutboxDir:           "./data/outbox",
		SnapshotDir:         "./data/snapshots",
		WALSegmentSize:      2 * 1024 * 1024,
		Brokers:             []string{"localhost:9092"},
		EventTopic:          "market.events",
		TickTopic:           "market.ticks",
		SettlementTimeoutMS: 2000,
		BroadcastIntervalMS: 2000,
		SnapshotIntervalMS:  60000,
		EpochIntervalMS:     2000,
	}
}

// Load reads a JSON config file and fills unset fields with defaults.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BaseAsset == "" || c.QuoteAsset == "" {
		return fmt.Errorf("config: baseAsset and quoteAsset must be set")
	}
	if c.BaseAsset == c.QuoteAsset {
		return fmt.Errorf("config: baseAsset and quoteAsset must differ")
	}
	if len(c.Brokers) == 0 {
		return fmt.Errorf("config: at least one broker is required")
	}
	if c.SettlementTimeoutMS <= 0 {
		return fmt.Errorf("config: settlementTimeoutMs must be > 0")
	}
	if c.BroadcastIntervalMS <= 0 || c.SnapshotIntervalMS <= 0 || c.EpochIntervalMS <= 0 {
		return fmt.Errorf("config: intervals must be > 0")
	}
	return nil
}

func (c Config) SettlementTimeout() time.Duration {
	return time.Duration(c.SettlementTimeoutMS) * time.Millisecond
}

func (c Config) BroadcastInterval() time.Duration {
	return time.Duration(c.BroadcastIntervalMS) * time.Millisecond
}

func (c Config) SnapshotInterval() time.Duration {
	return time.Duration(c.SnapshotIntervalMS) * time.Millisecond
}

func (c Config) EpochInterval() time.Duration {
	return time.Duration(c.EpochIntervalMS) * time.Millisecond
}
