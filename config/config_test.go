package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 2*time.Second, cfg.SettlementTimeout())
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"listenAddr": ":6000",
		"pair": "ETH/USD",
		"baseAsset": "ETH",
		"quoteAsset": "USD",
		"settlementTimeoutMs": 500,
		"balances": [
			{"trader": "7f9c24e5-2f44-48c6-9b3e-6ae907a6ad6c", "asset": "ETH", "amount": 100}
		]
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":6000", cfg.ListenAddr)
	require.Equal(t, "ETH", cfg.BaseAsset)
	require.Equal(t, 500*time.Millisecond, cfg.SettlementTimeout())
	require.Len(t, cfg.Balances, 1)
	require.EqualValues(t, 100, cfg.Balances[0].Amount)

	// Untouched fields keep their defaults.
	require.Equal(t, Default().EventTopic, cfg.EventTopic)
	require.Equal(t, Default().Brokers, cfg.Brokers)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	write := func(body string) string {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	_, err := Load(write(`{"baseAsset": "USD", "quoteAsset": "USD"}`))
	require.Error(t, err)

	_, err = Load(write(`{"settlementTimeoutMs": 0}`))
	require.Error(t, err)

	_, err = Load(write(`not json`))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
