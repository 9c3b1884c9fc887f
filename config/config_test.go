package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
service: mimir-test
log_level: debug
epoch_interval: 5s

grpc:
  enabled: true
  addr: ":6000"

feed:
  enabled: true
  driver: segmentio
  brokers:
    - broker-1:9092
    - broker-2:9092
  topic: trades.test
  outbox_dir: /tmp/outbox-test
  interval: 1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "mimir-test", cfg.Service)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5*time.Second, cfg.EpochInterval)
	require.True(t, cfg.GRPC.Enabled)
	require.Equal(t, ":6000", cfg.GRPC.Addr)
	require.True(t, cfg.Feed.Enabled)
	require.Equal(t, "segmentio", cfg.Feed.Driver)
	require.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Feed.Brokers)
	require.Equal(t, "trades.test", cfg.Feed.Topic)
	require.Equal(t, time.Second, cfg.Feed.Interval)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "service: mimir\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 2*time.Second, cfg.EpochInterval)
	require.False(t, cfg.GRPC.Enabled)
	require.Equal(t, ":50051", cfg.GRPC.Addr)
	require.False(t, cfg.Feed.Enabled)
	require.Equal(t, "sarama", cfg.Feed.Driver)
	require.Equal(t, "mimir.trades", cfg.Feed.Topic)
	require.Equal(t, 250*time.Millisecond, cfg.Feed.Interval)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "service: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
}
