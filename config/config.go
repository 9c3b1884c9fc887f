// Package config loads server configuration from yaml with
// MIMIR_* environment overrides.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Service       string        `mapstructure:"service"`
	LogLevel      string        `mapstructure:"log_level"`
	EpochInterval time.Duration `mapstructure:"epoch_interval"`
	GRPC          GRPCConfig    `mapstructure:"grpc"`
	Feed          FeedConfig    `mapstructure:"feed"`
}

type GRPCConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type FeedConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Driver    string        `mapstructure:"driver"` // "sarama" or "segmentio"
	Brokers   []string      `mapstructure:"brokers"`
	Topic     string        `mapstructure:"topic"`
	OutboxDir string        `mapstructure:"outbox_dir"`
	Interval  time.Duration `mapstructure:"interval"`
}

// Load reads path when given, otherwise config/server.yaml, then
// applies environment overrides. A missing file is not an error;
// defaults plus environment still make a usable config.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("server")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MIMIR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("service", "mimir")
	v.SetDefault("log_level", "info")
	v.SetDefault("epoch_interval", 2*time.Second)
	v.SetDefault("grpc.enabled", false)
	v.SetDefault("grpc.addr", ":50051")
	v.SetDefault("feed.enabled", false)
	v.SetDefault("feed.driver", "sarama")
	v.SetDefault("feed.topic", "mimir.trades")
	v.SetDefault("feed.outbox_dir", "./outbox")
	v.SetDefault("feed.interval", 250*time.Millisecond)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
