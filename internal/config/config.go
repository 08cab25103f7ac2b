// Package config loads the process configuration from TXTRACKER_* environment
// variables and an optional YAML node list.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/txtracker/internal/nodepool"
	"github.com/gabapcia/txtracker/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Prefix of every environment variable read by Load.
const Prefix = "TXTRACKER"

type Scanner struct {
	StartBlock             uint64        `envconfig:"start_block" default:"62800000"`
	BatchSize              uint64        `envconfig:"batch_size" default:"100" validate:"gte=1"`
	ScanInterval           time.Duration `envconfig:"scan_interval" default:"3s" validate:"gt=0"`
	SpeedInterval          time.Duration `envconfig:"speed_interval" default:"60s" validate:"gt=0"`
	ErrorBackoff           time.Duration `envconfig:"error_backoff" default:"10s" validate:"gte=0"`
	TokenSymbol            string        `envconfig:"token_symbol" default:"USDT" validate:"required"`
	TokenDecimals          int           `envconfig:"token_decimals" default:"6" validate:"gte=0,lte=36"`
	NativeSymbol           string        `envconfig:"native_symbol" default:"TRX"`
	LargeTransferThreshold string        `envconfig:"large_transfer_threshold" validate:"omitempty,decimal"`
}

// Threshold returns the parsed large transfer threshold, nil when disabled.
func (s Scanner) Threshold() *decimal.Decimal {
	if s.LargeTransferThreshold == "" {
		return nil
	}

	// validated by Load
	threshold := decimal.RequireFromString(s.LargeTransferThreshold)
	return &threshold
}

type Webhook struct {
	Timeout        time.Duration `envconfig:"timeout" default:"30s" validate:"gt=0"`
	RetryAttempts  int           `envconfig:"retry_attempts" default:"3" validate:"gte=0,lte=20"`
	MaxConcurrency int           `envconfig:"max_concurrency" default:"100" validate:"gte=1"`
	BufferSize     int           `envconfig:"buffer_size" default:"1000" validate:"gte=1"`
}

type WebSocket struct {
	MaxConnections    int           `envconfig:"max_connections" default:"10000" validate:"gte=1"`
	PingInterval      time.Duration `envconfig:"ping_interval" default:"30s" validate:"gt=0"`
	MessageBufferSize int           `envconfig:"message_buffer_size" default:"1000" validate:"gte=1"`
	BufferSize        int           `envconfig:"buffer_size" default:"1000" validate:"gte=1"`
}

type Postgres struct {
	DSN             string        `envconfig:"dsn" validate:"required"`
	MaxOpenConns    int           `envconfig:"max_open_conns" default:"20" validate:"gte=1"`
	MaxIdleConns    int           `envconfig:"max_idle_conns" default:"10" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"conn_max_lifetime" default:"1h"`
}

// Redis is optional. When Addr is set, scan progress and statistics
// snapshots are kept in Redis instead of Postgres.
type Redis struct {
	Addr     string `envconfig:"addr" validate:"omitempty,hostname_port"`
	Username string `envconfig:"username"`
	Password string `envconfig:"password"`
	DB       int    `envconfig:"db" default:"0" validate:"gte=0"`
}

// NATS is optional. When URL is set, every event is also exported to
// JetStream.
type NATS struct {
	URL           string        `envconfig:"url"`
	Stream        string        `envconfig:"stream" default:"TXTRACKER_EVENTS"`
	SubjectPrefix string        `envconfig:"subject_prefix" default:"txtracker.events"`
	MaxAge        time.Duration `envconfig:"max_age" default:"24h"`

	// PublishTimeout bounds each export so a stalled broker cannot hold the
	// scanner back.
	PublishTimeout time.Duration `envconfig:"publish_timeout" default:"5s"`
}

type HTTP struct {
	Addr string `envconfig:"addr" default:":8080" validate:"required"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"enabled" default:"false"`
	ServiceName string `envconfig:"service_name" default:"txtracker"`
}

type Config struct {
	LogLevel  string `envconfig:"log_level" default:"info" validate:"oneof=debug info warn error"`
	NodesFile string `envconfig:"nodes_file"`
	NodeURL   string `envconfig:"node_url"`
	NodeKey   string `envconfig:"node_api_key"`

	Nodes []nodepool.Node `ignored:"true" validate:"required,min=1,dive"`

	Scanner   Scanner   `envconfig:"scanner"`
	Webhook   Webhook   `envconfig:"webhook"`
	WebSocket WebSocket `envconfig:"websocket"`
	Postgres  Postgres  `envconfig:"postgres"`
	Redis     Redis     `envconfig:"redis"`
	NATS      NATS      `envconfig:"nats"`
	HTTP      HTTP      `envconfig:"http"`
	Telemetry Telemetry `envconfig:"telemetry"`
}

type nodesFile struct {
	Nodes []nodepool.Node `yaml:"nodes"`
}

// LoadNodes reads the node list from a YAML file:
//
//	nodes:
//	  - name: trongrid
//	    url: https://api.trongrid.io
//	    api_key: secret
//	    priority: 1
//	    timeout: 10s
func LoadNodes(path string) ([]nodepool.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nodes file: %w", err)
	}

	var file nodesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse nodes file %s: %w", path, err)
	}

	return file.Nodes, nil
}

// Load reads the environment, resolves the node list and validates the
// result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	switch {
	case cfg.NodesFile != "":
		nodes, err := LoadNodes(cfg.NodesFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Nodes = nodes
	case cfg.NodeURL != "":
		cfg.Nodes = []nodepool.Node{{Name: "default", URL: cfg.NodeURL, APIKey: cfg.NodeKey}}
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
