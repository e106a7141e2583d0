package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cursedclash/clash-server-go/internal/game/catalog"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig      `mapstructure:"server"`
	Logging LoggingConfig     `mapstructure:"logging"`
	Engine  EngineConfig      `mapstructure:"engine"`
	Catalog catalog.Overrides `mapstructure:"catalog"`
}

// ServerConfig configures the network relay.
type ServerConfig struct {
	WebSocket       WebSocketConfig `mapstructure:"websocket"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
}

// WebSocketConfig configures the websocket listener.
type WebSocketConfig struct {
	Address         string        `mapstructure:"address"`
	Path            string        `mapstructure:"path"`
	ReadBufferSize  int           `mapstructure:"read_buffer_size"`
	WriteBufferSize int           `mapstructure:"write_buffer_size"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	PingInterval    time.Duration `mapstructure:"ping_interval"`
	MaxMessageSize  int64         `mapstructure:"max_message_size"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig holds the global rule numbers.
type EngineConfig struct {
	HandSize     int `mapstructure:"hand_size"`
	RegenPercent int `mapstructure:"regen_percent"`
	// Seed makes every match reproducible when non-zero.
	Seed          uint64 `mapstructure:"seed"`
	RecordReplays bool   `mapstructure:"record_replays"`
}

// Load reads the YAML file at path, if it exists, and applies CLASH_*
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CLASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.websocket.address", ":8080")
	v.SetDefault("server.websocket.path", "/ws")
	v.SetDefault("server.websocket.read_buffer_size", 1024)
	v.SetDefault("server.websocket.write_buffer_size", 1024)
	v.SetDefault("server.websocket.allowed_origins", []string{})
	v.SetDefault("server.websocket.write_timeout", 10*time.Second)
	v.SetDefault("server.websocket.ping_interval", 30*time.Second)
	v.SetDefault("server.websocket.max_message_size", 64*1024)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("engine.hand_size", 5)
	v.SetDefault("engine.regen_percent", 20)
	v.SetDefault("engine.seed", 0)
	v.SetDefault("engine.record_replays", false)

	v.SetDefault("catalog.dummy_hp", catalog.DefaultDummyHP)
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Server.WebSocket.Address == "" {
		return fmt.Errorf("server.websocket.address is required")
	}
	if c.Engine.HandSize <= 0 {
		return fmt.Errorf("engine.hand_size must be positive, got %d", c.Engine.HandSize)
	}
	if c.Engine.RegenPercent < 0 || c.Engine.RegenPercent > 100 {
		return fmt.Errorf("engine.regen_percent must be within 0..100, got %d", c.Engine.RegenPercent)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
