package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jsphweid/chordcast/chord"
)

// Config is read from CHORDCAST_* environment variables. Command flags take
// precedence over it.
type Config struct {
	Addr             string        `env:"ADDR" envDefault:":8080"`
	ServerURL        string        `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	AllowedOrigins   []string      `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	DefaultKey       string        `env:"DEFAULT_KEY" envDefault:"C"`
	SubscriberBuffer int           `env:"SUBSCRIBER_BUFFER" envDefault:"16"`
	MidiPort         string        `env:"MIDI_PORT"`
	MidiDebounce     time.Duration `env:"MIDI_DEBOUNCE" envDefault:"30ms"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile          string        `env:"LOG_FILE"`
}

const envPrefix = "CHORDCAST_"

func Load() (Config, error) {
	return load(env.Options{Prefix: envPrefix})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := chord.ParseKey(c.DefaultKey); err != nil {
		return fmt.Errorf("default key: %w", err)
	}
	if c.SubscriberBuffer < 1 {
		return fmt.Errorf("subscriber buffer must be positive, got %d", c.SubscriberBuffer)
	}
	return nil
}
