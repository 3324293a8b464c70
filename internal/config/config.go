package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the relay's environment configuration. Everything here is
// operational: nothing in it changes the wire contract.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	// AllowedOrigin restricts browser upgrades to one origin. Empty allows
	// any origin, the usual development posture.
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN"`
	// SendQueueSize is the per-connection outbound buffer. A connection that
	// overflows it is dropped.
	SendQueueSize   int           `envconfig:"SEND_QUEUE_SIZE" default:"256"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Addr returns the listen address, accepting PORT with or without a leading
// colon.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
