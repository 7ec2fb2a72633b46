package server

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	DefaultPort      = 80
	DefaultStaticDir = "./static"
	MaxPort          = 65535
)

var ErrInvalidPort = errors.New("invalid port number")

// Config holds the listening port and the static file root
type Config struct {
	Port      int
	StaticDir string
}

// DefaultConfig listens on port 80 and serves ./static
func DefaultConfig() Config {
	return Config{
		Port:      DefaultPort,
		StaticDir: DefaultStaticDir,
	}
}

// Validate checks the port is in (0, 65535]
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > MaxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// Addr is the listen address on all interfaces
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ParsePort parses a decimal port number in (0, 65535]
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	if port <= 0 || port > MaxPort {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	return port, nil
}
