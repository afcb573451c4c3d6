package server

import "time"

// GatewayConfig holds configuration for the audio gateway.
type GatewayConfig struct {
	// Addr is the listen address (e.g. ":8080")
	Addr string

	// MaxFrameSize caps incoming websocket frames; a larger frame closes
	// the connection with status 1009 (default: 1 MiB)
	MaxFrameSize int64

	// IdleTimeout closes connections with no incoming frames
	// (default: 5 minutes)
	IdleTimeout time.Duration

	// DefaultCodec is resolved when a client does not request one
	DefaultCodec string

	// ReadBufferSize for WebSocket (default: 1024)
	ReadBufferSize int

	// WriteBufferSize for WebSocket (default: 1024)
	WriteBufferSize int
}

func (c *GatewayConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.MaxFrameSize == 0 {
		c.MaxFrameSize = 1 << 20
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 5 * time.Minute
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = 1024
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = 1024
	}
}
