// Package server provides the websocket audio gateway.
//
// AudioGateway exposes the μ-law codec over websocket endpoints:
//
//   - /ws/audio  echoes validated PCM16 frames back unchanged
//   - /ws/mulaw  encodes PCM16 frames to μ-law
//   - /ws/pcm    decodes μ-law frames to PCM16
//   - /health    liveness probe
//   - /codecs    discovered codec backends
//
// Every websocket endpoint enforces the same frame discipline: binary
// frames only, at most MaxFrameSize bytes (violation closes with 1009),
// and for PCM16 payloads an even byte count (violation closes with 1003).
// An internal failure closes with 1011. The codec core itself stays free
// of I/O and logging; this package owns both.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/rtaudio/audiogate/pkg/audio"
	"github.com/rtaudio/audiogate/pkg/codec"
)

// frameFunc transforms one validated incoming frame into the reply frame.
type frameFunc func(frame []byte) ([]byte, error)

// AudioGateway terminates websocket audio connections and runs them
// through the selected codec backend.
type AudioGateway struct {
	config   GatewayConfig
	resolver *codec.Resolver
	upgrader websocket.Upgrader
	server   *http.Server
	log      zerolog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAudioGateway creates a gateway over a discovered codec resolver.
func NewAudioGateway(config GatewayConfig, resolver *codec.Resolver, logger zerolog.Logger) *AudioGateway {
	config.applyDefaults()

	return &AudioGateway{
		config:   config,
		resolver: resolver,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: logger,
	}
}

// Handler returns the gateway's HTTP handler. Exposed separately from
// Start so tests can serve it from httptest.
func (g *AudioGateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", g.handleHealth)
	mux.HandleFunc("/codecs", g.handleCodecs)
	mux.HandleFunc("/ws/audio", g.handleEcho)
	mux.HandleFunc("/ws/mulaw", g.handleEncode)
	mux.HandleFunc("/ws/pcm", g.handleDecode)
	return mux
}

// Start begins serving in the background. The gateway shuts down when the
// given context is cancelled or Stop is called, whichever comes first.
func (g *AudioGateway) Start(ctx context.Context) error {
	ctx, g.cancel = context.WithCancel(ctx)

	g.server = &http.Server{
		Addr:    g.config.Addr,
		Handler: g.Handler(),
	}

	g.log.Info().
		Str("addr", g.config.Addr).
		Int64("max_frame_size", g.config.MaxFrameSize).
		Dur("idle_timeout", g.config.IdleTimeout).
		Msg("starting audio gateway")

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := g.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			g.log.Error().Err(err).Msg("server error")
		}
	}()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		g.server.Shutdown(shutCtx)
	}()

	return nil
}

// Stop shuts the gateway down gracefully.
func (g *AudioGateway) Stop() error {
	if g.cancel != nil {
		g.cancel()
	}
	g.wg.Wait()
	g.log.Info().Msg("audio gateway stopped")
	return nil
}

func (g *AudioGateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (g *AudioGateway) handleCodecs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(g.resolver.Info())
}

// handleEcho validates PCM16 frames and echoes them back unchanged.
func (g *AudioGateway) handleEcho(w http.ResponseWriter, r *http.Request) {
	g.serveFrames(w, r, "echo", func(frame []byte) ([]byte, error) {
		if _, err := audio.BytesToPCM16(frame); err != nil {
			return nil, err
		}
		return frame, nil
	})
}

// handleEncode replies to each PCM16 frame with its μ-law encoding.
func (g *AudioGateway) handleEncode(w http.ResponseWriter, r *http.Request) {
	backend := g.resolveBackend(r)
	g.serveFrames(w, r, "encode:"+backend.Name, func(frame []byte) ([]byte, error) {
		pcm, err := audio.BytesToPCM16(frame)
		if err != nil {
			return nil, err
		}
		return backend.Encode(pcm), nil
	})
}

// handleDecode replies to each μ-law frame with its PCM16 expansion.
func (g *AudioGateway) handleDecode(w http.ResponseWriter, r *http.Request) {
	backend := g.resolveBackend(r)
	g.serveFrames(w, r, "decode:"+backend.Name, func(frame []byte) ([]byte, error) {
		return audio.PCM16ToBytes(backend.Decode(frame)), nil
	})
}

// resolveBackend picks the codec backend for one connection from the
// ?codec= query parameter, falling back to the configured default.
func (g *AudioGateway) resolveBackend(r *http.Request) codec.Backend {
	name := r.URL.Query().Get("codec")
	if name == "" {
		name = g.config.DefaultCodec
	}
	return g.resolver.Resolve(name)
}

// serveFrames runs the per-connection frame loop shared by all websocket
// endpoints: upgrade, validate each frame, transform, reply.
func (g *AudioGateway) serveFrames(w http.ResponseWriter, r *http.Request, mode string, transform frameFunc) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sid := uuid.NewString()
	log := g.log.With().Str("session", sid).Str("mode", mode).Logger()
	log.Info().Str("remote", r.RemoteAddr).Msg("client connected")

	// Outer guard only; the frame-size policy is enforced below so the
	// violation can be logged before closing.
	conn.SetReadLimit(g.config.MaxFrameSize + 1024)

	for {
		conn.SetReadDeadline(time.Now().Add(g.config.IdleTimeout))
		msgType, frame, err := conn.ReadMessage()
		if err != nil {
			log.Info().Msg("client disconnected")
			return
		}

		if msgType != websocket.BinaryMessage {
			log.Warn().Int("type", msgType).Msg("non-binary frame")
			g.closeWith(conn, websocket.CloseUnsupportedData, "binary frames only")
			return
		}

		if int64(len(frame)) > g.config.MaxFrameSize {
			log.Warn().
				Int("size", len(frame)).
				Int64("max", g.config.MaxFrameSize).
				Msg("frame too large")
			g.closeWith(conn, websocket.CloseMessageTooBig, "frame too large")
			return
		}

		reply, err := transform(frame)
		if err != nil {
			if errors.Is(err, audio.ErrOddLength) {
				log.Warn().Int("size", len(frame)).Msg("invalid PCM16 frame, length must be even")
				g.closeWith(conn, websocket.CloseUnsupportedData, "PCM16 frames must have even length")
				return
			}
			log.Error().Err(err).Msg("frame handling failed")
			g.closeWith(conn, websocket.CloseInternalServerErr, "internal error")
			return
		}

		log.Debug().Int("in", len(frame)).Int("out", len(reply)).Msg("frame processed")

		if err := conn.WriteMessage(websocket.BinaryMessage, reply); err != nil {
			log.Warn().Err(err).Msg("write failed")
			return
		}
	}
}

// closeWith sends a close frame with the given status before dropping the
// connection.
func (g *AudioGateway) closeWith(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	deadline := time.Now().Add(time.Second)
	if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		g.log.Debug().Err(err).Msg(fmt.Sprintf("close frame not sent (code %d)", code))
	}
}
