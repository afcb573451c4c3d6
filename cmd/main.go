package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rtaudio/audiogate/pkg/codec"
	"github.com/rtaudio/audiogate/pkg/server"
)

func initLogger() {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(level)
}

func loadConfig() server.GatewayConfig {
	cfg := server.GatewayConfig{
		DefaultCodec: os.Getenv("CODEC"),
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := os.Getenv("MAX_FRAME_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxFrameSize = n
		} else {
			log.Warn().Str("MAX_FRAME_SIZE", v).Msg("ignoring invalid value")
		}
	}
	if v := os.Getenv("IDLE_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.IdleTimeout = time.Duration(n) * time.Second
		} else {
			log.Warn().Str("IDLE_TIMEOUT", v).Msg("ignoring invalid value")
		}
	}
	return cfg
}

func main() {
	godotenv.Load()
	initLogger()

	resolver := codec.NewResolver(codec.Detect(), log.Logger)
	info := resolver.Info()
	log.Info().
		Strs("available", info.Available).
		Str("default", info.Default).
		Msg("codec backends discovered")

	gateway := server.NewAudioGateway(loadConfig(), resolver, log.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := gateway.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start gateway")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	gateway.Stop()
}
