package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mamora/signalbot/internal/api/twelvedata"
	"github.com/mamora/signalbot/internal/assemble"
	"github.com/mamora/signalbot/internal/calculate"
	"github.com/mamora/signalbot/internal/config"
	"github.com/mamora/signalbot/internal/database"
	"github.com/mamora/signalbot/internal/model"
	"github.com/mamora/signalbot/internal/notifier"
	"github.com/mamora/signalbot/internal/source"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting signal analyzer")

	timeframe := model.Timeframe(cfg.Timeframe)
	if !timeframe.Valid() {
		log.Fatal().Str("timeframe", cfg.Timeframe).Msg("Unknown timeframe")
	}

	policy, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load scoring policy")
	}

	opts := calculate.Options{}
	if cfg.MACDSignalMode == "ema9" {
		opts.MACDSignal = calculate.MACDSeries
	}
	pipeline := assemble.NewPipeline(policy, opts)

	client := twelvedata.NewClient(twelvedata.ClientOptions{
		APIKey:         cfg.TwelveAPIKey,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: 5,
	})

	var recorder *database.DB
	if cfg.DatabaseURL != "" {
		recorder, err = database.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer recorder.Close()
	}

	var telegram *notifier.Telegram
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		telegram, err = notifier.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Telegram notifier")
		}
	}

	var secondary source.Provider
	if cfg.DualSource {
		seed := cfg.SecondarySeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		secondary = source.NewSimulated(seed)
	}

	for _, symbol := range cfg.Symbols {
		analyzeSymbol(ctx, symbol, timeframe, cfg, client, pipeline, secondary, recorder, telegram)
	}
}

func analyzeSymbol(ctx context.Context, symbol string, tf model.Timeframe, cfg *config.Config,
	client *twelvedata.Client, pipeline *assemble.Pipeline, secondary source.Provider,
	recorder *database.DB, telegram *notifier.Telegram) {

	candles, err := client.GetCandles(ctx, symbol, tf, cfg.CandleCount)
	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("Failed to fetch candles")
		return
	}

	signal, err := pipeline.Generate(symbol, tf, candles)
	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("Failed to generate signal")
		return
	}

	rendered := assemble.Render(signal)
	fmt.Println(rendered)
	fmt.Println()

	if secondary != nil {
		dual, err := pipeline.GenerateDual(symbol, candles, secondary)
		if err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("Failed to reconcile dual source")
		} else {
			log.Info().
				Str("symbol", dual.Symbol).
				Str("verdict", string(dual.Verdict)).
				Float64("confidence", dual.Confidence).
				Float64("price_a", dual.PriceA).
				Float64("price_b", dual.PriceB).
				Msg("Dual-source reconciliation")
		}
	}

	if recorder != nil {
		if err := recorder.SaveSignal(ctx, signal); err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("Failed to record signal")
		}
	}
	if telegram != nil {
		if err := telegram.Send(rendered); err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("Failed to deliver signal")
		}
	}
}

// setupSignalHandling configures signal handling for graceful shutdown
func setupSignalHandling(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Shutdown signal received, exiting...")
		cancel()
		os.Exit(0)
	}()
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}
