package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Symbols, []string{"EUR/USD"}) {
		t.Errorf("Symbols = %v, want default EUR/USD", cfg.Symbols)
	}
	if cfg.Timeframe != "15m" {
		t.Errorf("Timeframe = %q, want 15m", cfg.Timeframe)
	}
	if cfg.CandleCount != 90 {
		t.Errorf("CandleCount = %d, want 90", cfg.CandleCount)
	}
	if cfg.MACDSignalMode != "snapshot" {
		t.Errorf("MACDSignalMode = %q, want snapshot", cfg.MACDSignalMode)
	}
	if cfg.DualSource {
		t.Error("DualSource should default to off")
	}
}

func TestLoadSymbolListSplitting(t *testing.T) {
	t.Setenv("SYMBOLS", "EURUSD=X, BTC-USD ,AAPL,")
	t.Setenv("DUAL_SOURCE", "true")
	t.Setenv("CANDLE_COUNT", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := []string{"EURUSD=X", "BTC-USD", "AAPL"}
	if !reflect.DeepEqual(cfg.Symbols, want) {
		t.Errorf("Symbols = %v, want %v", cfg.Symbols, want)
	}
	if !cfg.DualSource {
		t.Error("DUAL_SOURCE=true not honored")
	}
	if cfg.CandleCount != 120 {
		t.Errorf("CandleCount = %d, want 120", cfg.CandleCount)
	}
}
