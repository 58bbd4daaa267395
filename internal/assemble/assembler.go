package assemble

import (
	"fmt"
	"time"

	"github.com/mamora/signalbot/internal/analyze"
	"github.com/mamora/signalbot/internal/model"
)

// assetAliases maps raw provider codes to the canonical display pair.
// Unmapped codes render as-is.
var assetAliases = map[string]string{
	"EURUSD=X": "EUR/USD",
	"GBPUSD=X": "GBP/USD",
	"USDJPY=X": "USD/JPY",
	"AUDUSD=X": "AUD/USD",
	"USDCAD=X": "USD/CAD",
	"BTC-USD":  "BTC/USDT",
	"ETH-USD":  "ETH/USDT",
	"BNB-USD":  "BNB/USDT",
	"ADA-USD":  "ADA/USDT",
	"SOL-USD":  "SOL/USDT",
}

// contractPeriods recommends a holding period per timeframe; the longer label
// applies when the signal strength clears strongSignalStrength.
var contractPeriods = map[model.Timeframe]struct{ strong, weak string }{
	model.Timeframe1m:  {"15 minutes", "5 minutes"},
	model.Timeframe5m:  {"1 hour", "30 minutes"},
	model.Timeframe15m: {"4 hours", "2 hours"},
	model.Timeframe1h:  {"1 day", "8 hours"},
	model.Timeframe4h:  {"3 days", "1 day"},
	model.Timeframe1d:  {"1 week", "3 days"},
}

const (
	strongSignalStrength  = 0.7
	defaultContractPeriod = "2 hours"
)

// FormatAsset returns the display form of a raw instrument code.
func FormatAsset(symbol string) string {
	if alias, ok := assetAliases[symbol]; ok {
		return alias
	}
	return symbol
}

// ContractPeriod returns the recommended holding-period label for a timeframe
// and signal strength.
func ContractPeriod(tf model.Timeframe, strength float64) string {
	periods, ok := contractPeriods[tf]
	if !ok {
		return defaultContractPeriod
	}
	if strength > strongSignalStrength {
		return periods.strong
	}
	return periods.weak
}

// Assemble builds the immutable trading signal record from the pipeline
// outputs, applying display formatting and stamping the creation time.
func Assemble(symbol string, tf model.Timeframe, analysis model.SignalAnalysis,
	confidence int, zones analyze.Zones, reasoning string, now time.Time) model.TradingSignal {
	return model.TradingSignal{
		Asset:          FormatAsset(symbol),
		Verdict:        analysis.Verdict,
		Timeframe:      tf,
		ContractPeriod: ContractPeriod(tf, analysis.Strength),
		EntryLow:       formatPrice(zones.EntryLow),
		EntryHigh:      formatPrice(zones.EntryHigh),
		Target:         formatPrice(zones.Target),
		StopLoss:       formatPrice(zones.StopLoss),
		Confidence:     confidence,
		Reasoning:      reasoning,
		CreatedAt:      now,
	}
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
