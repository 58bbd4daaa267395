package assemble

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mamora/signalbot/internal/analyze"
	"github.com/mamora/signalbot/internal/calculate"
	"github.com/mamora/signalbot/internal/model"
	"github.com/mamora/signalbot/internal/source"
)

// Pipeline wires the indicator engine, classifier, confidence scorer, zone
// calculator and reasoning generator into one signal per invocation. It holds
// no mutable state between runs, so one Pipeline may serve many instruments
// concurrently.
type Pipeline struct {
	policy analyze.Policy
	opts   calculate.Options
	logger zerolog.Logger
}

// NewPipeline creates a pipeline with the given scoring policy.
func NewPipeline(policy analyze.Policy, opts calculate.Options) *Pipeline {
	return &Pipeline{
		policy: policy,
		opts:   opts,
		logger: log.With().Str("component", "pipeline").Logger(),
	}
}

// Generate produces one trading signal from a chronological candle series.
// It rejects malformed input; short input degrades to a low-information HOLD
// instead of failing.
func (p *Pipeline) Generate(symbol string, tf model.Timeframe, candles []model.Candle) (model.TradingSignal, error) {
	if !tf.Valid() {
		return model.TradingSignal{}, fmt.Errorf("unknown timeframe %q", tf)
	}
	if err := calculate.ValidateSeries(candles); err != nil {
		return model.TradingSignal{}, fmt.Errorf("validating %s series: %w", symbol, err)
	}

	ind := calculate.Snapshot(candles, p.opts)
	if ind.InsufficientHistory {
		p.logger.Warn().Str("symbol", symbol).Int("bars", len(candles)).
			Msg("Series shorter than longest indicator window, degraded signal")
	}
	price := candles[len(candles)-1].Close

	analysis := analyze.Classify(ind, price, p.policy.Rules)
	confidence := analyze.Score(analysis, ind, p.policy.Confidence)
	zones := analyze.CalcZones(price, analysis.Verdict, ind, p.policy.Zones)
	reasoning := analyze.Reason(analysis, ind, p.policy.Reasoning)

	signal := Assemble(symbol, tf, analysis, confidence, zones, reasoning, time.Now())

	p.logger.Debug().
		Str("symbol", symbol).
		Str("verdict", string(analysis.Verdict)).
		Float64("raw_strength", analysis.RawStrength).
		Int("confidence", confidence).
		Strs("factors", analysis.Factors).
		Msg("Signal generated")

	return signal, nil
}

// GenerateDual reconciles the primary series against a second observed source
// supplied by the provider.
func (p *Pipeline) GenerateDual(symbol string, candles []model.Candle, secondary source.Provider) (model.DualSourceSignal, error) {
	if err := calculate.ValidateSeries(candles); err != nil {
		return model.DualSourceSignal{}, fmt.Errorf("validating %s series: %w", symbol, err)
	}

	ind := calculate.Snapshot(candles, p.opts)
	price := candles[len(candles)-1].Close
	priceB, indB := secondary.Observe(symbol, price, ind)

	signal := analyze.Reconcile(symbol,
		analyze.Observation{LastPrice: price, Set: ind},
		analyze.Observation{LastPrice: priceB, Set: indB},
		p.policy.Dual, time.Now())

	p.logger.Debug().
		Str("symbol", symbol).
		Str("verdict", string(signal.Verdict)).
		Float64("confidence", signal.Confidence).
		Float64("price_a", signal.PriceA).
		Float64("price_b", signal.PriceB).
		Msg("Dual-source signal generated")

	return signal, nil
}
