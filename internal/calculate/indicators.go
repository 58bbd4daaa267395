package calculate

import (
	"math"

	"github.com/mamora/signalbot/internal/model"
)

const (
	smaShortPeriod = 20
	smaLongPeriod  = 50
	emaFastSpan    = 12
	emaSlowSpan    = 26
	macdSignalSpan = 9
	bbPeriod       = 20
	bbStdDev       = 2.0
	stochPeriod    = 14
	volumePeriod   = 20
)

// MACDMode selects how the MACD signal line is derived from the snapshot.
type MACDMode int

const (
	// MACDSnapshot smooths the single latest MACD value, so the signal line
	// mirrors MACD and the histogram is always zero. This reproduces the
	// behavior of engines that keep no MACD series between calls.
	MACDSnapshot MACDMode = iota
	// MACDSeries maintains the MACD value per bar and applies a true 9-period
	// exponential smoothing over that series.
	MACDSeries
)

// Options tunes the parts of the snapshot that have more than one defensible
// definition. The zero value is the compatible default.
type Options struct {
	MACDSignal MACDMode
}

// Snapshot computes the full indicator set for a chronological candle series,
// evaluated at the most recent bar. It never panics on short input: any
// indicator whose window is not yet filled comes back NaN and the set carries
// the insufficient-history marker. Series validation belongs to the caller
// (see ValidateSeries).
func Snapshot(candles []model.Candle, opts Options) model.IndicatorSet {
	smaShort := newRollingWindow(smaShortPeriod)
	smaLong := newRollingWindow(smaLongPeriod)
	emaFast := newEMA(emaFastSpan)
	emaSlow := newEMA(emaSlowSpan)
	macdSignal := newEMA(macdSignalSpan)
	bb := newRollingWindow(bbPeriod)
	rsi := newRSI()
	lows := newRollingWindow(stochPeriod)
	highs := newRollingWindow(stochPeriod)
	volume := newRollingWindow(volumePeriod)

	for _, c := range candles {
		smaShort.Push(c.Close)
		smaLong.Push(c.Close)
		emaFast.Push(c.Close)
		emaSlow.Push(c.Close)
		bb.Push(c.Close)
		rsi.Push(c.Close)
		lows.Push(c.Low)
		highs.Push(c.High)
		volume.Push(float64(c.Volume))
		if opts.MACDSignal == MACDSeries {
			macdSignal.Push(emaFast.Value() - emaSlow.Value())
		}
	}

	set := model.IndicatorSet{
		SMA20: smaShort.Mean(),
		SMA50: smaLong.Mean(),
		EMA12: emaFast.Value(),
		EMA26: emaSlow.Value(),
		RSI:   rsi.Value(),
	}

	set.MACD = set.EMA12 - set.EMA26
	switch opts.MACDSignal {
	case MACDSeries:
		set.MACDSignal = macdSignal.Value()
	default:
		set.MACDSignal = set.MACD
	}
	set.MACDHist = set.MACD - set.MACDSignal

	mid := bb.Mean()
	sd := bb.StdDev()
	set.BBMiddle = mid
	set.BBUpper = mid + sd*bbStdDev
	set.BBLower = mid - sd*bbStdDev

	set.StochK = stochasticK(candles, lows, highs)

	set.VolumeAvg = volume.Mean()
	if len(candles) > 0 {
		set.VolumeCurrent = float64(candles[len(candles)-1].Volume)
	} else {
		set.VolumeCurrent = math.NaN()
	}

	set.InsufficientHistory = !set.Complete()
	return set
}

// stochasticK is (close − min(low,14)) / (max(high,14) − min(low,14)) × 100.
// A zero high-low range carries no position information and reads as the
// midpoint 50 rather than dividing by zero.
func stochasticK(candles []model.Candle, lows, highs *rollingWindow) float64 {
	low := lows.Min()
	high := highs.Max()
	if math.IsNaN(low) || math.IsNaN(high) || len(candles) == 0 {
		return math.NaN()
	}
	if high == low {
		return 50
	}
	close := candles[len(candles)-1].Close
	return (close - low) / (high - low) * 100
}
