package source

import (
	"math/rand"

	"github.com/mamora/signalbot/internal/model"
)

// Simulated synthesizes a second feed by jittering the primary observation:
// the price within ±2% and each indicator within ±5%. Seeded, so runs are
// reproducible in tests. NaN fields stay NaN.
type Simulated struct {
	rng         *rand.Rand
	priceJitter float64
	indJitter   float64
}

// NewSimulated returns a simulated provider with the default jitter bounds.
func NewSimulated(seed int64) *Simulated {
	return &Simulated{
		rng:         rand.New(rand.NewSource(seed)),
		priceJitter: 0.02,
		indJitter:   0.05,
	}
}

func (s *Simulated) Observe(symbol string, price float64, ind model.IndicatorSet) (float64, model.IndicatorSet) {
	out := ind
	out.SMA20 = s.vary(ind.SMA20, s.indJitter)
	out.SMA50 = s.vary(ind.SMA50, s.indJitter)
	out.EMA12 = s.vary(ind.EMA12, s.indJitter)
	out.EMA26 = s.vary(ind.EMA26, s.indJitter)
	out.RSI = s.vary(ind.RSI, s.indJitter)
	out.MACD = s.vary(ind.MACD, s.indJitter)
	out.MACDSignal = s.vary(ind.MACDSignal, s.indJitter)
	out.MACDHist = s.vary(ind.MACDHist, s.indJitter)
	out.BBUpper = s.vary(ind.BBUpper, s.indJitter)
	out.BBMiddle = s.vary(ind.BBMiddle, s.indJitter)
	out.BBLower = s.vary(ind.BBLower, s.indJitter)
	out.StochK = s.vary(ind.StochK, s.indJitter)
	out.VolumeAvg = s.vary(ind.VolumeAvg, s.indJitter)
	out.VolumeCurrent = s.vary(ind.VolumeCurrent, s.indJitter)
	return s.vary(price, s.priceJitter), out
}

func (s *Simulated) vary(v, jitter float64) float64 {
	return v * (1 + (s.rng.Float64()*2-1)*jitter)
}
