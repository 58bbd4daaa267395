package calculate

import "math"

const rsiPeriod = 14

// rsiAccumulator tracks rolling averages of close-to-close gains and losses.
// Losses are accumulated as positive magnitudes.
type rsiAccumulator struct {
	gains  *rollingWindow
	losses *rollingWindow
	prev   float64
	seen   bool
}

func newRSI() *rsiAccumulator {
	return &rsiAccumulator{
		gains:  newRollingWindow(rsiPeriod),
		losses: newRollingWindow(rsiPeriod),
	}
}

func (r *rsiAccumulator) Push(close float64) {
	if r.seen {
		change := close - r.prev
		if change > 0 {
			r.gains.Push(change)
			r.losses.Push(0)
		} else {
			r.gains.Push(0)
			r.losses.Push(-change)
		}
	}
	r.prev = close
	r.seen = true
}

// Value returns the RSI snapshot. A zero average loss is the infinity limit of
// the relative-strength ratio and clamps to 100; a flat window where gains are
// also zero carries no directional information and reads as the neutral 50.
func (r *rsiAccumulator) Value() float64 {
	avgGain := r.gains.Mean()
	avgLoss := r.losses.Mean()
	if math.IsNaN(avgGain) || math.IsNaN(avgLoss) {
		return math.NaN()
	}
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
