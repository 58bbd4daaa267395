package analyze

import (
	"math"
	"time"

	"github.com/mamora/signalbot/internal/model"
)

// Reconcile merges two independently observed views of the same instrument
// into one signal. A rule only counts when both sources agree on it, and the
// final confidence is the price-agreement base discounted by the average
// magnitude of the rules that fired. When no rule fires the verdict defaults
// to HOLD at the 0.5 midpoint. NaN indicator fields fail every agreement
// check, so indeterminate inputs cannot fire a rule.
func Reconcile(symbol string, a, b SignalSource, p DualPolicy, now time.Time) model.DualSourceSignal {
	indA := a.Indicators()
	indB := b.Indicators()
	priceA := a.Price()
	priceB := b.Price()

	var strength float64
	var fired int

	if indA.RSI < p.RSIOversoldA && indB.RSI < p.RSIOversoldB {
		strength += p.RSIWeight
		fired++
	} else if indA.RSI > p.RSIOverboughtA && indB.RSI > p.RSIOverboughtB {
		strength -= p.RSIWeight
		fired++
	}

	if indA.MACD > indA.MACDSignal && indB.MACD > indB.MACDSignal {
		strength += p.MACDWeight
		fired++
	} else if indA.MACD < indA.MACDSignal && indB.MACD < indB.MACDSignal {
		strength -= p.MACDWeight
		fired++
	}

	if priceA > indA.SMA20 && priceA > indA.SMA50 {
		strength += p.TrendWeight
		fired++
	} else if priceA < indA.SMA20 && priceA < indA.SMA50 {
		strength -= p.TrendWeight
		fired++
	}

	if priceA < indA.BBLower {
		strength += p.BandWeight
		fired++
	} else if priceA > indA.BBUpper {
		strength -= p.BandWeight
		fired++
	}

	verdict := model.VerdictHold
	confidence := 0.5
	if fired > 0 {
		avg := strength / float64(fired)
		confidence = baseConfidence(priceA, priceB, p) * math.Min(1, math.Abs(avg))
		if avg > p.BuyThreshold {
			verdict = model.VerdictBuy
		} else if avg < p.SellThreshold {
			verdict = model.VerdictSell
		}
	}

	return model.DualSourceSignal{
		Symbol:      symbol,
		Verdict:     verdict,
		Confidence:  confidence,
		PriceA:      priceA,
		PriceB:      priceB,
		Timestamp:   now,
		IndicatorsA: indA,
		IndicatorsB: indB,
	}
}

// baseConfidence collapses toward the floor as the two source prices diverge.
func baseConfidence(priceA, priceB float64, p DualPolicy) float64 {
	if priceA == 0 || math.IsNaN(priceA) || math.IsNaN(priceB) {
		return p.MinBase
	}
	gap := math.Abs(priceA-priceB) / priceA
	return math.Max(p.MinBase, 1-gap*p.GapPenalty)
}
