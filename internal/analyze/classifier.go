package analyze

import (
	"math"

	"github.com/mamora/signalbot/internal/model"
)

// Factor tags appended by the classifier rules, in rule order.
const (
	FactorRSIOversold   = "RSI oversold"
	FactorRSIOverbought = "RSI overbought"
	FactorMACDBullish   = "MACD bullish"
	FactorMACDBearish   = "MACD bearish"
	FactorPriceAboveMAs = "Price above MAs"
	FactorPriceBelowMAs = "Price below MAs"
	FactorNearLowerBB   = "Near lower BB"
	FactorNearUpperBB   = "Near upper BB"
	FactorStrongVolume  = "Strong volume"
)

// Classify scores one indicator snapshot against the rule table. Each rule
// contributes independently to the signed strength sum; indeterminate (NaN)
// inputs fire no rule and contribute zero. A raw strength at or inside the
// thresholds resolves to HOLD.
func Classify(ind model.IndicatorSet, price float64, p RulePolicy) model.SignalAnalysis {
	var strength float64
	var factors []string

	if ind.RSI < p.RSIOversold {
		strength += p.RSIWeight
		factors = append(factors, FactorRSIOversold)
	} else if ind.RSI > p.RSIOverbought {
		strength -= p.RSIWeight
		factors = append(factors, FactorRSIOverbought)
	}

	if !math.IsNaN(ind.MACDHist) {
		if ind.MACDHist > 0 {
			strength += p.MACDWeight
			factors = append(factors, FactorMACDBullish)
		} else {
			strength -= p.MACDWeight
			factors = append(factors, FactorMACDBearish)
		}
	}

	if price > ind.SMA20 && ind.SMA20 > ind.SMA50 {
		strength += p.TrendWeight
		factors = append(factors, FactorPriceAboveMAs)
	} else if price < ind.SMA20 && ind.SMA20 < ind.SMA50 {
		strength -= p.TrendWeight
		factors = append(factors, FactorPriceBelowMAs)
	}

	if price < ind.BBLower {
		strength += p.BandWeight
		factors = append(factors, FactorNearLowerBB)
	} else if price > ind.BBUpper {
		strength -= p.BandWeight
		factors = append(factors, FactorNearUpperBB)
	}

	// Volume only confirms; it never moves the strength sum on its own.
	if ind.VolumeCurrent > ind.VolumeAvg*p.VolumeSpike {
		factors = append(factors, FactorStrongVolume)
	}

	verdict := model.VerdictHold
	if strength > p.BuyThreshold {
		verdict = model.VerdictBuy
	} else if strength < p.SellThreshold {
		verdict = model.VerdictSell
	}

	return model.SignalAnalysis{
		Verdict:     verdict,
		RawStrength: strength,
		Strength:    math.Abs(strength),
		Factors:     factors,
	}
}
