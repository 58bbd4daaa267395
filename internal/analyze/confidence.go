package analyze

import (
	"math"

	"github.com/mamora/signalbot/internal/model"
)

// Score converts strength plus supporting indicator extremity into the
// displayed confidence percentage. The base is a neutral prior; the clamp
// keeps the output away from both absolute certainty and absolute noise.
// NaN indicator fields fail every extremity check and add nothing.
func Score(analysis model.SignalAnalysis, ind model.IndicatorSet, p ConfidencePolicy) int {
	adjustment := analysis.Strength * p.StrengthFactor

	if ind.RSI < p.RSIExtremeLow || ind.RSI > p.RSIExtremeHigh {
		adjustment += p.RSIExtremeBonus
	}
	if math.Abs(ind.MACDHist) > p.MACDHistStrong {
		adjustment += p.MACDBonus
	}
	if ind.VolumeCurrent > ind.VolumeAvg*p.VolumeSurge {
		adjustment += p.VolumeBonus
	}

	confidence := int(math.Round(p.Base + adjustment))
	if confidence > p.Max {
		return p.Max
	}
	if confidence < p.Min {
		return p.Min
	}
	return confidence
}
