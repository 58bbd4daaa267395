package analyze

import (
	"math"

	"github.com/mamora/signalbot/internal/model"
)

// Zones is the recommended price band to act at, with the favorable and
// adverse exits. Values carry full precision; formatting happens at assembly.
type Zones struct {
	EntryLow  float64
	EntryHigh float64
	Target    float64
	StopLoss  float64
}

// CalcZones derives the entry band, target and stop from the current price and
// the relative Bollinger band width. A collapsed or indeterminate band means
// zero volatility and the zones degenerate toward the price itself.
func CalcZones(price float64, verdict model.Verdict, ind model.IndicatorSet, p ZonePolicy) Zones {
	volatility := math.Abs(ind.BBUpper-ind.BBLower) / price
	if math.IsNaN(volatility) || math.IsInf(volatility, 0) {
		volatility = 0
	}

	switch verdict {
	case model.VerdictBuy:
		return Zones{
			EntryLow:  price * (1 - volatility*p.EntryPull),
			EntryHigh: price * (1 + volatility*p.EntryChase),
			Target:    price * (1 + volatility*p.TargetMult),
			StopLoss:  price * (1 - volatility*p.StopMult),
		}
	case model.VerdictSell:
		return Zones{
			EntryLow:  price * (1 - volatility*p.EntryChase),
			EntryHigh: price * (1 + volatility*p.EntryPull),
			Target:    price * (1 - volatility*p.TargetMult),
			StopLoss:  price * (1 + volatility*p.StopMult),
		}
	default:
		return Zones{
			EntryLow:  price * (1 - p.HoldBand),
			EntryHigh: price * (1 + p.HoldBand),
			Target:    price,
			StopLoss:  price,
		}
	}
}
