package analyze

import (
	"strings"

	"github.com/mamora/signalbot/internal/model"
)

const (
	reasonInconclusive = "Technical analysis inconclusive"
	reasonSideways     = "Mixed signals suggest sideways movement"
)

// Reason produces the short justification text for a verdict. It re-checks a
// looser set of thresholds than the classifier, so a near-miss rule can still
// be named in the explanation. Deterministic for the same inputs.
func Reason(analysis model.SignalAnalysis, ind model.IndicatorSet, p ReasoningPolicy) string {
	var reasons []string

	switch analysis.Verdict {
	case model.VerdictBuy:
		if ind.RSI < p.RSILow {
			reasons = append(reasons, "RSI indicates oversold conditions")
		}
		if ind.MACDHist > 0 {
			reasons = append(reasons, "MACD showing bullish momentum")
		}
		if hasFactor(analysis.Factors, FactorStrongVolume) {
			reasons = append(reasons, "Strong volume confirmation")
		}
	case model.VerdictSell:
		if ind.RSI > p.RSIHigh {
			reasons = append(reasons, "RSI indicates overbought conditions")
		}
		if ind.MACDHist < 0 {
			reasons = append(reasons, "MACD showing bearish momentum")
		}
		if hasFactor(analysis.Factors, FactorStrongVolume) {
			reasons = append(reasons, "Strong volume confirmation")
		}
	default:
		reasons = append(reasons, reasonSideways)
	}

	if len(reasons) == 0 {
		return reasonInconclusive
	}
	return strings.Join(reasons, "; ")
}

func hasFactor(factors []string, want string) bool {
	for _, f := range factors {
		if f == want {
			return true
		}
	}
	return false
}
