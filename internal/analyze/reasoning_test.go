package analyze

import (
	"testing"

	"github.com/mamora/signalbot/internal/model"
)

func TestReason(t *testing.T) {
	policy := DefaultPolicy().Reasoning

	tests := []struct {
		name     string
		analysis model.SignalAnalysis
		modify   func(*model.IndicatorSet)
		want     string
	}{
		{
			name: "buy with full support",
			analysis: model.SignalAnalysis{
				Verdict: model.VerdictBuy,
				Factors: []string{FactorRSIOversold, FactorMACDBullish, FactorStrongVolume},
			},
			modify: func(s *model.IndicatorSet) {
				s.RSI = 30
				s.MACDHist = 0.2
			},
			want: "RSI indicates oversold conditions; MACD showing bullish momentum; Strong volume confirmation",
		},
		{
			name: "buy near-miss RSI still named",
			analysis: model.SignalAnalysis{
				Verdict: model.VerdictBuy,
				Factors: []string{FactorMACDBullish},
			},
			modify: func(s *model.IndicatorSet) {
				s.RSI = 33 // looser than the classifier's 30
				s.MACDHist = 0.2
			},
			want: "RSI indicates oversold conditions; MACD showing bullish momentum",
		},
		{
			name: "sell with bearish momentum",
			analysis: model.SignalAnalysis{
				Verdict: model.VerdictSell,
				Factors: []string{FactorRSIOverbought, FactorMACDBearish},
			},
			modify: func(s *model.IndicatorSet) {
				s.RSI = 70
				s.MACDHist = -0.2
			},
			want: "RSI indicates overbought conditions; MACD showing bearish momentum",
		},
		{
			name:     "hold falls back to sideways",
			analysis: model.SignalAnalysis{Verdict: model.VerdictHold},
			modify:   func(s *model.IndicatorSet) {},
			want:     "Mixed signals suggest sideways movement",
		},
		{
			name:     "buy with nothing to say",
			analysis: model.SignalAnalysis{Verdict: model.VerdictBuy},
			modify: func(s *model.IndicatorSet) {
				s.RSI = 50
				s.MACDHist = -0.1
			},
			want: "Technical analysis inconclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := neutralSet()
			tt.modify(&set)
			if got := Reason(tt.analysis, set, policy); got != tt.want {
				t.Errorf("Reason() = %q, want %q", got, tt.want)
			}
		})
	}
}
