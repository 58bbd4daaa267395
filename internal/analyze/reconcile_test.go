package analyze

import (
	"testing"
	"time"

	"github.com/mamora/signalbot/internal/model"
)

// agreeableSet fires only the RSI oversold rule when paired with itself: the
// MACD lines are equal, the price sits on both moving averages and inside the
// bands.
func agreeableSet(rsi float64) model.IndicatorSet {
	return model.IndicatorSet{
		SMA20:      100,
		SMA50:      100,
		RSI:        rsi,
		MACD:       0,
		MACDSignal: 0,
		BBUpper:    120,
		BBLower:    80,
	}
}

func TestReconcileAgreement(t *testing.T) {
	policy := DefaultPolicy().Dual
	now := time.Now()

	tests := []struct {
		name        string
		rsiA, rsiB  float64
		wantVerdict model.Verdict
	}{
		{"both oversold", 25, 30, model.VerdictBuy},
		{"asymmetric window allows noisier second source", 29, 34, model.VerdictBuy},
		{"both overbought", 75, 70, model.VerdictSell},
		{"first source alone does not count", 25, 50, model.VerdictHold},
		{"second source alone does not count", 50, 30, model.VerdictHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Observation{LastPrice: 100, Set: agreeableSet(tt.rsiA)}
			b := Observation{LastPrice: 100, Set: agreeableSet(tt.rsiB)}
			got := Reconcile("BTC-USD", a, b, policy, now)

			if got.Verdict != tt.wantVerdict {
				t.Errorf("verdict = %v, want %v", got.Verdict, tt.wantVerdict)
			}
		})
	}
}

func TestReconcileNoRulesDefaultsToMidpoint(t *testing.T) {
	policy := DefaultPolicy().Dual
	a := Observation{LastPrice: 100, Set: agreeableSet(50)}
	b := Observation{LastPrice: 100, Set: agreeableSet(50)}

	got := Reconcile("BTC-USD", a, b, policy, time.Now())
	if got.Verdict != model.VerdictHold {
		t.Errorf("verdict = %v, want HOLD", got.Verdict)
	}
	if got.Confidence != 0.5 {
		t.Errorf("confidence = %v, want midpoint 0.5", got.Confidence)
	}
}

func TestReconcileConfidenceDecreasesWithPriceGap(t *testing.T) {
	policy := DefaultPolicy().Dual
	now := time.Now()
	a := Observation{LastPrice: 100, Set: agreeableSet(25)}

	prev := 2.0
	for _, priceB := range []float64{100, 101, 102, 104, 106, 108} {
		b := Observation{LastPrice: priceB, Set: agreeableSet(30)}
		got := Reconcile("BTC-USD", a, b, policy, now)

		if got.Confidence >= prev {
			t.Fatalf("confidence %v at priceB=%v not below previous %v", got.Confidence, priceB, prev)
		}
		if got.Confidence < policy.MinBase || got.Confidence > 1 {
			t.Fatalf("confidence %v outside [%v,1]", got.Confidence, policy.MinBase)
		}
		prev = got.Confidence
	}
}

func TestReconcileConfidenceFloorsOnWideGap(t *testing.T) {
	policy := DefaultPolicy().Dual
	a := Observation{LastPrice: 100, Set: agreeableSet(25)}
	b := Observation{LastPrice: 150, Set: agreeableSet(30)}

	got := Reconcile("BTC-USD", a, b, policy, time.Now())
	if got.Confidence != policy.MinBase {
		t.Errorf("confidence = %v, want floor %v", got.Confidence, policy.MinBase)
	}
}

func TestReconcileWeakAverageScalesConfidenceDown(t *testing.T) {
	policy := DefaultPolicy().Dual

	// Trend rule up (+0.5) and band rule down is impossible simultaneously, so
	// combine the RSI buy with an opposing MACD agreement: strength 0, two
	// rules fired, average 0.
	set := agreeableSet(25)
	set.MACD = -1
	set.MACDSignal = 0
	a := Observation{LastPrice: 100, Set: set}
	bSet := agreeableSet(30)
	bSet.MACD = -1
	bSet.MACDSignal = 0
	b := Observation{LastPrice: 100, Set: bSet}

	got := Reconcile("BTC-USD", a, b, policy, time.Now())
	if got.Verdict != model.VerdictHold {
		t.Errorf("verdict = %v, want HOLD for a zero average", got.Verdict)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 when the fired rules cancel", got.Confidence)
	}
}

func TestReconcileIndeterminateSourcesHold(t *testing.T) {
	policy := DefaultPolicy().Dual
	a := Observation{LastPrice: 100, Set: indeterminateSet()}
	b := Observation{LastPrice: 100, Set: indeterminateSet()}

	got := Reconcile("BTC-USD", a, b, policy, time.Now())
	if got.Verdict != model.VerdictHold || got.Confidence != 0.5 {
		t.Errorf("got %v/%v, want HOLD/0.5 for indeterminate sources", got.Verdict, got.Confidence)
	}
}
