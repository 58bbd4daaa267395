package model

import "time"

// Verdict is the discrete trading recommendation.
type Verdict string

const (
	VerdictBuy  Verdict = "BUY"
	VerdictSell Verdict = "SELL"
	VerdictHold Verdict = "HOLD"
)

// SignalAnalysis is the classifier output for one pipeline run: the verdict,
// the signed rule-contribution sum, and the tags of the rules that fired.
type SignalAnalysis struct {
	Verdict     Verdict  `json:"verdict"`
	RawStrength float64  `json:"raw_strength"`
	Strength    float64  `json:"strength"`
	Factors     []string `json:"factors"`
}

// TradingSignal is the final immutable record produced once per pipeline run.
// Price fields are display-formatted strings; the underlying math keeps full
// precision until assembly.
type TradingSignal struct {
	Asset          string    `json:"asset"`
	Verdict        Verdict   `json:"signal"`
	Timeframe      Timeframe `json:"timeframe"`
	ContractPeriod string    `json:"contract_period"`
	EntryLow       string    `json:"entry_low"`
	EntryHigh      string    `json:"entry_high"`
	Target         string    `json:"target"`
	StopLoss       string    `json:"stop_loss"`
	Confidence     int       `json:"confidence"`
	Reasoning      string    `json:"reasoning"`
	CreatedAt      time.Time `json:"created_at"`
}

// DualSourceSignal is the reconciliation of two independently observed views
// of the same instrument. Confidence is a real in [0,1], discounted by how far
// the two source prices disagree.
type DualSourceSignal struct {
	Symbol      string       `json:"symbol"`
	Verdict     Verdict      `json:"signal"`
	Confidence  float64      `json:"confidence"`
	PriceA      float64      `json:"price_a"`
	PriceB      float64      `json:"price_b"`
	Timestamp   time.Time    `json:"timestamp"`
	IndicatorsA IndicatorSet `json:"indicators_a"`
	IndicatorsB IndicatorSet `json:"indicators_b"`
}
