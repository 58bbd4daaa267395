package model

import "math"

// IndicatorSet is the snapshot of all technical indicators computed from one
// candle series at its most recent bar. Any indicator whose rolling window is
// longer than the series is NaN, never a silent zero.
type IndicatorSet struct {
	SMA20         float64 `json:"sma_20"`
	SMA50         float64 `json:"sma_50"`
	EMA12         float64 `json:"ema_12"`
	EMA26         float64 `json:"ema_26"`
	RSI           float64 `json:"rsi"`
	MACD          float64 `json:"macd"`
	MACDSignal    float64 `json:"macd_signal"`
	MACDHist      float64 `json:"macd_histogram"`
	BBUpper       float64 `json:"bb_upper"`
	BBMiddle      float64 `json:"bb_middle"`
	BBLower       float64 `json:"bb_lower"`
	StochK        float64 `json:"stoch_k"`
	VolumeAvg     float64 `json:"volume_avg"`
	VolumeCurrent float64 `json:"volume_current"`

	// InsufficientHistory is set when the series was shorter than the longest
	// rolling window, so at least one field above is NaN.
	InsufficientHistory bool `json:"insufficient_history,omitempty"`
}

// Complete reports whether every indicator in the set is a defined number.
func (s IndicatorSet) Complete() bool {
	for _, v := range []float64{
		s.SMA20, s.SMA50, s.EMA12, s.EMA26, s.RSI,
		s.MACD, s.MACDSignal, s.MACDHist,
		s.BBUpper, s.BBMiddle, s.BBLower,
		s.StochK, s.VolumeAvg, s.VolumeCurrent,
	} {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}
