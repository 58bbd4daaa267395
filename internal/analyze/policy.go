package analyze

// Policy bundles every threshold and weight the scoring pipeline consults.
// Keeping them in one immutable structure keeps the policy swappable without
// touching the pipeline shape. Use DefaultPolicy and override selectively.
type Policy struct {
	Rules      RulePolicy       `yaml:"rules"`
	Confidence ConfidencePolicy `yaml:"confidence"`
	Zones      ZonePolicy       `yaml:"zones"`
	Reasoning  ReasoningPolicy  `yaml:"reasoning"`
	Dual       DualPolicy       `yaml:"dual"`
}

// RulePolicy drives the single-source classifier rule table.
type RulePolicy struct {
	RSIOversold   float64 `yaml:"rsi_oversold"`
	RSIOverbought float64 `yaml:"rsi_overbought"`
	RSIWeight     float64 `yaml:"rsi_weight"`
	MACDWeight    float64 `yaml:"macd_weight"`
	TrendWeight   float64 `yaml:"trend_weight"`
	BandWeight    float64 `yaml:"band_weight"`
	VolumeSpike   float64 `yaml:"volume_spike"` // volume_current over volume_avg
	BuyThreshold  float64 `yaml:"buy_threshold"`
	SellThreshold float64 `yaml:"sell_threshold"`
}

// ConfidencePolicy maps strength and indicator extremity to the displayed
// percentage.
type ConfidencePolicy struct {
	Base            float64 `yaml:"base"`
	StrengthFactor  float64 `yaml:"strength_factor"`
	RSIExtremeLow   float64 `yaml:"rsi_extreme_low"`
	RSIExtremeHigh  float64 `yaml:"rsi_extreme_high"`
	RSIExtremeBonus float64 `yaml:"rsi_extreme_bonus"`
	MACDHistStrong  float64 `yaml:"macd_hist_strong"`
	MACDBonus       float64 `yaml:"macd_bonus"`
	VolumeSurge     float64 `yaml:"volume_surge"`
	VolumeBonus     float64 `yaml:"volume_bonus"`
	Min             int     `yaml:"min"`
	Max             int     `yaml:"max"`
}

// ZonePolicy holds the volatility multipliers for the entry band, target and
// stop, plus the flat band used for HOLD.
type ZonePolicy struct {
	EntryPull  float64 `yaml:"entry_pull"`  // band edge toward the move
	EntryChase float64 `yaml:"entry_chase"` // band edge against the move
	TargetMult float64 `yaml:"target_mult"`
	StopMult   float64 `yaml:"stop_mult"`
	HoldBand   float64 `yaml:"hold_band"`
}

// ReasoningPolicy holds the looser thresholds the reasoning text re-checks.
type ReasoningPolicy struct {
	RSILow  float64 `yaml:"rsi_low"`
	RSIHigh float64 `yaml:"rsi_high"`
}

// DualPolicy drives the two-source reconciler: agreement thresholds are
// asymmetric on purpose, reflecting expected noise between the sources.
type DualPolicy struct {
	RSIOversoldA   float64 `yaml:"rsi_oversold_a"`
	RSIOversoldB   float64 `yaml:"rsi_oversold_b"`
	RSIOverboughtA float64 `yaml:"rsi_overbought_a"`
	RSIOverboughtB float64 `yaml:"rsi_overbought_b"`
	RSIWeight      float64 `yaml:"rsi_weight"`
	MACDWeight     float64 `yaml:"macd_weight"`
	TrendWeight    float64 `yaml:"trend_weight"`
	BandWeight     float64 `yaml:"band_weight"`
	BuyThreshold   float64 `yaml:"buy_threshold"`
	SellThreshold  float64 `yaml:"sell_threshold"`
	GapPenalty     float64 `yaml:"gap_penalty"`
	MinBase        float64 `yaml:"min_base"`
}

// DefaultPolicy returns the built-in scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		Rules: RulePolicy{
			RSIOversold:   30,
			RSIOverbought: 70,
			RSIWeight:     1.0,
			MACDWeight:    0.5,
			TrendWeight:   0.5,
			BandWeight:    0.3,
			VolumeSpike:   1.2,
			BuyThreshold:  0.5,
			SellThreshold: -0.5,
		},
		Confidence: ConfidencePolicy{
			Base:            50,
			StrengthFactor:  20,
			RSIExtremeLow:   20,
			RSIExtremeHigh:  80,
			RSIExtremeBonus: 10,
			MACDHistStrong:  0.5,
			MACDBonus:       5,
			VolumeSurge:     1.5,
			VolumeBonus:     10,
			Min:             10,
			Max:             95,
		},
		Zones: ZonePolicy{
			EntryPull:  0.5,
			EntryChase: 0.2,
			TargetMult: 2.0,
			StopMult:   1.5,
			HoldBand:   0.005,
		},
		Reasoning: ReasoningPolicy{
			RSILow:  35,
			RSIHigh: 65,
		},
		Dual: DualPolicy{
			RSIOversoldA:   30,
			RSIOversoldB:   35,
			RSIOverboughtA: 70,
			RSIOverboughtB: 65,
			RSIWeight:      1.0,
			MACDWeight:     1.0,
			TrendWeight:    0.5,
			BandWeight:     0.5,
			BuyThreshold:   0.3,
			SellThreshold:  -0.3,
			GapPenalty:     10,
			MinBase:        0.1,
		},
	}
}
