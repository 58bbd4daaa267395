package analyze

import "github.com/mamora/signalbot/internal/model"

// SignalSource is one observed view of an instrument: a current price and the
// indicator snapshot computed from it. The single- and dual-source paths both
// consume this shape; the dual path simply takes two instances.
type SignalSource interface {
	Price() float64
	Indicators() model.IndicatorSet
}

// Observation is the plain value SignalSource.
type Observation struct {
	LastPrice float64
	Set       model.IndicatorSet
}

func (o Observation) Price() float64                 { return o.LastPrice }
func (o Observation) Indicators() model.IndicatorSet { return o.Set }
