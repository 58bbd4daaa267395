package source

import "github.com/mamora/signalbot/internal/model"

// Provider supplies an independently observed price and indicator set for an
// instrument, given the primary observation. Implementations may wrap a real
// second feed or synthesize one; the reconciler treats the result as opaque.
type Provider interface {
	Observe(symbol string, price float64, ind model.IndicatorSet) (float64, model.IndicatorSet)
}
