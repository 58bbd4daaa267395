package calculate

import (
	"errors"
	"fmt"

	"github.com/mamora/signalbot/internal/model"
)

var (
	ErrEmptySeries      = errors.New("empty candle series")
	ErrNonChronological = errors.New("candles not in chronological order")
	ErrNegativePrice    = errors.New("negative price")
	ErrNegativeVolume   = errors.New("negative volume")
)

// ValidateSeries rejects malformed input at the boundary so the indicator math
// never has to defend against it. It checks chronological ordering and that no
// price or volume is negative.
func ValidateSeries(candles []model.Candle) error {
	if len(candles) == 0 {
		return ErrEmptySeries
	}
	for i, c := range candles {
		if c.Open < 0 || c.High < 0 || c.Low < 0 || c.Close < 0 {
			return fmt.Errorf("candle %d: %w", i, ErrNegativePrice)
		}
		if c.Volume < 0 {
			return fmt.Errorf("candle %d: %w", i, ErrNegativeVolume)
		}
		if i > 0 && c.Timestamp.Before(candles[i-1].Timestamp) {
			return fmt.Errorf("candle %d: %w", i, ErrNonChronological)
		}
	}
	return nil
}
