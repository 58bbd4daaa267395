package calculate

import (
	"errors"
	"testing"
	"time"

	"github.com/mamora/signalbot/internal/model"
)

func TestValidateSeries(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ordered := generateTestCandles(3, func(i int) model.Candle {
		return model.Candle{Open: 1, High: 2, Low: 1, Close: 1.5, Volume: 10}
	})

	tests := []struct {
		name    string
		candles []model.Candle
		wantErr error
	}{
		{"valid series", ordered, nil},
		{"empty series", nil, ErrEmptySeries},
		{
			"timestamps out of order",
			[]model.Candle{
				{Timestamp: base.Add(time.Minute), Close: 1},
				{Timestamp: base, Close: 1},
			},
			ErrNonChronological,
		},
		{
			"negative price",
			[]model.Candle{{Timestamp: base, Open: 1, High: 1, Low: -1, Close: 1}},
			ErrNegativePrice,
		},
		{
			"negative volume",
			[]model.Candle{{Timestamp: base, Open: 1, High: 1, Low: 1, Close: 1, Volume: -5}},
			ErrNegativeVolume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeries(tt.candles)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateSeries() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSeries() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
