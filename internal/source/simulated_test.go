package source

import (
	"math"
	"testing"

	"github.com/mamora/signalbot/internal/model"
)

func TestSimulatedObserveStaysWithinJitterBounds(t *testing.T) {
	provider := NewSimulated(7)
	ind := model.IndicatorSet{
		SMA20: 100, SMA50: 101, EMA12: 99, EMA26: 98, RSI: 55,
		MACD: 1.5, MACDSignal: 1.2, MACDHist: 0.3,
		BBUpper: 110, BBMiddle: 100, BBLower: 90,
		StochK: 60, VolumeAvg: 1000, VolumeCurrent: 1200,
	}

	for i := 0; i < 200; i++ {
		price, out := provider.Observe("BTC-USD", 100, ind)

		if math.Abs(price-100)/100 > 0.02 {
			t.Fatalf("price %v strayed beyond the ±2%% bound", price)
		}
		pairs := []struct {
			name      string
			got, base float64
		}{
			{"sma_20", out.SMA20, ind.SMA20},
			{"rsi", out.RSI, ind.RSI},
			{"macd", out.MACD, ind.MACD},
			{"bb_upper", out.BBUpper, ind.BBUpper},
			{"volume_avg", out.VolumeAvg, ind.VolumeAvg},
		}
		for _, p := range pairs {
			if math.Abs(p.got-p.base)/math.Abs(p.base) > 0.05 {
				t.Fatalf("%s = %v strayed beyond ±5%% of %v", p.name, p.got, p.base)
			}
		}
	}
}

func TestSimulatedObserveIsSeeded(t *testing.T) {
	ind := model.IndicatorSet{SMA20: 100, RSI: 50}

	priceA, setA := NewSimulated(11).Observe("AAPL", 100, ind)
	priceB, setB := NewSimulated(11).Observe("AAPL", 100, ind)

	if priceA != priceB || setA != setB {
		t.Error("same seed should reproduce the same observation")
	}
}

func TestSimulatedObservePreservesNaN(t *testing.T) {
	provider := NewSimulated(3)
	ind := model.IndicatorSet{SMA50: math.NaN(), InsufficientHistory: true}

	_, out := provider.Observe("AAPL", 100, ind)
	if !math.IsNaN(out.SMA50) {
		t.Errorf("SMA50 = %v, want NaN preserved", out.SMA50)
	}
	if !out.InsufficientHistory {
		t.Error("insufficient-history marker must survive observation")
	}
}
