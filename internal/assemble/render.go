package assemble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mamora/signalbot/internal/model"
)

// entrySeparator joins the two edges of the entry zone in the text rendering.
const entrySeparator = " – "

// Render produces the canonical plain-text form of a signal: nine fixed
// labeled lines consumed by the presentation layer.
func Render(s model.TradingSignal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Signal] %s\n", s.Verdict)
	fmt.Fprintf(&b, "[Asset] %s\n", s.Asset)
	fmt.Fprintf(&b, "[Timeframe] %s\n", s.Timeframe)
	fmt.Fprintf(&b, "[Contract Period] %s\n", s.ContractPeriod)
	fmt.Fprintf(&b, "[Entry Zone] %s%s%s\n", s.EntryLow, entrySeparator, s.EntryHigh)
	fmt.Fprintf(&b, "[Target] %s\n", s.Target)
	fmt.Fprintf(&b, "[Stop Loss] %s\n", s.StopLoss)
	fmt.Fprintf(&b, "[Confidence] %d%%\n", s.Confidence)
	fmt.Fprintf(&b, "[Reasoning] %s", s.Reasoning)
	return b.String()
}

// Parse reads a canonical rendering back into a signal record. The creation
// timestamp is not part of the text form and stays zero.
func Parse(text string) (model.TradingSignal, error) {
	var s model.TradingSignal
	for _, line := range strings.Split(text, "\n") {
		label, value, ok := splitLabeled(line)
		if !ok {
			return model.TradingSignal{}, fmt.Errorf("malformed line %q", line)
		}
		switch label {
		case "Signal":
			s.Verdict = model.Verdict(value)
		case "Asset":
			s.Asset = value
		case "Timeframe":
			s.Timeframe = model.Timeframe(value)
		case "Contract Period":
			s.ContractPeriod = value
		case "Entry Zone":
			low, high, found := strings.Cut(value, entrySeparator)
			if !found {
				return model.TradingSignal{}, fmt.Errorf("malformed entry zone %q", value)
			}
			s.EntryLow, s.EntryHigh = low, high
		case "Target":
			s.Target = value
		case "Stop Loss":
			s.StopLoss = value
		case "Confidence":
			pct, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
			if err != nil {
				return model.TradingSignal{}, fmt.Errorf("malformed confidence %q: %w", value, err)
			}
			s.Confidence = pct
		case "Reasoning":
			s.Reasoning = value
		default:
			return model.TradingSignal{}, fmt.Errorf("unknown label %q", label)
		}
	}
	return s, nil
}

func splitLabeled(line string) (label, value string, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}
	end := strings.Index(line, "] ")
	if end < 0 {
		return "", "", false
	}
	return line[1:end], line[end+2:], true
}
