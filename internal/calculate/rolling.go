package calculate

import "math"

// rollingWindow keeps the last n values in a ring buffer with running sums, so
// the mean and standard deviation cost O(1) per push. Min and max scan the
// buffer and are only called once per snapshot.
type rollingWindow struct {
	buf   []float64
	head  int
	count int
	sum   float64
	sumSq float64
}

func newRollingWindow(n int) *rollingWindow {
	return &rollingWindow{buf: make([]float64, n)}
}

func (w *rollingWindow) Push(v float64) {
	if w.count == len(w.buf) {
		old := w.buf[w.head]
		w.sum -= old
		w.sumSq -= old * old
	} else {
		w.count++
	}
	w.buf[w.head] = v
	w.sum += v
	w.sumSq += v * v
	w.head = (w.head + 1) % len(w.buf)
}

func (w *rollingWindow) Full() bool {
	return w.count == len(w.buf)
}

// Mean returns NaN until the window has filled.
func (w *rollingWindow) Mean() float64 {
	if !w.Full() {
		return math.NaN()
	}
	return w.sum / float64(w.count)
}

// StdDev is the sample standard deviation over the window (Bessel-corrected).
func (w *rollingWindow) StdDev() float64 {
	if !w.Full() || w.count < 2 {
		return math.NaN()
	}
	n := float64(w.count)
	variance := (w.sumSq - w.sum*w.sum/n) / (n - 1)
	// Running sums can go fractionally negative on constant input.
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

func (w *rollingWindow) Min() float64 {
	if !w.Full() {
		return math.NaN()
	}
	min := w.buf[0]
	for _, v := range w.buf[1:w.count] {
		if v < min {
			min = v
		}
	}
	return min
}

func (w *rollingWindow) Max() float64 {
	if !w.Full() {
		return math.NaN()
	}
	max := w.buf[0]
	for _, v := range w.buf[1:w.count] {
		if v > max {
			max = v
		}
	}
	return max
}

// emaAccumulator is a whole-history exponentially weighted mean with smoothing
// factor 2/(span+1). Weights are normalized over the observations seen so far,
// so the first value is exact rather than seed-biased.
type emaAccumulator struct {
	decay float64
	num   float64
	den   float64
	seen  bool
}

func newEMA(span int) *emaAccumulator {
	return &emaAccumulator{decay: 1 - 2/float64(span+1)}
}

func (e *emaAccumulator) Push(v float64) {
	e.num = v + e.decay*e.num
	e.den = 1 + e.decay*e.den
	e.seen = true
}

func (e *emaAccumulator) Value() float64 {
	if !e.seen {
		return math.NaN()
	}
	return e.num / e.den
}
