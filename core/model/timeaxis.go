package model

// TimeAxis is the ordered, unit-step sequence of periods from a start period
// to start+lifetime inclusive.
type TimeAxis struct {
	start int
	n     int
}

// NewTimeAxis builds the axis covering lifetime periods after start.
// A negative lifetime yields an axis holding only start.
func NewTimeAxis(start, lifetime int) TimeAxis {
	if lifetime < 0 {
		lifetime = 0
	}
	return TimeAxis{start: start, n: lifetime + 1}
}

// Start returns the first period.
func (a TimeAxis) Start() int { return a.start }

// End returns the last period.
func (a TimeAxis) End() int { return a.start + a.n - 1 }

// Len returns the number of periods.
func (a TimeAxis) Len() int { return a.n }

// Periods returns a fresh slice of every period in order.
func (a TimeAxis) Periods() []int {
	out := make([]int, a.n)
	for i := range out {
		out[i] = a.start + i
	}
	return out
}

// Index returns the position of period t on the axis.
func (a TimeAxis) Index(t int) (int, bool) {
	if !a.Contains(t) {
		return 0, false
	}
	return t - a.start, true
}

// Contains reports whether t lies on the axis.
func (a TimeAxis) Contains(t int) bool { return a.n > 0 && t >= a.start && t <= a.End() }
