package cashflow

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/batterycf/core/model"
)

// Summary condenses a cash-flow series into nominal totals.
type Summary struct {
	Periods        int       `json:"periods"`
	TotalHard      float64   `json:"totalHardSaving"`
	TotalSoft      float64   `json:"totalSoftSaving"`
	Total          float64   `json:"totalSaving"`
	Cumulative     []float64 `json:"cumulative"`
	BreakEvenFound bool      `json:"breakEvenFound"`
	// BreakEvenPeriod is the first period whose cumulative cash flow is
	// non-negative. Only meaningful when BreakEvenFound is set.
	BreakEvenPeriod int `json:"breakEvenPeriod,omitempty"`
}

// Summarize totals s without discounting.
func Summarize(s model.CashFlowSeries) Summary {
	sum := Summary{
		Periods:   s.Len(),
		TotalHard: floats.Sum(s.TotalHardSaving),
		TotalSoft: floats.Sum(s.TotalSoftSaving),
		Total:     floats.Sum(s.Cashflow),
	}
	if s.Len() == 0 {
		return sum
	}
	sum.Cumulative = floats.CumSum(make([]float64, s.Len()), s.Cashflow)
	for i, c := range sum.Cumulative {
		if c >= 0 {
			sum.BreakEvenFound = true
			sum.BreakEvenPeriod = s.Periods[i]
			break
		}
	}
	return sum
}
