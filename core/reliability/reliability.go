// Package reliability derives survival and failure probability curves for a
// fleet of identical, independent batteries over a planning horizon.
package reliability

import (
	"math"

	"github.com/kilianp07/batterycf/core/model"
)

// Build computes the reliability series for every period of axis.
//
// Each of the NumberBatteries units fails with BatteryFailureProbability per
// period, so survival after k elapsed periods is (1-f)^(n*k). The first period
// is pinned to survival 1 and zero failure mass. Build does not validate p.
func Build(p model.Parameters, axis model.TimeAxis) model.ReliabilitySeries {
	periods := axis.Periods()
	n := len(periods)
	s := model.ReliabilitySeries{
		Periods:                            periods,
		SurvivalProbability:                make([]float64, n),
		FailureProbability:                 make([]float64, n),
		FailureProbabilityAtTime:           make([]float64, n),
		IncurringShutdownProbabilityAtTime: make([]float64, n),
	}
	for i, t := range periods {
		if i == 0 {
			s.SurvivalProbability[i] = 1
			continue
		}
		elapsed := t - axis.Start()
		survival := Survival(p.BatteryFailureProbability, p.NumberBatteries, elapsed)
		s.SurvivalProbability[i] = survival
		s.FailureProbability[i] = 1 - survival
		s.FailureProbabilityAtTime[i] = s.FailureProbability[i] - s.FailureProbability[i-1]
		s.IncurringShutdownProbabilityAtTime[i] = survival * p.BatteryIncurringShutdownProbability
	}
	return s
}

// Survival is the probability that none of count units has failed after
// elapsed periods. The exponent is formed in float64 so large fleets
// underflow to zero instead of wrapping.
func Survival(failureProbability float64, count, elapsed int) float64 {
	return math.Pow(1-failureProbability, float64(count)*float64(elapsed))
}
