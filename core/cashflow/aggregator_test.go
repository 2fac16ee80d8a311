package cashflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/batterycf/core/model"
	"github.com/kilianp07/batterycf/core/reliability"
)

func aggregate(p model.Parameters) model.CashFlowSeries {
	axis := model.NewTimeAxis(p.StartTime, p.Lifetime)
	return Aggregate(p, axis, reliability.Build(p, axis))
}

func TestAggregateInitialPeriod(t *testing.T) {
	s := aggregate(model.DefaultParameters())
	row, ok := s.At(2019)
	require.True(t, ok)
	assert.Equal(t, -70000.0, row.ExpectedReplacementCost)
	assert.Equal(t, 0.0, row.ExpectedLostRevenue)
	assert.Equal(t, 0.0, row.ExpectedDowntimeCost)
	assert.Equal(t, 0.0, row.ExpectedInspectionCostsNoReplacement)
	assert.Equal(t, -70000.0, row.TotalSaving)
	assert.Equal(t, -70000.0, s.Cashflow[0])
}

func TestAggregateInteriorPeriod(t *testing.T) {
	s := aggregate(model.DefaultParameters())
	row, ok := s.At(2020)
	require.True(t, ok)
	const tol = 1e-6
	assert.InDelta(t, 3500, row.ExpectedReplacementCost, tol)
	assert.InDelta(t, 7603.2, row.ExpectedInspectionCostsNoReplacement, tol)
	assert.InDelta(t, 19.2, row.ExpectedInspectionCostsWithReplacement, tol)
	assert.InDelta(t, 7584, row.ProjectedSoftSaving, tol)
	assert.InDelta(t, 11880, row.ExpectedLostRevenue, tol)
	assert.InDelta(t, 67200, row.ExpectedDowntimeCost, tol)
	assert.InDelta(t, 79080, row.ReliabilitySoftSaving, tol)
	assert.InDelta(t, 70089.6, row.TotalSoftSaving, tol)
	assert.InDelta(t, 73589.6, row.TotalSaving, tol)
	assert.Equal(t, row.TotalHardSaving, row.ExpectedReplacementCost)
}

func TestAggregateFinalPeriod(t *testing.T) {
	s := aggregate(model.DefaultParameters())
	row, ok := s.At(2035)
	require.True(t, ok)
	assert.InDelta(t, 70000*math.Pow(0.99, 16), row.ExpectedReplacementCost, 1e-9)
	assert.Greater(t, row.ExpectedReplacementCost, 0.0)
	assert.Equal(t, 0.0, row.ExpectedLostRevenue)
	assert.Equal(t, 0.0, row.ExpectedDowntimeCost)
	assert.Equal(t, row.ExpectedReplacementCost, row.TotalSaving)
}

func TestAggregateNoFailures(t *testing.T) {
	p := model.DefaultParameters()
	p.BatteryFailureProbability = 0
	p.NumberBatteries = 3
	s := aggregate(p)
	for i := 1; i < s.Len()-1; i++ {
		assert.Equal(t, 0.0, s.ExpectedReplacementCost[i], "period %d", s.Periods[i])
		assert.Equal(t, 0.0, s.ExpectedDowntimeCost[i])
	}
	assert.Equal(t, p.PlannedReplacementCost*3, s.ExpectedReplacementCost[s.Len()-1])
}

func TestAggregateInspectionWindow(t *testing.T) {
	p := model.DefaultParameters()
	p.StartMaintenanceTime = 2022
	p.EndMaintenanceTime = 2028
	s := aggregate(p)
	for i, t0 := range s.Periods {
		noRepl := s.ExpectedInspectionCostsNoReplacement[i]
		withRepl := s.ExpectedInspectionCostsWithReplacement[i]
		if t0 < 2022 || t0 > 2028 {
			assert.Equal(t, 0.0, noRepl, "period %d", t0)
			assert.Equal(t, 0.0, withRepl, "period %d", t0)
			continue
		}
		assert.NotZero(t, noRepl, "period %d", t0)
		assert.NotZero(t, withRepl, "period %d", t0)
	}
}

func TestAggregateLength(t *testing.T) {
	for _, lifetime := range []int{1, 2, 16, 50} {
		p := model.DefaultParameters()
		p.Lifetime = lifetime
		p.StartMaintenanceTime = p.StartTime
		p.EndMaintenanceTime = p.StartTime
		s := aggregate(p)
		assert.Len(t, s.Cashflow, lifetime+1)
		assert.Equal(t, s.TotalSaving, s.Cashflow)
	}
}

func TestAggregateOrderIndependentAndIdempotent(t *testing.T) {
	p := model.DefaultParameters()
	p.NumberBatteries = 2
	axis := model.NewTimeAxis(p.StartTime, p.Lifetime)
	rel := reliability.Build(p, axis)
	first := Aggregate(p, axis, rel)
	second := Aggregate(p, axis, rel)
	assert.Equal(t, first, second)

	for i := rel.Len() - 1; i >= 0; i-- {
		assert.Equal(t, first.Row(i), Row(p, axis, rel.Point(i)))
	}
}

func TestAggregateUnusedWeights(t *testing.T) {
	p := model.DefaultParameters()
	base := aggregate(p)
	p.ContributionFactor.HardSavings = 0.1
	p.ContributionFactor.EfficientSavings = 0
	p.ContributionFactor.OtherSavings = 1
	p.Inflation = 0.5
	p.DiscountRate = 0.5
	assert.Equal(t, base, aggregate(p))
}
