package cashflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/batterycf/core/model"
)

func TestSummarize(t *testing.T) {
	s := model.NewCashFlowSeries([]int{2019, 2020, 2021})
	s.Set(0, model.CashFlowRow{Period: 2019, TotalHardSaving: -100, TotalSaving: -100})
	s.Set(1, model.CashFlowRow{Period: 2020, TotalHardSaving: 10, TotalSoftSaving: 40, TotalSaving: 50})
	s.Set(2, model.CashFlowRow{Period: 2021, TotalHardSaving: 20, TotalSoftSaving: 60, TotalSaving: 80})

	sum := Summarize(s)
	assert.Equal(t, 3, sum.Periods)
	assert.Equal(t, -70.0, sum.TotalHard)
	assert.Equal(t, 100.0, sum.TotalSoft)
	assert.Equal(t, 30.0, sum.Total)
	assert.Equal(t, []float64{-100, -50, 30}, sum.Cumulative)
	assert.True(t, sum.BreakEvenFound)
	assert.Equal(t, 2021, sum.BreakEvenPeriod)
}

func TestSummarizeNoBreakEven(t *testing.T) {
	s := model.NewCashFlowSeries([]int{1, 2})
	s.Set(0, model.CashFlowRow{Period: 1, TotalSaving: -5})
	s.Set(1, model.CashFlowRow{Period: 2, TotalSaving: 1})
	sum := Summarize(s)
	assert.False(t, sum.BreakEvenFound)
	assert.Equal(t, -4.0, sum.Total)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(model.CashFlowSeries{})
	assert.Equal(t, 0, sum.Periods)
	assert.Nil(t, sum.Cumulative)
}

func TestSummarizeDefaults(t *testing.T) {
	sum := Summarize(aggregate(model.DefaultParameters()))
	assert.Equal(t, 17, sum.Periods)
	assert.InDelta(t, sum.TotalHard+sum.TotalSoft, sum.Total, 1e-6)
	assert.True(t, sum.BreakEvenFound)
	assert.Equal(t, 2020, sum.BreakEvenPeriod)
}
