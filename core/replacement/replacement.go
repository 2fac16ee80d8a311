// Package replacement exposes the two lifecycle stages of the battery
// replacement cash-flow model: Initialize precomputes the time axis and the
// reliability series, Run aggregates them into the cash flow. Both stages are
// pure and safe to call concurrently for independent parameter sets.
package replacement

import (
	"errors"
	"fmt"

	"github.com/kilianp07/batterycf/core/cashflow"
	"github.com/kilianp07/batterycf/core/model"
	"github.com/kilianp07/batterycf/core/reliability"
)

// ErrSeriesMismatch is returned by Run when the time axis or the reliability
// series were not produced for the given parameters.
var ErrSeriesMismatch = errors.New("reliability series does not match parameters")

// Result bundles the output of both stages.
type Result struct {
	Parameters  model.Parameters        `json:"parameters"`
	Reliability model.ReliabilitySeries `json:"reliability"`
	CashFlow    model.CashFlowSeries    `json:"cashFlow"`
	Summary     cashflow.Summary        `json:"summary"`
}

// Initialize validates p and builds the time axis and reliability series.
func Initialize(p model.Parameters) (model.TimeAxis, model.ReliabilitySeries, error) {
	if err := p.Validate(); err != nil {
		return model.TimeAxis{}, model.ReliabilitySeries{}, err
	}
	axis := model.NewTimeAxis(p.StartTime, p.Lifetime)
	return axis, reliability.Build(p, axis), nil
}

// Run computes the cash-flow series from the output of Initialize.
func Run(p model.Parameters, axis model.TimeAxis, rel model.ReliabilitySeries) (model.CashFlowSeries, error) {
	if err := p.Validate(); err != nil {
		return model.CashFlowSeries{}, err
	}
	if err := checkSeries(p, axis, rel); err != nil {
		return model.CashFlowSeries{}, err
	}
	return cashflow.Aggregate(p, axis, rel), nil
}

// Evaluate runs both stages and summarises the outcome.
func Evaluate(p model.Parameters) (Result, error) {
	return EvaluateWith(BatteryModel{}, p)
}

func checkSeries(p model.Parameters, axis model.TimeAxis, rel model.ReliabilitySeries) error {
	if axis.Start() != p.StartTime || axis.Len() != p.Lifetime+1 {
		return fmt.Errorf("%w: axis %d..%d, expected %d..%d", ErrSeriesMismatch, axis.Start(), axis.End(), p.StartTime, p.EndTime())
	}
	n := axis.Len()
	if rel.Len() != n || len(rel.SurvivalProbability) != n || len(rel.FailureProbability) != n ||
		len(rel.FailureProbabilityAtTime) != n || len(rel.IncurringShutdownProbabilityAtTime) != n {
		return fmt.Errorf("%w: expected %d periods", ErrSeriesMismatch, n)
	}
	for i, t := range rel.Periods {
		if t != axis.Start()+i {
			return fmt.Errorf("%w: period %d at position %d", ErrSeriesMismatch, t, i)
		}
	}
	return nil
}
