package metrics

import (
	"time"

	"github.com/kilianp07/batterycf/core/cashflow"
	"github.com/kilianp07/batterycf/core/model"
)

// CashFlowEvent is the outcome of one period of an evaluation.
type CashFlowEvent struct {
	RunID       string
	Model       string
	Row         model.CashFlowRow
	Reliability model.ReliabilityPoint
	Time        time.Time
}

// MetricsSink records per-period cash flows.
type MetricsSink interface {
	RecordCashFlow(events []CashFlowEvent) error
}

// RunEvent describes a complete evaluation. Err is empty on success.
type RunEvent struct {
	RunID    string
	Model    string
	Periods  int
	Summary  cashflow.Summary
	Duration time.Duration
	Err      string
	Time     time.Time
}

// RunRecorder records evaluation outcomes.
type RunRecorder interface {
	RecordRun(ev RunEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordCashFlow([]CashFlowEvent) error { return nil }
func (NopSink) RecordRun(RunEvent) error             { return nil }

// Events converts a series into one event per period.
func Events(runID, modelName string, rel model.ReliabilitySeries, cf model.CashFlowSeries, at time.Time) []CashFlowEvent {
	evs := make([]CashFlowEvent, cf.Len())
	for i := range evs {
		ev := CashFlowEvent{RunID: runID, Model: modelName, Row: cf.Row(i), Time: at}
		if i < rel.Len() {
			ev.Reliability = rel.Point(i)
		}
		evs[i] = ev
	}
	return evs
}
