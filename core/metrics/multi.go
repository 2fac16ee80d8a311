package metrics

import (
	"errors"
	"io"
)

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCashFlow forwards the events to all sinks and joins their errors.
func (m *MultiSink) RecordCashFlow(evs []CashFlowEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordCashFlow(evs))
	}
	return errors.Join(errs...)
}

// RecordRun forwards the run to sinks implementing RunRecorder.
func (m *MultiSink) RecordRun(ev RunEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if rec, ok := s.(RunRecorder); ok {
			errs = append(errs, rec.RecordRun(ev))
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink implementing io.Closer.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if c, ok := s.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
