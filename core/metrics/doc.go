// Package metrics defines the sinks that receive evaluation results. A
// MetricsSink receives one event per period; sinks that also implement
// RunRecorder get a summary per evaluation. NewMetricsSink builds sinks from
// configuration and wraps several of them in a MultiSink.
package metrics
