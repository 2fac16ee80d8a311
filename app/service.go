package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/batterycf/config"
	coremetrics "github.com/kilianp07/batterycf/core/metrics"
	coremqtt "github.com/kilianp07/batterycf/core/mqtt"
	"github.com/kilianp07/batterycf/core/replacement"
	"github.com/kilianp07/batterycf/infra/logger"
	"github.com/kilianp07/batterycf/infra/metrics"
	"github.com/kilianp07/batterycf/infra/mqtt"
	"github.com/kilianp07/batterycf/pkg/export"
)

// Service evaluates the configured model and fans the result out to the
// export writer, the metrics sinks and the MQTT publisher.
type Service struct {
	cfg       *config.Config
	plugin    replacement.Plugin
	modelName string
	sink      coremetrics.MetricsSink
	publisher coremqtt.Publisher
	out       io.Writer
	log       logger.Logger
	now       func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithOutput replaces the export destination.
func WithOutput(w io.Writer) Option { return func(s *Service) { s.out = w } }

// WithSink replaces the configured metrics sinks.
func WithSink(sink coremetrics.MetricsSink) Option { return func(s *Service) { s.sink = sink } }

// WithPublisher replaces the configured MQTT publisher.
func WithPublisher(p coremqtt.Publisher) Option { return func(s *Service) { s.publisher = p } }

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	s := &Service{cfg: cfg, log: logger.New("service"), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	for _, w := range cfg.Warnings {
		s.log.Warnf("%s", w)
	}

	plugin, err := replacement.NewPlugin(cfg.Plugin)
	if err != nil {
		return nil, fmt.Errorf("model plugin: %w", err)
	}
	s.plugin = plugin
	s.modelName = cfg.Plugin.Type
	if s.modelName == "" {
		s.modelName = replacement.DefaultPlugin
	}

	if s.sink == nil {
		sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
		if err != nil {
			return nil, fmt.Errorf("metrics sink: %w", err)
		}
		s.sink = sink
	}
	if s.publisher == nil {
		pub, err := mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		s.publisher = pub
	}
	return s, nil
}

// Run evaluates the model once. Metric failures are logged; export and
// publish failures are returned.
func (s *Service) Run(ctx context.Context) (replacement.Result, error) {
	runID := uuid.NewString()
	start := s.now()
	res, err := replacement.EvaluateWith(s.plugin, s.cfg.Model)
	ev := coremetrics.RunEvent{
		RunID:    runID,
		Model:    s.modelName,
		Periods:  res.Summary.Periods,
		Summary:  res.Summary,
		Duration: s.now().Sub(start),
		Time:     start,
	}
	if err != nil {
		ev.Err = err.Error()
		s.recordRun(ev)
		return replacement.Result{}, fmt.Errorf("evaluate %s: %w", s.modelName, err)
	}
	s.log.Infow("evaluation complete", map[string]any{
		"run_id":  runID,
		"model":   s.modelName,
		"periods": res.Summary.Periods,
		"total":   res.Summary.Total,
	})

	if err := s.sink.RecordCashFlow(coremetrics.Events(runID, s.modelName, res.Reliability, res.CashFlow, start)); err != nil {
		s.log.Errorf("record cash flow: %v", err)
	}
	s.recordRun(ev)

	if err := s.export(res); err != nil {
		return res, fmt.Errorf("export: %w", err)
	}
	msg := coremqtt.ResultMessage{RunID: runID, Model: s.modelName, GeneratedAt: start.UTC(), Result: res}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		return res, fmt.Errorf("publish: %w", err)
	}
	return res, nil
}

func (s *Service) recordRun(ev coremetrics.RunEvent) {
	rec, ok := s.sink.(coremetrics.RunRecorder)
	if !ok {
		return
	}
	if err := rec.RecordRun(ev); err != nil {
		s.log.Errorf("record run: %v", err)
	}
}

func (s *Service) export(res replacement.Result) error {
	if s.out != nil {
		return export.Write(s.out, s.cfg.Export.Format, res)
	}
	if s.cfg.Export.Path == "" {
		return export.Write(os.Stdout, s.cfg.Export.Format, res)
	}
	f, err := os.Create(s.cfg.Export.Path)
	if err != nil {
		return err
	}
	if err := export.Write(f, s.cfg.Export.Format, res); err != nil {
		_ = f.Close()
		return err
	}
	s.log.Infof("wrote %s", s.cfg.Export.Path)
	return f.Close()
}

// ServeMetrics exposes the Prometheus registry until ctx is canceled.
func (s *Service) ServeMetrics(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusAddr == "" {
		return errors.New("metrics.prometheus_addr is not set")
	}
	return metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Close()
	}
	if c, ok := s.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
