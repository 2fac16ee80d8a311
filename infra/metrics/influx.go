package metrics

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/batterycf/core/metrics"
	"github.com/kilianp07/batterycf/infra/logger"
)

const (
	cashFlowMeasurement = "battery_cashflow"
	runMeasurement      = "battery_cashflow_run"
)

// InfluxConfig holds the connection settings of the influx sink.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// Validate ensures the sink can address a bucket.
func (c InfluxConfig) Validate() error {
	var errs []error
	if c.URL == "" {
		errs = append(errs, errors.New("influx: url is required"))
	}
	if c.Org == "" {
		errs = append(errs, errors.New("influx: org is required"))
	}
	if c.Bucket == "" {
		errs = append(errs, errors.New("influx: bucket is required"))
	}
	return errors.Join(errs...)
}

// InfluxSink writes evaluation results to InfluxDB using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given endpoint without checking it.
func NewInfluxSink(c InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(c.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, c.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(c.Org, c.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(c InfluxConfig) coremetrics.MetricsSink {
	sink := NewInfluxSink(c)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordCashFlow writes one point per period in a single request.
func (s *InfluxSink) RecordCashFlow(evs []coremetrics.CashFlowEvent) error {
	if len(evs) == 0 {
		return nil
	}
	points := make([]*write.Point, 0, len(evs))
	for _, ev := range evs {
		points = append(points, cashFlowPoint(ev))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, points...)
}

// RecordRun writes the evaluation summary.
func (s *InfluxSink) RecordRun(ev coremetrics.RunEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, runPoint(ev))
}

// Close releases the underlying client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

func cashFlowPoint(ev coremetrics.CashFlowEvent) *write.Point {
	p := write.NewPointWithMeasurement(cashFlowMeasurement).
		AddTag("run_id", ev.RunID).
		AddTag("model", ev.Model).
		AddTag("period", strconv.Itoa(ev.Row.Period))
	for _, f := range ev.Row.Fields() {
		p.AddField(f.Name, round3(f.Value))
	}
	p.AddField("survivalProbability", ev.Reliability.SurvivalProbability)
	return p.SetTime(ev.Time)
}

func runPoint(ev coremetrics.RunEvent) *write.Point {
	p := write.NewPointWithMeasurement(runMeasurement).
		AddTag("run_id", ev.RunID).
		AddTag("model", ev.Model).
		AddField("periods", ev.Periods).
		AddField("duration_ms", round3(float64(ev.Duration.Microseconds())/1000))
	if ev.Err != "" {
		p.AddTag("status", "error").AddField("error", ev.Err)
	} else {
		p.AddTag("status", "ok").
			AddField("total_hard", round3(ev.Summary.TotalHard)).
			AddField("total_soft", round3(ev.Summary.TotalSoft)).
			AddField("total", round3(ev.Summary.Total)).
			AddField("break_even", ev.Summary.BreakEvenFound)
		if ev.Summary.BreakEvenFound {
			p.AddField("break_even_period", ev.Summary.BreakEvenPeriod)
		}
	}
	return p.SetTime(ev.Time)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
