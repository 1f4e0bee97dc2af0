package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCronJobMetricsExportsRunsAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCronJobMetrics(reg)

	metrics.ObserveDuration("registration-export", 250*time.Millisecond)
	metrics.IncSuccess("registration-export")
	metrics.IncFailure("registration-export")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got := counterValue(mfs, "cron_job_runs_total", "outcome", "success"); got != 1 {
		t.Fatalf("expected success=1, got %f", got)
	}
	if got := counterValue(mfs, "cron_job_runs_total", "outcome", "failure"); got != 1 {
		t.Fatalf("expected failure=1, got %f", got)
	}
	if got := histogramSum(mfs, "cron_job_duration_seconds"); got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestCronJobMetricsNilReceiverIsNoop(t *testing.T) {
	var metrics *CronJobMetrics
	metrics.ObserveDuration("x", time.Second)
	metrics.IncSuccess("x")
	metrics.IncFailure("x")

	empty := NewCronJobMetrics(nil)
	empty.IncSuccess("x")
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) float64 {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == label && pair.GetValue() == value {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return -1
}

func histogramSum(mfs []*dto.MetricFamily, name string) float64 {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			return metric.GetHistogram().GetSampleSum()
		}
	}
	return -1
}
