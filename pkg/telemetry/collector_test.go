package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorExportsSnapshot(t *testing.T) {
	m := New(ReaderFunc(nil), 60*time.Second, 2*time.Second)
	m.store(Report{
		Total:     1234,
		PerSecond: []uint64{10, 20, 30},
		Average:   20.5,
		Elapsed:   3 * time.Second,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(m))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	got := map[string]float64{}
	for _, mf := range mfs {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				got[mf.GetName()] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				got[mf.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}

	want := map[string]float64{
		"l2reflect_processed_packets_total":      1234,
		"l2reflect_packets_per_second":           30,
		"l2reflect_observation_elapsed_seconds":  3,
		"l2reflect_observation_window_seconds":   60,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %v, want %v", name, got[name], v)
		}
	}
}
