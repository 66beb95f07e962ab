package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements prometheus.Collector over the monitor's live state.
// Every scrape reads the latest snapshot; nothing is cached between scrapes.
type Collector struct {
	mon *Monitor

	processedTotal *prometheus.Desc
	lastSecond     *prometheus.Desc
	elapsedSeconds *prometheus.Desc
	windowSeconds  *prometheus.Desc
}

// NewCollector creates a Collector over mon.
func NewCollector(mon *Monitor) *Collector {
	return &Collector{
		mon: mon,
		processedTotal: prometheus.NewDesc(
			"l2reflect_processed_packets_total",
			"Cumulative packets processed by the device program.",
			nil, nil,
		),
		lastSecond: prometheus.NewDesc(
			"l2reflect_packets_per_second",
			"Packets processed in the most recent observed second.",
			nil, nil,
		),
		elapsedSeconds: prometheus.NewDesc(
			"l2reflect_observation_elapsed_seconds",
			"Wall time the observation window has been running.",
			nil, nil,
		),
		windowSeconds: prometheus.NewDesc(
			"l2reflect_observation_window_seconds",
			"Configured observation window length.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processedTotal
	ch <- c.lastSecond
	ch <- c.elapsedSeconds
	ch <- c.windowSeconds
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	r := c.mon.Snapshot()

	ch <- prometheus.MustNewConstMetric(c.processedTotal, prometheus.CounterValue,
		float64(r.Total))
	var last uint64
	if n := len(r.PerSecond); n > 0 {
		last = r.PerSecond[n-1]
	}
	ch <- prometheus.MustNewConstMetric(c.lastSecond, prometheus.GaugeValue,
		float64(last))
	ch <- prometheus.MustNewConstMetric(c.elapsedSeconds, prometheus.GaugeValue,
		r.Elapsed.Seconds())
	ch <- prometheus.MustNewConstMetric(c.windowSeconds, prometheus.GaugeValue,
		c.mon.Window().Seconds())
}
