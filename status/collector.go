package status

import (
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Registry as prometheus gauges
// Metrics are discovered at scrape time, so cells created later still export
type Collector struct {
	reg       *Registry
	namespace string
}

// NewCollector wraps reg; namespace prefixes every metric name
func NewCollector(reg *Registry, namespace string) *Collector {
	return &Collector{reg: reg, namespace: namespace}
}

// Describe sends nothing, making this an unchecked collector
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect emits one gauge per registry cell
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(name string, v *atomic.Int64) {
		ch <- c.gauge(name, float64(v.Load()))
	})
	c.reg.Floats.Range(func(name string, v *AtomicFloat) {
		ch <- c.gauge(name, v.Get())
	})
	c.reg.Bools.Range(func(name string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		ch <- c.gauge(name, val)
	})
}

func (c *Collector) gauge(name string, val float64) prometheus.Metric {
	desc := prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", MetricName(name)), name, nil, nil)
	return prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, val)
}

// MetricName converts a registry key to a prometheus-safe name
func MetricName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		}
		return '_'
	}, key)
}
