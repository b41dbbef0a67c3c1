// Package metrics exports a decoded report in Prometheus text format for
// node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/richhaase/pylint-exit/internal/enforce"
)

const namespace = "pylint_exit"

// Collector holds the gauges for a single run. Each run gets its own
// registry so repeated calls never see each other's values.
type Collector struct {
	registry *prometheus.Registry

	categoryTriggered *prometheus.GaugeVec
	categoryBlocking  *prometheus.GaugeVec
	exitCode          prometheus.Gauge
	mask              prometheus.Gauge
}

// NewCollector creates and registers the run gauges.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		categoryTriggered: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "category_triggered",
			Help:      "Whether the pylint category bit was set in the decoded mask (1) or not (0).",
		}, []string{"category"}),
		categoryBlocking: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "category_blocking",
			Help:      "Whether the category was configured blocking for the run (1) or informational (0).",
		}, []string{"category"}),
		exitCode: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exit_code",
			Help:      "Aggregate exit code computed from the blocking triggered categories.",
		}),
		mask: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mask",
			Help:      "Raw pylint return code that was decoded.",
		}),
	}

	c.registry.MustRegister(c.categoryTriggered, c.categoryBlocking, c.exitCode, c.mask)
	return c
}

// Record sets the gauges from a report and the policy it was built with.
// Every category gets a series, so absent categories read as 0 rather than missing.
func (c *Collector) Record(r enforce.Report, p enforce.Policy) {
	triggered := make(map[string]bool, len(r.Triggered))
	for _, cat := range r.Triggered {
		triggered[string(cat.Name)] = true
	}

	for _, e := range p.Entries() {
		name := string(e.Category.Name)
		c.categoryTriggered.WithLabelValues(name).Set(boolGauge(triggered[name]))
		c.categoryBlocking.WithLabelValues(name).Set(boolGauge(e.Blocking))
	}

	c.exitCode.Set(float64(r.ExitCode))
	c.mask.Set(float64(r.Mask))
}

// Gatherer exposes the underlying registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile atomically writes the gauges to path.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
