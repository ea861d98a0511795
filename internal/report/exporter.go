package report

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"benchreport/internal/results"
)

// Exporter holds the gauges written to a Prometheus textfile.
type Exporter struct {
	Registry *prometheus.Registry
	Values   *prometheus.GaugeVec
	Deltas   *prometheus.GaugeVec
}

// NewExporter creates an Exporter backed by a private registry.
func NewExporter() *Exporter {
	e := &Exporter{Registry: prometheus.NewRegistry()}

	e.Values = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchreport_metric_value",
			Help: "Benchmark measurement as recorded in the results CSV",
		},
		[]string{"config", "test", "metric"},
	)

	e.Deltas = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchreport_baseline_delta_percent",
			Help: "Percentage difference of a configuration against the baseline",
		},
		[]string{"config", "test", "metric", "baseline"},
	)

	e.Registry.MustRegister(e.Values, e.Deltas)
	return e
}

// Observe records every numeric catalog value and every computed delta.
// Series whose labels are not valid UTF-8 are skipped.
func (e *Exporter) Observe(rs results.ResultSet, baseline string) {
	for _, config := range rs.Configs() {
		for _, cell := range catalogCells() {
			raw, ok := rs.Get(config, cell.Test, cell.Metric)
			if !ok {
				continue
			}
			v, ok := parseValue(raw)
			if !ok {
				continue
			}
			g, err := e.Values.GetMetricWithLabelValues(config, cell.Test, cell.Metric)
			if err != nil {
				slog.Warn("Skipping metric series", "config", config, "test", cell.Test, "metric", cell.Metric, "error", err)
				continue
			}
			g.Set(v)
		}
	}

	comparisons, err := Compare(rs, baseline)
	if err != nil {
		slog.Debug("Skipping delta export", "error", err)
		return
	}
	for _, mc := range comparisons {
		for _, d := range mc.Deltas {
			if d.Status != DeltaComputed {
				continue
			}
			g, err := e.Deltas.GetMetricWithLabelValues(d.Config, mc.Metric.Test, mc.Metric.Metric, baseline)
			if err != nil {
				slog.Warn("Skipping delta series", "config", d.Config, "metric", mc.Metric.Metric, "error", err)
				continue
			}
			g.Set(d.Percent)
		}
	}
}

// WriteFile writes the gathered metrics in the text exposition format.
func (e *Exporter) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// ExportMetrics writes the values and baseline deltas of rs to path.
func ExportMetrics(rs results.ResultSet, baseline, path string) error {
	e := NewExporter()
	e.Observe(rs, baseline)
	if err := e.WriteFile(path); err != nil {
		return err
	}
	slog.Debug("Exported metrics", "path", path)
	return nil
}

type cellKey struct {
	Test   string
	Metric string
}

// catalogCells lists each (test, metric) referenced by the catalog once.
func catalogCells() []cellKey {
	var cells []cellKey
	for _, sections := range [][]Section{ConsoleSections, MarkdownSections} {
		for _, s := range sections {
			for _, c := range s.Columns {
				cells = append(cells, cellKey{c.Test, c.Metric})
			}
		}
	}
	for _, m := range ComparedMetrics {
		cells = append(cells, cellKey{m.Test, m.Metric})
	}
	return lo.Uniq(cells)
}
