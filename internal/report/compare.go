package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"benchreport/internal/results"
)

// ErrBaselineNotFound is returned by Compare when the baseline configuration
// has no rows at all.
var ErrBaselineNotFound = errors.New("baseline not found in results")

// MetricStatus describes whether a metric could be compared at all.
type MetricStatus int

const (
	MetricCompared MetricStatus = iota
	BaselineUnavailable
	BaselineInvalid
)

// DeltaStatus describes a single configuration's entry for a metric.
type DeltaStatus int

const (
	DeltaComputed DeltaStatus = iota
	ValueUnavailable
	ValueInvalid
)

// Delta is one configuration measured against the baseline.
type Delta struct {
	Config  string
	Raw     string
	Value   float64
	Percent float64
	Status  DeltaStatus
}

// MetricComparison is the comparison of one catalog metric across configurations.
type MetricComparison struct {
	Metric      Metric
	BaselineRaw string
	Baseline    float64
	Status      MetricStatus
	Deltas      []Delta
}

// Compare computes the percentage difference of every non-baseline
// configuration against baseline for each entry of ComparedMetrics.
// A zero baseline value is reported as BaselineInvalid.
func Compare(rs results.ResultSet, baseline string) ([]MetricComparison, error) {
	if !rs.Has(baseline) {
		return nil, fmt.Errorf("%w: %s", ErrBaselineNotFound, baseline)
	}

	comparisons := make([]MetricComparison, 0, len(ComparedMetrics))
	for _, m := range ComparedMetrics {
		mc := MetricComparison{Metric: m}

		raw, _ := rs.Get(baseline, m.Test, m.Metric)
		mc.BaselineRaw = raw

		if results.IsMissing(raw) {
			mc.Status = BaselineUnavailable
			comparisons = append(comparisons, mc)
			continue
		}

		base, ok := parseValue(raw)
		if !ok || base == 0 {
			mc.Status = BaselineInvalid
			comparisons = append(comparisons, mc)
			continue
		}
		mc.Baseline = base

		for _, config := range rs.Configs() {
			if config == baseline {
				continue
			}
			mc.Deltas = append(mc.Deltas, computeDelta(rs, config, m, base))
		}
		comparisons = append(comparisons, mc)
	}
	return comparisons, nil
}

func computeDelta(rs results.ResultSet, config string, m Metric, base float64) Delta {
	d := Delta{Config: config}
	d.Raw, _ = rs.Get(config, m.Test, m.Metric)

	if results.IsMissing(d.Raw) {
		d.Status = ValueUnavailable
		return d
	}

	v, ok := parseValue(d.Raw)
	if !ok {
		d.Status = ValueInvalid
		return d
	}

	d.Value = v
	// Dividing by |base| keeps the sign of v-base for negative baselines.
	d.Percent = (v - base) / math.Abs(base) * 100
	return d
}

// parseValue accepts finite decimal numbers only.
func parseValue(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Indicator returns the marker and explicit sign for a percentage change.
// Lower is better for every compared metric.
func Indicator(pct float64) (icon, sign string) {
	switch {
	case pct < 0:
		return Icons.Improvement, ""
	case pct > 0:
		return Icons.Regression, "+"
	default:
		return Icons.Neutral, ""
	}
}

// FormatDelta renders a computed delta as "2.00 (🟢 -80.0%)".
func FormatDelta(d Delta) string {
	icon, sign := Indicator(d.Percent)
	return fmt.Sprintf("%.2f (%s %s%.1f%%)", d.Value, icon, sign, d.Percent)
}

// PrintComparison writes the baseline comparison report. When the baseline
// configuration is absent a single notice is written and nothing else.
func PrintComparison(w io.Writer, rs results.ResultSet, baseline string) {
	comparisons, err := Compare(rs, baseline)
	if err != nil {
		fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf("Baseline '%s' not found in results", baseline)))
		return
	}

	fmt.Fprintf(w, "\n%s\n", rule("=", reportWidth))
	fmt.Fprintln(w, bannerStyle.Render(fmt.Sprintf("COMPARISON vs BASELINE (%s)", baseline)))
	fmt.Fprintf(w, "%s\n\n", rule("=", reportWidth))

	for _, mc := range comparisons {
		fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(fmt.Sprintf("%s %s:", Icons.Comparison, mc.Metric.Label)))
		fmt.Fprintln(w, rule("-", metricWidth))

		switch mc.Status {
		case BaselineUnavailable:
			fmt.Fprintln(w, "  baseline data unavailable")
			continue
		case BaselineInvalid:
			fmt.Fprintf(w, "  invalid baseline value: %s\n", mc.BaselineRaw)
			continue
		}

		fmt.Fprintf(w, "  %-*s %.2f\n", labelWidth, fmt.Sprintf("Baseline (%s):", baseline), mc.Baseline)

		for _, d := range mc.Deltas {
			switch d.Status {
			case ValueUnavailable:
				fmt.Fprintf(w, "  %-*s N/A\n", labelWidth, d.Config)
			case ValueInvalid:
				fmt.Fprintf(w, "  %-*s invalid value: %s\n", labelWidth, d.Config, d.Raw)
			default:
				fmt.Fprintf(w, "  %-*s %s\n", labelWidth, d.Config, FormatDelta(d))
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", rule("=", reportWidth))
}
