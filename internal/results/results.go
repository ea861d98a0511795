package results

import (
	"sort"

	"github.com/samber/lo"
)

// Placeholder marks a measurement that is not available.
const Placeholder = "-"

// Row holds the raw values of one CSV record, keyed by column name.
type Row map[string]string

// ResultSet maps configuration name -> test category -> Row.
type ResultSet map[string]map[string]Row

// Get returns the raw value recorded for config/test/metric.
// Lookups never create entries.
func (rs ResultSet) Get(config, test, metric string) (string, bool) {
	tests, ok := rs[config]
	if !ok {
		return "", false
	}
	row, ok := tests[test]
	if !ok {
		return "", false
	}
	v, ok := row[metric]
	return v, ok
}

// Value is like Get but falls back to Placeholder when the cell is absent
// or empty.
func (rs ResultSet) Value(config, test, metric string) string {
	if v, ok := rs.Get(config, test, metric); ok && v != "" {
		return v
	}
	return Placeholder
}

// Has reports whether config has at least one row.
func (rs ResultSet) Has(config string) bool {
	_, ok := rs[config]
	return ok
}

// Configs returns the configuration names in lexicographic order.
func (rs ResultSet) Configs() []string {
	configs := lo.Keys(rs)
	sort.Strings(configs)
	return configs
}

// Len returns the number of (config, test) entries.
func (rs ResultSet) Len() int {
	n := 0
	for _, tests := range rs {
		n += len(tests)
	}
	return n
}

// IsMissing reports whether a raw cell value carries no measurement.
func IsMissing(v string) bool {
	return v == "" || v == Placeholder
}
