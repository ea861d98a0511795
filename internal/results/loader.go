package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	ColumnConfig = "Config"
	ColumnTest   = "Test"
)

// ErrMissingColumn is returned when the header lacks Config or Test.
var ErrMissingColumn = errors.New("missing required column")

// Load reads the CSV file at path into a ResultSet.
// An empty file or a header without data rows yields an empty ResultSet.
func Load(path string) (ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Debug("Loaded benchmark results", "path", path, "configs", len(rs), "entries", rs.Len())
	return rs, nil
}

// Read parses CSV data from r. Later rows for the same (Config, Test) pair
// replace earlier ones.
func Read(r io.Reader) (ResultSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rs := ResultSet{}

	header, err := reader.Read()
	if err == io.EOF {
		return rs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header[i] = strings.TrimSpace(name)
	}

	configIdx, testIdx := -1, -1
	for i, name := range header {
		switch name {
		case ColumnConfig:
			configIdx = i
		case ColumnTest:
			testIdx = i
		}
	}
	if configIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnConfig)
	}
	if testIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnTest)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}

		config, test := row[ColumnConfig], row[ColumnTest]
		if _, ok := rs[config]; !ok {
			rs[config] = map[string]Row{}
		}
		if _, dup := rs[config][test]; dup {
			slog.Debug("Duplicate result row replaces earlier one", "config", config, "test", test)
		}
		rs[config][test] = row
	}

	return rs, nil
}
