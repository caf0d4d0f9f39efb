package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// normalizeDecimal rewrites a locale-formatted numeric field so strconv can
// parse it. The benchmark writer emits decimals with a comma separator
// ("12,5" meaning 12.5). Field splitting has already happened by the time
// this runs, so any comma still inside a field is a decimal separator.
func normalizeDecimal(field string) string {
	return strings.ReplaceAll(strings.TrimSpace(field), ",", ".")
}

func parseFloatField(field, name string) (float64, error) {
	val, err := strconv.ParseFloat(normalizeDecimal(field), 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert %s value '%s' to float: %v", name, field, err)
	}
	if val < 0 {
		return 0, fmt.Errorf("%s value %v is negative", name, val)
	}
	return val, nil
}

// parseRow converts one data row into a TrialRecord. The reserved columns
// at indexes 3 and 5 are checked for presence only, never converted.
func parseRow(row []string) (TrialRecord, error) {
	if len(row) < MinFields {
		return TrialRecord{}, fmt.Errorf("expected at least %d fields, got %d", MinFields, len(row))
	}

	size, err := strconv.Atoi(strings.TrimSpace(row[colSize]))
	if err != nil {
		return TrialRecord{}, fmt.Errorf("could not convert size '%s' to int: %v", row[colSize], err)
	}
	if size <= 0 {
		return TrialRecord{}, fmt.Errorf("size %d is not positive", size)
	}

	method := strings.TrimSpace(row[colMethod])
	if method == "" {
		return TrialRecord{}, fmt.Errorf("empty method name")
	}

	rec := TrialRecord{Size: size, Method: method}
	fields := []struct {
		col  int
		name string
		dst  *float64
	}{
		{colComputeTime, "compute time", &rec.ComputeTimeMs},
		{colTotalTime, "total time", &rec.TotalTimeMs},
		{colMemoryUsage, "memory usage", &rec.MemoryMB},
		{colGFlops, "gflops", &rec.GFlops},
	}
	for _, f := range fields {
		val, err := parseFloatField(row[f.col], f.name)
		if err != nil {
			return TrialRecord{}, err
		}
		*f.dst = val
	}
	return rec, nil
}

// ParseBenchmarkData reads a benchmark results CSV file and parses it.
// Malformed rows are skipped and reported through ParseErrors; only an
// unreadable file or a file without a header row is a hard error.
func ParseBenchmarkData(filepath string) (*ParsedBenchmarkData, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return parseBenchmarkRecords(file)
}

func parseBenchmarkRecords(r io.Reader) (*ParsedBenchmarkData, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // row width varies with locale formatting; validated per row
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("results file has no header row")
	}

	parsedData := NewParsedBenchmarkData()

	// allRows[0] is the header row.
	for rowIdx, row := range allRows[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") { // Skip blank rows
			continue
		}
		rec, err := parseRow(row)
		if err != nil {
			parsedData.ParseErrors = append(parsedData.ParseErrors,
				fmt.Sprintf("Warning: skipping row %d: %v", rowIdx+2, err))
			continue
		}
		parsedData.Records = append(parsedData.Records, rec)
	}

	return parsedData, nil
}
