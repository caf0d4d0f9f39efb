package analysis

import "github.com/user/matrixbench_go/internal/parser"

// AggregateByMethod groups records into one series per method label. A
// label not seen before starts a new series at the end of the method
// order, and each series keeps its records in input order. Records are
// taken as-is: no sorting, no deduplication, no unit conversion. Zero
// records yield an empty Dataset.
func AggregateByMethod(records []parser.TrialRecord) *Dataset {
	ds := NewDataset()
	for _, rec := range records {
		if _, seen := ds.Series[rec.Method]; !seen {
			ds.Methods = append(ds.Methods, rec.Method)
		}
		ds.Series[rec.Method] = append(ds.Series[rec.Method], rec)
	}
	return ds
}
