package analysis

import "github.com/user/matrixbench_go/internal/parser"

// Dataset groups trial records by multiplication method. Methods holds the
// labels in first-seen order; legend text and color/marker assignment
// depend on that order, and iterating the Series map directly would lose it.
type Dataset struct {
	Methods []string
	Series  map[string][]parser.TrialRecord
}

// Helper to initialize Dataset
func NewDataset() *Dataset {
	return &Dataset{
		Methods: make([]string, 0),
		Series:  make(map[string][]parser.TrialRecord),
	}
}

// Len returns the total number of records across all method series.
func (d *Dataset) Len() int {
	n := 0
	for _, series := range d.Series {
		n += len(series)
	}
	return n
}

// MethodSummary holds the per-method statistics shown in the report tables.
type MethodSummary struct {
	Method        string
	Trials        int
	MinSize       int
	MaxSize       int
	MinComputeMs  float64
	MeanComputeMs float64
	MaxComputeMs  float64
	PeakMemoryMB  float64
	MeanGFlops    float64
	PeakGFlops    float64
}
