package parser

// Column layout of the benchmark results file. The layout is positional:
// the header row names the columns but is never converted to data. Columns
// 3 and 5 are reserved by the producer and left opaque.
const (
	colSize        = 0
	colMethod      = 1
	colComputeTime = 2
	colTotalTime   = 4
	colMemoryUsage = 6
	colGFlops      = 8

	// MinFields is the smallest field count a data row may have.
	MinFields = 9
)

// TrialRecord is one measured benchmark observation: a single run of one
// multiplication method at one matrix size.
type TrialRecord struct {
	Size          int
	Method        string
	ComputeTimeMs float64
	TotalTimeMs   float64
	MemoryMB      float64
	GFlops        float64
}

// ParsedBenchmarkData holds the records of a results file in input order.
type ParsedBenchmarkData struct {
	Records     []TrialRecord
	ParseErrors []string // Non-fatal errors collected during parsing
}

// Helper to initialize ParsedBenchmarkData
func NewParsedBenchmarkData() *ParsedBenchmarkData {
	return &ParsedBenchmarkData{
		Records:     make([]TrialRecord, 0),
		ParseErrors: make([]string, 0),
	}
}
