package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/matrixbench_go/internal/parser"
)

func rec(size int, method string, computeMs, gflops float64) parser.TrialRecord {
	return parser.TrialRecord{
		Size:          size,
		Method:        method,
		ComputeTimeMs: computeMs,
		TotalTimeMs:   computeMs + 1,
		MemoryMB:      float64(size) / 10,
		GFlops:        gflops,
	}
}

func TestAggregateByMethodFirstSeenOrder(t *testing.T) {
	records := []parser.TrialRecord{
		rec(128, "Naive", 10, 1.6),
		rec(128, "Blocked", 5, 3.2),
		rec(256, "Naive", 80, 1.7),
		rec(256, "Parallel", 20, 6.4),
		rec(512, "Blocked", 40, 3.4),
	}

	ds := AggregateByMethod(records)

	// Method order is first occurrence, no matter how records interleave.
	assert.Equal(t, []string{"Naive", "Blocked", "Parallel"}, ds.Methods)

	require.Len(t, ds.Series["Naive"], 2)
	assert.Equal(t, 128, ds.Series["Naive"][0].Size)
	assert.Equal(t, 256, ds.Series["Naive"][1].Size)
	require.Len(t, ds.Series["Blocked"], 2)
	require.Len(t, ds.Series["Parallel"], 1)

	// Every parsed record lands in exactly one series.
	assert.Equal(t, len(records), ds.Len())
}

func TestAggregateByMethodKeepsInputOrderNotSizeOrder(t *testing.T) {
	records := []parser.TrialRecord{
		rec(512, "Naive", 300, 1.5),
		rec(128, "Naive", 10, 1.6),
		rec(256, "Naive", 80, 1.7),
	}

	ds := AggregateByMethod(records)
	require.Len(t, ds.Series["Naive"], 3)
	assert.Equal(t, 512, ds.Series["Naive"][0].Size)
	assert.Equal(t, 128, ds.Series["Naive"][1].Size)
	assert.Equal(t, 256, ds.Series["Naive"][2].Size)
}

func TestAggregateByMethodKeepsDuplicates(t *testing.T) {
	records := []parser.TrialRecord{
		rec(128, "Naive", 10, 1.6),
		rec(128, "Naive", 11, 1.5),
	}

	ds := AggregateByMethod(records)
	require.Len(t, ds.Series["Naive"], 2)
	assert.Equal(t, 10.0, ds.Series["Naive"][0].ComputeTimeMs)
	assert.Equal(t, 11.0, ds.Series["Naive"][1].ComputeTimeMs)
}

func TestAggregateByMethodEmpty(t *testing.T) {
	ds := AggregateByMethod(nil)
	require.NotNil(t, ds)
	assert.Empty(t, ds.Methods)
	assert.Empty(t, ds.Series)
	assert.Equal(t, 0, ds.Len())
}
