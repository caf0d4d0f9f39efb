package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/matrixbench_go/internal/parser"
)

func TestSummarizeMethods(t *testing.T) {
	records := []parser.TrialRecord{
		{Size: 128, Method: "Naive", ComputeTimeMs: 10, MemoryMB: 50, GFlops: 1.6},
		{Size: 256, Method: "Naive", ComputeTimeMs: 80, MemoryMB: 90, GFlops: 1.8},
		{Size: 512, Method: "Naive", ComputeTimeMs: 600, MemoryMB: 200, GFlops: 1.4},
		{Size: 128, Method: "Blocked", ComputeTimeMs: 4, MemoryMB: 48, GFlops: 4.0},
	}
	ds := AggregateByMethod(records)

	summaries := SummarizeMethods(ds)
	require.Len(t, summaries, 2)

	naive := summaries[0]
	assert.Equal(t, "Naive", naive.Method)
	assert.Equal(t, 3, naive.Trials)
	assert.Equal(t, 128, naive.MinSize)
	assert.Equal(t, 512, naive.MaxSize)
	assert.Equal(t, 10.0, naive.MinComputeMs)
	assert.InDelta(t, 230.0, naive.MeanComputeMs, 1e-9)
	assert.Equal(t, 600.0, naive.MaxComputeMs)
	assert.Equal(t, 200.0, naive.PeakMemoryMB)
	assert.InDelta(t, 1.6, naive.MeanGFlops, 1e-9)
	assert.Equal(t, 1.8, naive.PeakGFlops)

	blocked := summaries[1]
	assert.Equal(t, "Blocked", blocked.Method)
	assert.Equal(t, 1, blocked.Trials)
	assert.Equal(t, 4.0, blocked.MinComputeMs)
	assert.Equal(t, 4.0, blocked.MaxComputeMs)
}

func TestSummarizeMethodsOrderFollowsDataset(t *testing.T) {
	records := []parser.TrialRecord{
		{Size: 128, Method: "Zeta", ComputeTimeMs: 1, GFlops: 1},
		{Size: 128, Method: "Alpha", ComputeTimeMs: 2, GFlops: 2},
	}
	summaries := SummarizeMethods(AggregateByMethod(records))
	require.Len(t, summaries, 2)
	assert.Equal(t, "Zeta", summaries[0].Method)
	assert.Equal(t, "Alpha", summaries[1].Method)
}

func TestSummarizeMethodsEmpty(t *testing.T) {
	summaries := SummarizeMethods(NewDataset())
	assert.Empty(t, summaries)
}

func TestFastestMethod(t *testing.T) {
	summaries := []MethodSummary{
		{Method: "Naive", PeakGFlops: 1.8},
		{Method: "Parallel", PeakGFlops: 12.8},
		{Method: "Blocked", PeakGFlops: 4.0},
	}
	assert.Equal(t, "Parallel", FastestMethod(summaries))
	assert.Equal(t, "", FastestMethod(nil))
}
