package analysis

import "math"

// For stats, we can use gonum/stat or write simple helpers.
// The quantities here (mean, min, max over short slices) don't justify
// the dependency; if more complex stats are needed later it can be added.

// Helper to calculate mean
func calculateMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Helper to calculate minimum
func calculateMin(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	minVal := data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		}
	}
	return minVal
}

// Helper to calculate maximum
func calculateMax(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	maxVal := data[0]
	for _, v := range data[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// SummarizeMethods computes per-method statistics, one summary per method
// in Dataset order.
func SummarizeMethods(ds *Dataset) []MethodSummary {
	summaries := make([]MethodSummary, 0, len(ds.Methods))
	for _, method := range ds.Methods {
		series := ds.Series[method]
		if len(series) == 0 {
			continue
		}

		computeTimes := make([]float64, 0, len(series))
		gflops := make([]float64, 0, len(series))
		s := MethodSummary{
			Method:  method,
			Trials:  len(series),
			MinSize: series[0].Size,
			MaxSize: series[0].Size,
		}
		for _, rec := range series {
			computeTimes = append(computeTimes, rec.ComputeTimeMs)
			gflops = append(gflops, rec.GFlops)
			if rec.Size < s.MinSize {
				s.MinSize = rec.Size
			}
			if rec.Size > s.MaxSize {
				s.MaxSize = rec.Size
			}
			if rec.MemoryMB > s.PeakMemoryMB {
				s.PeakMemoryMB = rec.MemoryMB
			}
		}
		s.MinComputeMs = calculateMin(computeTimes)
		s.MeanComputeMs = calculateMean(computeTimes)
		s.MaxComputeMs = calculateMax(computeTimes)
		s.MeanGFlops = calculateMean(gflops)
		s.PeakGFlops = calculateMax(gflops)
		summaries = append(summaries, s)
	}
	return summaries
}

// FastestMethod returns the method with the highest peak throughput, or ""
// for an empty summary list.
func FastestMethod(summaries []MethodSummary) string {
	best := ""
	bestGFlops := math.Inf(-1)
	for _, s := range summaries {
		if s.PeakGFlops > bestGFlops {
			best = s.Method
			bestGFlops = s.PeakGFlops
		}
	}
	return best
}
