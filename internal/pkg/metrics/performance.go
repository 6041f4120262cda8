package metrics

import (
	"runtime"
	"time"
)

// RunPerformance summarizes allocation and GC behavior of one search run.
type RunPerformance struct {
	StartTime    time.Time     `json:"startTime"`
	EndTime      time.Time     `json:"endTime"`
	Duration     time.Duration `json:"duration"`
	MemoryUsage  uint64        `json:"memoryUsage"`
	AllocObjects uint64        `json:"allocObjects"`
	GCCycles     uint32        `json:"gcCycles"`
}

// CapturePerformance runs fn and reports what it cost.
func CapturePerformance(fn func()) *RunPerformance {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	startAlloc := stats.TotalAlloc
	startGC := stats.NumGC

	perf := &RunPerformance{
		StartTime: time.Now(),
	}

	fn()

	runtime.ReadMemStats(&stats)
	perf.EndTime = time.Now()
	perf.Duration = perf.EndTime.Sub(perf.StartTime)
	perf.MemoryUsage = stats.TotalAlloc - startAlloc
	perf.AllocObjects = stats.Mallocs - stats.Frees
	perf.GCCycles = stats.NumGC - startGC

	return perf
}
