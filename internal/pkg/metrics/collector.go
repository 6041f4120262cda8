package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Sample is a point-in-time snapshot of the search process.
type Sample struct {
	Attempts          int64     `json:"attempts"`
	CPUUsage          float64   `json:"cpuUsage"`
	HeapMB            int64     `json:"heapMb"`
	SystemUsedPercent float64   `json:"systemUsedPercent"`
	Timestamp         time.Time `json:"timestamp"`
}

// Collector periodically samples CPU and memory for the running search.
type Collector struct {
	mu       sync.RWMutex
	latest   Sample
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewCollector(interval time.Duration) *Collector {
	return &Collector{
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (c *Collector) Start() {
	go c.collect()
}

func (c *Collector) Stop() {
	close(c.stop)
	<-c.done
}

func (c *Collector) collect() {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			cpuUsage, _ := cpu.Percent(0, false)
			vm, _ := mem.VirtualMemory()

			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			c.mu.Lock()
			if len(cpuUsage) > 0 {
				c.latest.CPUUsage = cpuUsage[0]
			}
			if vm != nil {
				c.latest.SystemUsedPercent = vm.UsedPercent
			}
			c.latest.HeapMB = int64(m.Alloc / 1024 / 1024)
			c.latest.Timestamp = time.Now()
			c.mu.Unlock()
		}
	}
}

// Snapshot returns the latest resource sample with the current attempt
// count stamped in.
func (c *Collector) Snapshot(attempts int64) Sample {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.latest
	s.Attempts = attempts
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	return s
}
