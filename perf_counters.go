// Package strictmath performance counter integration for benchmarking tools
package strictmath

import (
	"time"
)

// PerfCounters holds performance counter measurements for one measured region
type PerfCounters struct {
	// Timing
	Duration time.Duration

	// CPU counters (zero when hardware counters are unavailable)
	Cycles       uint64
	Instructions uint64
	BranchMisses uint64

	// Derived metrics
	IPC float64 // Instructions per cycle
}

// HasHardwareCounters reports whether the CPU counter fields are populated.
func (c *PerfCounters) HasHardwareCounters() bool {
	return c.Cycles > 0
}

// PerfMonitor collects performance counters around a measured region.
// On platforms without counter support only wall-clock time is collected.
type PerfMonitor interface {
	Start() error
	Stop() (*PerfCounters, error)
}

// NewPerfMonitor returns the best monitor available on this platform
func NewPerfMonitor() PerfMonitor {
	return newPlatformMonitor()
}

// timingMonitor is the portable fallback using wall-clock time only
type timingMonitor struct {
	start time.Time
}

func (m *timingMonitor) Start() error {
	m.start = time.Now()
	return nil
}

func (m *timingMonitor) Stop() (*PerfCounters, error) {
	return &PerfCounters{Duration: time.Since(m.start)}, nil
}

// MeasureKernel runs fn and collects performance counters around it
func MeasureKernel(fn func() error) (*PerfCounters, error) {
	pm := NewPerfMonitor()
	if err := pm.Start(); err != nil {
		return nil, err
	}
	if err := fn(); err != nil {
		return nil, err
	}
	return pm.Stop()
}
