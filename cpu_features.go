package strictmath

import (
	"golang.org/x/sys/cpu"
)

// CPUFeatures reports the floating-point-relevant instruction set extensions
// of the host. The library's results do not depend on any of these (every
// function is a scalar IEEE-754 operation), but benchmarking tools report
// them so that timing numbers can be attributed to the right hardware.
type CPUFeatures struct {
	HasAVX     bool
	HasAVX2    bool
	HasAVX512F bool
	HasFMA     bool
	HasSSE4    bool
}

var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasFMA:     cpu.X86.HasFMA,
	}
}

// HostCPUFeatures returns the detected CPU feature set.
func HostCPUFeatures() CPUFeatures {
	return cpuFeatures
}

// String formats the feature set as a short diagnostic line.
func (f CPUFeatures) String() string {
	s := "scalar"
	switch {
	case f.HasAVX512F:
		s = "AVX512F"
	case f.HasAVX2:
		s = "AVX2"
	case f.HasAVX:
		s = "AVX"
	case f.HasSSE4:
		s = "SSE4"
	}
	if f.HasFMA {
		s += "+FMA"
	}
	return s
}
