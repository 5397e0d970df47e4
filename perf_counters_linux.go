//go:build linux

// Package strictmath Linux hardware counter collection via perf_event_open
package strictmath

import (
	"encoding/binary"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// linuxPerfMonitor reads hardware counters through perf_event_open. When the
// syscall is unavailable (permissions, container seccomp policy) it degrades
// to wall-clock timing.
type linuxPerfMonitor struct {
	start time.Time
	fds   []int
}

// Counters collected per region, in read order.
var perfEventConfigs = []uint64{
	unix.PERF_COUNT_HW_CPU_CYCLES,
	unix.PERF_COUNT_HW_INSTRUCTIONS,
	unix.PERF_COUNT_HW_BRANCH_MISSES,
}

func newPlatformMonitor() PerfMonitor {
	return &linuxPerfMonitor{}
}

// Start opens the counter file descriptors and enables collection
func (m *linuxPerfMonitor) Start() error {
	m.closeFDs()

	for _, config := range perfEventConfigs {
		attr := unix.PerfEventAttr{
			Type:   unix.PERF_TYPE_HARDWARE,
			Config: config,
			Bits:   unix.PerfBitDisabled | unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
		}
		attr.Size = uint32(unsafe.Sizeof(attr))

		fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			// Counters unavailable; fall back to timing only.
			m.closeFDs()
			break
		}
		m.fds = append(m.fds, fd)
	}

	for _, fd := range m.fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
			m.closeFDs()
			break
		}
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
			m.closeFDs()
			break
		}
	}

	m.start = time.Now()
	return nil
}

// Stop disables collection and returns the counter values
func (m *linuxPerfMonitor) Stop() (*PerfCounters, error) {
	counters := &PerfCounters{Duration: time.Since(m.start)}

	values := make([]uint64, 0, len(m.fds))
	for _, fd := range m.fds {
		unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_DISABLE, 0)

		var buf [8]byte
		if n, err := unix.Read(fd, buf[:]); err == nil && n == len(buf) {
			values = append(values, binary.LittleEndian.Uint64(buf[:]))
		}
	}
	m.closeFDs()

	if len(values) == len(perfEventConfigs) {
		counters.Cycles = values[0]
		counters.Instructions = values[1]
		counters.BranchMisses = values[2]
		if counters.Cycles > 0 {
			counters.IPC = float64(counters.Instructions) / float64(counters.Cycles)
		}
	}

	return counters, nil
}

func (m *linuxPerfMonitor) closeFDs() {
	for _, fd := range m.fds {
		unix.Close(fd)
	}
	m.fds = nil
}
