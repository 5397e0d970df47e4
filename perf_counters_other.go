//go:build !linux

package strictmath

func newPlatformMonitor() PerfMonitor {
	return &timingMonitor{}
}
