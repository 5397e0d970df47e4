// Command mathbench times every function in the strict-math binding table
// and reports hardware counters where available.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/strictfp/strictmath"
	"github.com/strictfp/strictmath/bind"
)

func main() {
	var (
		iters   = flag.Int("iters", 1_000_000, "Invocations per function")
		verbose = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	fmt.Println("=== strictmath benchmark ===")
	fmt.Printf("Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("CPU: %d cores, %s\n", runtime.NumCPU(), strictmath.HostCPUFeatures())
	fmt.Println()

	registry, err := bind.StrictMath()
	if err != nil {
		log.Fatalf("Failed to build function table: %v", err)
	}

	for _, name := range registry.Names() {
		fn, _ := registry.Get(name)
		counters, err := measure(fn, *iters)
		if err != nil {
			log.Fatalf("Measuring %s failed: %v", name, err)
		}

		nsPerOp := float64(counters.Duration.Nanoseconds()) / float64(*iters)
		fmt.Printf("%-14s %-7s %8.2f ns/op", name, fn.Signature(), nsPerOp)
		if counters.HasHardwareCounters() {
			fmt.Printf("  %6.2f cycles/op  IPC %.2f",
				float64(counters.Cycles)/float64(*iters), counters.IPC)
		}
		fmt.Println()

		if *verbose && counters.HasHardwareCounters() {
			fmt.Printf("    cycles=%d instructions=%d branch-misses=%d\n",
				counters.Cycles, counters.Instructions, counters.BranchMisses)
		}
	}
}

// sink keeps the measured loops from being optimized away.
var sink float64

func measure(fn bind.Func, iters int) (*strictmath.PerfCounters, error) {
	// Arguments chosen inside every function's domain so no fast NaN paths
	// are measured.
	args := []float64{0.5, 0.25}[:arity(fn)]

	return strictmath.MeasureKernel(func() error {
		for i := 0; i < iters; i++ {
			v, err := fn.Invoke(args)
			if err != nil {
				return err
			}
			sink = v
		}
		return nil
	})
}

func arity(fn bind.Func) int {
	if fn.Signature() == bind.SigUnaryDouble {
		return 1
	}
	return 2
}
