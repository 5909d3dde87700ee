package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
)

// startProfiling starts a CPU profile at cpuPath and arranges for a heap
// profile at heapPath when the returned stop function runs. Empty paths
// disable the respective profile. stop is safe to call more than once.
func startProfiling(cpuPath, heapPath string) (func() error, error) {
	var cpuFile *os.File
	if cpuPath != "" {
		f, err := os.Create(cpuPath)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("starting cpu profile: %w", err)
		}
		cpuFile = f
	}
	var (
		once    sync.Once
		stopErr error
	)
	stop := func() error {
		once.Do(func() {
			if cpuFile != nil {
				pprof.StopCPUProfile()
				stopErr = cpuFile.Close()
			}
			if heapPath == "" {
				return
			}
			f, err := os.Create(heapPath)
			if err != nil {
				stopErr = err
				return
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				stopErr = fmt.Errorf("writing heap profile: %w", err)
			}
		})
		return stopErr
	}
	return stop, nil
}
