// Package sysmon samples host-wide CPU and memory usage so that benchmark
// timings can be read against the load of the machine they ran on.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// HostStats holds a single snapshot of system-wide resource usage.
type HostStats struct {
	CPUPercent  float64 // 0.0 .. 100.0, averaged over all cores
	MemPercent  float64 // 0.0 .. 100.0
	TotalMemory uint64  // bytes
	LogicalCPUs int
}

// Sample collects a host snapshot. CPU usage is the delta since the previous
// call (interval 0), so the first call of a process may report 0.
// Fields whose probe fails are left at zero; the first failure is returned.
func Sample(ctx context.Context) (HostStats, error) {
	var (
		s        HostStats
		firstErr error
	)
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		keep(err)
	} else if len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if n, err := cpu.CountsWithContext(ctx, true); err != nil {
		keep(err)
	} else {
		s.LogicalCPUs = n
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		keep(err)
	} else if vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.TotalMemory = vmem.Total
	}
	return s, firstErr
}
