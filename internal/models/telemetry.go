package models

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// StationTelemetry captures operator-station resource usage sampled for the
// dashboard footer.
type StationTelemetry struct {
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float64   `json:"memory_percent"`
	MemoryUsed    uint64    `json:"memory_used_bytes"`
	MemoryTotal   uint64    `json:"memory_total_bytes"`
	SampledAt     time.Time `json:"sampled_at"`
}

// SampleStationTelemetry reads instantaneous CPU and memory usage of the
// local host. Best-effort; callers tolerate a nil result.
func SampleStationTelemetry(ctx context.Context) (*StationTelemetry, error) {
	sample := &StationTelemetry{SampledAt: time.Now()}

	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, err
	}
	if len(percents) > 0 {
		sample.CPUPercent = percents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}
	sample.MemoryPercent = vm.UsedPercent
	sample.MemoryUsed = vm.Used
	sample.MemoryTotal = vm.Total

	return sample, nil
}
