// Package collector harvests system resource usage into immutable snapshots
// consumed by the dashboard widgets.
package collector

import (
	"context"
	"time"
)

// Snapshot is a fully-formed bundle of harvested resource data for one tick.
// Snapshots are immutable once published; widgets only ever read them.
type Snapshot struct {
	TakenAt time.Time

	CPU          CPUStats
	Memory       MemoryStats
	Disks        []DiskUsage
	Temperatures []TemperatureReading
	Network      NetworkStats
	Batteries    []BatteryStats
	Processes    []ProcessInfo
}

// CPUStats holds overall and per-core utilization percentages.
type CPUStats struct {
	TotalPercent float64
	PerCore      []float64
	LoadAvg1     float64
}

// MemoryStats holds physical and swap memory usage.
type MemoryStats struct {
	UsedPercent     float64
	TotalBytes      uint64
	UsedBytes       uint64
	AvailableBytes  uint64
	SwapUsedPercent float64
}

// DiskUsage describes one mounted filesystem.
type DiskUsage struct {
	Mount       string
	Device      string
	Fstype      string
	UsedPercent float64
	TotalBytes  uint64
	FreeBytes   uint64
}

// TemperatureReading is one hardware temperature sensor sample.
type TemperatureReading struct {
	Sensor  string
	Celsius float64
}

// NetworkStats holds aggregate counters plus per-second rates derived from
// the previous harvest.
type NetworkStats struct {
	BytesRecv  uint64
	BytesSent  uint64
	RecvPerSec float64
	SentPerSec float64
}

// BatteryStats describes one battery, when the host has any.
type BatteryStats struct {
	ID            int
	ChargePercent float64
	Status        string
}

// ProcessInfo is one sampled process.
type ProcessInfo struct {
	PID        int32
	Name       string
	User       string
	CPUPercent float64
	MemPercent float64
}

// SnapshotProvider is the contract the UI depends on; the concrete harvester
// and test mocks both satisfy it.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
