package engine

import (
	"testing"

	"sysdash/internal/collector"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		snap     *collector.Snapshot
		expected map[string]string // Metric Name -> Expected Status
	}{
		{
			name: "All Healthy",
			snap: &collector.Snapshot{
				CPU:    collector.CPUStats{TotalPercent: 10.0},
				Memory: collector.MemoryStats{UsedPercent: 20.0},
				Disks: []collector.DiskUsage{
					{Mount: "/", UsedPercent: 30.0, FreeBytes: 100 * 1024 * 1024 * 1024},
				},
			},
			expected: map[string]string{
				"CPU Usage":    StatusHealthy,
				"RAM Usage":    StatusHealthy,
				"Disk / Usage": StatusHealthy,
			},
		},
		{
			name: "CPU Critical",
			snap: &collector.Snapshot{
				CPU:    collector.CPUStats{TotalPercent: 95.0},
				Memory: collector.MemoryStats{UsedPercent: 20.0},
			},
			expected: map[string]string{
				"CPU Usage": StatusCritical,
			},
		},
		{
			name: "RAM Warning",
			snap: &collector.Snapshot{
				CPU:    collector.CPUStats{TotalPercent: 10.0},
				Memory: collector.MemoryStats{UsedPercent: 75.0},
			},
			expected: map[string]string{
				"RAM Usage": StatusWarning,
			},
		},
		{
			name: "Disk Absolute Capacity Warning (<5GB free)",
			snap: &collector.Snapshot{
				Disks: []collector.DiskUsage{
					{Mount: "/", UsedPercent: 10.0, FreeBytes: 3 * 1024 * 1024 * 1024},
				},
			},
			expected: map[string]string{
				"Disk / Usage": StatusWarning,
			},
		},
		{
			name: "Skip Swap when unused",
			snap: &collector.Snapshot{
				Memory: collector.MemoryStats{UsedPercent: 20.0, SwapUsedPercent: 0},
			},
			expected: map[string]string{
				"RAM Usage": StatusHealthy,
			},
		},
		{
			name: "Swap Critical",
			snap: &collector.Snapshot{
				Memory: collector.MemoryStats{UsedPercent: 20.0, SwapUsedPercent: 85.0},
			},
			expected: map[string]string{
				"Swap Usage": StatusCritical,
			},
		},
		{
			name: "Temperature Warning",
			snap: &collector.Snapshot{
				Temperatures: []collector.TemperatureReading{
					{Sensor: "coretemp", Celsius: 80.0},
				},
			},
			expected: map[string]string{
				"Temp coretemp": StatusWarning,
			},
		},
		{
			name: "Battery Low While Discharging",
			snap: &collector.Snapshot{
				Batteries: []collector.BatteryStats{
					{ID: 0, ChargePercent: 15.0, Status: "Discharging"},
				},
			},
			expected: map[string]string{
				"Battery 0": StatusWarning,
			},
		},
		{
			name: "Battery Low While Charging Is Fine",
			snap: &collector.Snapshot{
				Batteries: []collector.BatteryStats{
					{ID: 0, ChargePercent: 5.0, Status: "Charging"},
				},
			},
			expected: map[string]string{
				"Battery 0": StatusHealthy,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Evaluate(tt.snap)

			if tt.name == "Skip Swap when unused" {
				for _, res := range results {
					if res.Name == "Swap Usage" {
						t.Errorf("%s: Swap Usage should have been skipped", tt.name)
					}
				}
			}

			for _, res := range results {
				if want, ok := tt.expected[res.Name]; ok {
					if res.Status != want {
						t.Errorf("%s: for %s expected %s, got %s (Value: %.2f)", tt.name, res.Name, want, res.Status, res.Value)
					}
				}
			}
		})
	}
}
