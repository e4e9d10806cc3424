// Package engine evaluates harvested snapshots against fixed health
// thresholds. The dashboard uses the results to color widget readouts.
package engine

import (
	"fmt"

	"sysdash/internal/collector"
)

const (
	StatusHealthy  = "OK"
	StatusWarning  = "WARN"
	StatusCritical = "CRIT"

	CPUWarningThreshold   = 70.0
	CPUCriticalThreshold  = 90.0
	RAMWarningThreshold   = 70.0
	RAMCriticalThreshold  = 90.0
	SwapWarningThreshold  = 50.0
	SwapCriticalThreshold = 80.0
	DiskWarningThreshold  = 80.0
	DiskCriticalThreshold = 90.0
	TempWarningThreshold  = 75.0 // °C
	TempCriticalThreshold = 90.0

	BatteryLowThreshold      = 20.0
	BatteryCriticalThreshold = 10.0
)

type CheckResult struct {
	Name   string
	Value  float64
	Status string
}

func getStatus(value, warning, critical float64) string {
	if value > critical {
		return StatusCritical
	}
	if value > warning {
		return StatusWarning
	}
	return StatusHealthy
}

func Evaluate(snap *collector.Snapshot) []CheckResult {
	var result []CheckResult

	// CPU
	result = append(result, CheckResult{
		Name:   "CPU Usage",
		Value:  snap.CPU.TotalPercent,
		Status: getStatus(snap.CPU.TotalPercent, CPUWarningThreshold, CPUCriticalThreshold),
	})

	// RAM
	result = append(result, CheckResult{
		Name:   "RAM Usage",
		Value:  snap.Memory.UsedPercent,
		Status: getStatus(snap.Memory.UsedPercent, RAMWarningThreshold, RAMCriticalThreshold),
	})

	// Swap only matters once it is actually in use
	if snap.Memory.SwapUsedPercent > 0 {
		result = append(result, CheckResult{
			Name:   "Swap Usage",
			Value:  snap.Memory.SwapUsedPercent,
			Status: getStatus(snap.Memory.SwapUsedPercent, SwapWarningThreshold, SwapCriticalThreshold),
		})
	}

	// Per-filesystem usage
	for _, d := range snap.Disks {
		dStatus := getStatus(d.UsedPercent, DiskWarningThreshold, DiskCriticalThreshold)

		// Absolute capacity check: warn under 5GB free even if % is okay
		if d.FreeBytes < 5*1024*1024*1024 && dStatus == StatusHealthy {
			dStatus = StatusWarning
		}

		result = append(result, CheckResult{
			Name:   fmt.Sprintf("Disk %s Usage", d.Mount),
			Value:  d.UsedPercent,
			Status: dStatus,
		})
	}

	// Temperature sensors (best-effort)
	for _, t := range snap.Temperatures {
		result = append(result, CheckResult{
			Name:   fmt.Sprintf("Temp %s", t.Sensor),
			Value:  t.Celsius,
			Status: getStatus(t.Celsius, TempWarningThreshold, TempCriticalThreshold),
		})
	}

	// Batteries: low charge while discharging
	for _, b := range snap.Batteries {
		bStatus := StatusHealthy
		if b.Status == "Discharging" {
			if b.ChargePercent < BatteryCriticalThreshold {
				bStatus = StatusCritical
			} else if b.ChargePercent < BatteryLowThreshold {
				bStatus = StatusWarning
			}
		}
		result = append(result, CheckResult{
			Name:   fmt.Sprintf("Battery %d", b.ID),
			Value:  b.ChargePercent,
			Status: bStatus,
		})
	}

	return result
}
