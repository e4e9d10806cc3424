package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/shirou/gopsutil/v4/sensors"
)

// Config tunes the system collector. Use DefaultConfig and override fields
// as needed.
type Config struct {
	ProcessLimit       int  // top processes kept per snapshot
	CollectTemperature bool // temperature sensors can be slow on some hosts
	CollectBattery     bool
}

// DefaultConfig returns sensible collector defaults.
func DefaultConfig() Config {
	return Config{
		ProcessLimit:       64,
		CollectTemperature: true,
		CollectBattery:     true,
	}
}

// SystemCollector harvests live metrics via gopsutil. It keeps the previous
// network counters so it can derive per-second rates between harvests.
type SystemCollector struct {
	cfg Config

	mu           sync.Mutex
	prevNetAt    time.Time
	prevNetRecv  uint64
	prevNetSent  uint64
	batterySysfs string
}

// NewSystemCollector returns a collector with the given config.
func NewSystemCollector(cfg Config) *SystemCollector {
	return &SystemCollector{cfg: cfg, batterySysfs: "/sys/class/power_supply"}
}

// Snapshot harvests one immutable snapshot. Individual subsystems are
// best-effort: a failing sensor yields an empty section, not an error, so a
// partially degraded host still renders.
func (c *SystemCollector) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{TakenAt: time.Now()}

	if err := c.collectCPU(ctx, snap); err != nil {
		return nil, fmt.Errorf("collect cpu: %w", err)
	}
	if err := c.collectMemory(ctx, snap); err != nil {
		return nil, fmt.Errorf("collect memory: %w", err)
	}

	c.collectDisks(ctx, snap)
	c.collectNetwork(ctx, snap)
	c.collectProcesses(ctx, snap)
	if c.cfg.CollectTemperature {
		c.collectTemperatures(ctx, snap)
	}
	if c.cfg.CollectBattery {
		snap.Batteries = readBatteries(c.batterySysfs)
	}

	return snap, nil
}

func (c *SystemCollector) collectCPU(ctx context.Context, snap *Snapshot) error {
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return err
	}
	if len(total) > 0 {
		snap.CPU.TotalPercent = total[0]
	}
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err == nil {
		snap.CPU.PerCore = perCore
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		snap.CPU.LoadAvg1 = avg.Load1
	}
	return nil
}

func (c *SystemCollector) collectMemory(ctx context.Context, snap *Snapshot) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	snap.Memory = MemoryStats{
		UsedPercent:    vm.UsedPercent,
		TotalBytes:     vm.Total,
		UsedBytes:      vm.Used,
		AvailableBytes: vm.Available,
	}
	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		snap.Memory.SwapUsedPercent = swap.UsedPercent
	}
	return nil
}

func (c *SystemCollector) collectDisks(ctx context.Context, snap *Snapshot) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return
	}
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}
		snap.Disks = append(snap.Disks, DiskUsage{
			Mount:       p.Mountpoint,
			Device:      p.Device,
			Fstype:      p.Fstype,
			UsedPercent: usage.UsedPercent,
			TotalBytes:  usage.Total,
			FreeBytes:   usage.Free,
		})
	}
}

func (c *SystemCollector) collectNetwork(ctx context.Context, snap *Snapshot) {
	counters, err := gnet.IOCountersWithContext(ctx, false)
	if err != nil || len(counters) == 0 {
		return
	}
	now := time.Now()
	recv := counters[0].BytesRecv
	sent := counters[0].BytesSent

	c.mu.Lock()
	snap.Network = deriveNetworkRates(recv, sent, c.prevNetRecv, c.prevNetSent, now.Sub(c.prevNetAt), !c.prevNetAt.IsZero())
	c.prevNetAt = now
	c.prevNetRecv = recv
	c.prevNetSent = sent
	c.mu.Unlock()
}

// deriveNetworkRates converts cumulative interface counters into per-second
// rates. Counter resets (reboot, interface bounce) yield zero rates instead
// of negative ones.
func deriveNetworkRates(recv, sent, prevRecv, prevSent uint64, elapsed time.Duration, havePrev bool) NetworkStats {
	stats := NetworkStats{BytesRecv: recv, BytesSent: sent}
	if !havePrev || elapsed <= 0 {
		return stats
	}
	secs := elapsed.Seconds()
	if recv >= prevRecv {
		stats.RecvPerSec = float64(recv-prevRecv) / secs
	}
	if sent >= prevSent {
		stats.SentPerSec = float64(sent-prevSent) / secs
	}
	return stats
}

func (c *SystemCollector) collectProcesses(ctx context.Context, snap *Snapshot) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return
	}
	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cpuPct, _ := p.CPUPercentWithContext(ctx)
		memPct, _ := p.MemoryPercentWithContext(ctx)
		user, _ := p.UsernameWithContext(ctx)
		infos = append(infos, ProcessInfo{
			PID:        p.Pid,
			Name:       name,
			User:       user,
			CPUPercent: cpuPct,
			MemPercent: float64(memPct),
		})
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CPUPercent > infos[j].CPUPercent
	})
	if c.cfg.ProcessLimit > 0 && len(infos) > c.cfg.ProcessLimit {
		infos = infos[:c.cfg.ProcessLimit]
	}
	snap.Processes = infos
}

func (c *SystemCollector) collectTemperatures(ctx context.Context, snap *Snapshot) {
	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil {
		return
	}
	for _, t := range temps {
		if t.SensorKey == "" {
			continue
		}
		snap.Temperatures = append(snap.Temperatures, TemperatureReading{
			Sensor:  t.SensorKey,
			Celsius: t.Temperature,
		})
	}
}

// readBatteries scans a power_supply sysfs directory. Hosts without a
// battery (or non-Linux hosts) just get an empty list.
func readBatteries(root string) []BatteryStats {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var out []BatteryStats
	id := 0
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "BAT") {
			continue
		}
		dir := filepath.Join(root, e.Name())
		capRaw, err := os.ReadFile(filepath.Join(dir, "capacity"))
		if err != nil {
			continue
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(string(capRaw)), 64)
		if err != nil {
			continue
		}
		status := "Unknown"
		if raw, err := os.ReadFile(filepath.Join(dir, "status")); err == nil {
			status = strings.TrimSpace(string(raw))
		}
		out = append(out, BatteryStats{ID: id, ChargePercent: pct, Status: status})
		id++
	}
	return out
}

// KillProcess terminates the process with the given pid.
func (c *SystemCollector) KillProcess(pid int32) error {
	p, err := process.NewProcess(pid)
	if err != nil {
		return fmt.Errorf("find process %d: %w", pid, err)
	}
	if err := p.Kill(); err != nil {
		return fmt.Errorf("kill process %d: %w", pid, err)
	}
	return nil
}
