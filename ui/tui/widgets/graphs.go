package widgets

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/collector"
	"sysdash/ui/tui/core"
	"sysdash/ui/tui/styles"
)

// timePoint is one sampled value on a graph's rolling time axis.
type timePoint struct {
	at  time.Time
	val float64
}

// series is a rolling window of samples, trimmed to the retention horizon on
// every push.
type series struct {
	points    []timePoint
	retention time.Duration
}

func newSeries(retention time.Duration) *series {
	return &series{retention: retention}
}

func (s *series) push(at time.Time, val float64) {
	s.points = append(s.points, timePoint{at: at, val: val})
	cutoff := at.Add(-s.retention)
	trim := 0
	for trim < len(s.points) && s.points[trim].at.Before(cutoff) {
		trim++
	}
	s.points = s.points[trim:]
}

func (s *series) max() float64 {
	m := 0.0
	for _, p := range s.points {
		if p.val > m {
			m = p.val
		}
	}
	return m
}

// drawSeries plots the series onto the chart, x measured in seconds before
// now so the newest sample sits at the right edge.
func drawSeries(chart *linechart.Model, s *series, now time.Time, span float64) {
	for i := 0; i+1 < len(s.points); i++ {
		a, b := s.points[i], s.points[i+1]
		chart.DrawBrailleLine(
			canvas.Float64Point{X: span - now.Sub(a.at).Seconds(), Y: a.val},
			canvas.Float64Point{X: span - now.Sub(b.at).Seconds(), Y: b.val},
		)
	}
}

// graphWidget holds the chart plumbing shared by the time-series widgets.
// The chart model is rebuilt whenever the drawable area changes size.
type graphWidget struct {
	core.BaseWidget
	name      string
	retention time.Duration

	chart     linechart.Model
	chartW    int
	chartH    int
	maxY      float64
	lastTaken time.Time
}

func (g *graphWidget) PrettyName() string { return g.name }

func (g *graphWidget) ensureChart(w, h int, maxY float64) {
	if w == g.chartW && h == g.chartH && maxY == g.maxY {
		g.chart.Clear()
		return
	}
	// width, height, minX, maxX, minY, maxY
	g.chart = linechart.New(w, h, 0, g.retention.Seconds(), 0, maxY)
	g.chartW, g.chartH, g.maxY = w, h, maxY
}

// renderChart draws the given series into a freshly cleared chart and frames
// it with the widget title inside the card border.
func (g *graphWidget) renderChart(ctx *core.DrawContext, title string, maxY float64, all ...*series) string {
	return drawCard(ctx, func(inner *core.DrawContext) string {
		chartH := inner.Area.Height - 1
		if chartH < 1 {
			chartH = 1
		}
		g.ensureChart(inner.Area.Width, chartH, maxY)
		span := g.retention.Seconds()
		for _, s := range all {
			drawSeries(&g.chart, s, g.lastTaken, span)
		}
		g.chart.DrawXYAxisAndLabel()
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render(title),
			g.chart.View(),
		)
	})
}

// CPUGraph plots total CPU utilization over the retention window.
type CPUGraph struct {
	graphWidget
	usage *series
	last  float64
}

func NewCPUGraph(retention time.Duration) *CPUGraph {
	return &CPUGraph{
		graphWidget: graphWidget{name: "CPU", retention: retention},
		usage:       newSeries(retention),
	}
}

func (g *CPUGraph) UpdateData(snap *collector.Snapshot) {
	g.lastTaken = snap.TakenAt
	g.last = snap.CPU.TotalPercent
	g.usage.push(snap.TakenAt, snap.CPU.TotalPercent)
}

func (g *CPUGraph) Draw(ctx *core.DrawContext) string {
	title := fmt.Sprintf("CPU %.1f%%", g.last)
	return g.renderChart(ctx, title, 100, g.usage)
}

// MemGraph plots physical and swap memory usage percentages.
type MemGraph struct {
	graphWidget
	mem  *series
	swap *series
	last collector.MemoryStats
}

func NewMemGraph(retention time.Duration) *MemGraph {
	return &MemGraph{
		graphWidget: graphWidget{name: "Memory", retention: retention},
		mem:         newSeries(retention),
		swap:        newSeries(retention),
	}
}

func (g *MemGraph) UpdateData(snap *collector.Snapshot) {
	g.lastTaken = snap.TakenAt
	g.last = snap.Memory
	g.mem.push(snap.TakenAt, snap.Memory.UsedPercent)
	g.swap.push(snap.TakenAt, snap.Memory.SwapUsedPercent)
}

func (g *MemGraph) Draw(ctx *core.DrawContext) string {
	title := fmt.Sprintf("Mem %.1f%%  Swp %.1f%%", g.last.UsedPercent, g.last.SwapUsedPercent)
	return g.renderChart(ctx, title, 100, g.mem, g.swap)
}

// NetGraph plots receive and send rates. Unlike the percentage graphs its y
// axis rescales to the largest rate still inside the window.
type NetGraph struct {
	graphWidget
	recv *series
	sent *series
	last collector.NetworkStats
}

func NewNetGraph(retention time.Duration) *NetGraph {
	return &NetGraph{
		graphWidget: graphWidget{name: "Network", retention: retention},
		recv:        newSeries(retention),
		sent:        newSeries(retention),
	}
}

func (g *NetGraph) UpdateData(snap *collector.Snapshot) {
	g.lastTaken = snap.TakenAt
	g.last = snap.Network
	g.recv.push(snap.TakenAt, snap.Network.RecvPerSec)
	g.sent.push(snap.TakenAt, snap.Network.SentPerSec)
}

func (g *NetGraph) Draw(ctx *core.DrawContext) string {
	maxY := g.recv.max()
	if m := g.sent.max(); m > maxY {
		maxY = m
	}
	// Keep a sane axis when the link is idle.
	if maxY < 1024 {
		maxY = 1024
	}
	title := fmt.Sprintf("RX %s/s  TX %s/s",
		humanBytes(uint64(g.last.RecvPerSec)), humanBytes(uint64(g.last.SentPerSec)))
	return g.renderChart(ctx, title, maxY, g.recv, g.sent)
}
