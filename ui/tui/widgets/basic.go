package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/collector"
	"sysdash/ui/tui/core"
	"sysdash/ui/tui/styles"
)

// BasicMem is the compact memory gauge. The bar eases toward the latest
// sample with a physics spring instead of jumping, so each animation frame
// nudges the displayed fraction toward the harvested one.
type BasicMem struct {
	core.BaseWidget
	spring   harmonica.Spring
	pos      float64
	velocity float64
	target   float64
	last     collector.MemoryStats
}

func NewBasicMem() *BasicMem {
	return &BasicMem{
		// Frequency 12.0 responds within a couple of frames; damping 0.9
		// keeps the bar from overshooting past the sample.
		spring: harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
	}
}

func (b *BasicMem) PrettyName() string { return "Memory" }

func (b *BasicMem) Expandable() bool { return false }

func (b *BasicMem) Height() core.LayoutRule { return core.Length(4) }

func (b *BasicMem) UpdateData(snap *collector.Snapshot) {
	b.last = snap.Memory
	b.target = snap.Memory.UsedPercent / 100
}

// Animate advances the spring one frame. Returns true while the bar is still
// visibly moving, so the caller knows whether to keep scheduling frames.
func (b *BasicMem) Animate() bool {
	b.pos, b.velocity = b.spring.Update(b.pos, b.velocity, b.target)
	return abs(b.pos-b.target) > 0.001 || abs(b.velocity) > 0.001
}

func (b *BasicMem) Draw(ctx *core.DrawContext) string {
	return drawCard(ctx, func(inner *core.DrawContext) string {
		width := inner.Area.Width
		if width < 1 {
			return ""
		}
		frac := b.pos
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}
		filled := int(frac * float64(width))
		bar := lipgloss.JoinHorizontal(lipgloss.Top,
			styles.GaugeFilled.Render(strings.Repeat("█", filled)),
			styles.GaugeEmpty.Render(strings.Repeat("░", width-filled)),
		)
		label := fmt.Sprintf("Mem %.1f%%  %s / %s",
			b.last.UsedPercent,
			humanBytes(b.last.UsedBytes),
			humanBytes(b.last.TotalBytes))
		return lipgloss.JoinVertical(lipgloss.Left, label, bar)
	})
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
