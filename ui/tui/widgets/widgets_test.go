package widgets

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sysdash/internal/collector"
	"sysdash/ui/tui/core"
	"sysdash/ui/tui/geom"
)

func sampleSnapshot() *collector.Snapshot {
	return &collector.Snapshot{
		TakenAt: time.Unix(1000, 0),
		Processes: []collector.ProcessInfo{
			{PID: 10, Name: "idle", User: "root", CPUPercent: 0.1, MemPercent: 0.5},
			{PID: 20, Name: "burn", User: "me", CPUPercent: 95.0, MemPercent: 2.0},
			{PID: 30, Name: "calm", User: "me", CPUPercent: 5.0, MemPercent: 1.0},
		},
	}
}

func TestProcessTableSortsByCPUDescending(t *testing.T) {
	store := core.NewStore()
	out := core.NewQueue()
	w := NewProcessTable(store, out)
	w.SetBounds(geom.NewRect(0, 0, 40, 12))
	w.UpdateData(sampleSnapshot())

	ctx := &core.DrawContext{Area: geom.NewRect(0, 0, 40, 12), State: store}
	w.Draw(ctx)

	row, ok := w.table.RowAt(0)
	if !ok || row.Cells[procColName].Text != "burn" {
		t.Errorf("Expected hottest process first, got %+v", row)
	}
	row, _ = w.table.RowAt(2)
	if row.Cells[procColName].Text != "idle" {
		t.Errorf("Expected coolest process last, got %+v", row)
	}
}

func TestProcessTableActivateEmitsKillRequest(t *testing.T) {
	store := core.NewStore()
	out := core.NewQueue()
	w := NewProcessTable(store, out)
	bounds := geom.NewRect(0, 0, 40, 12)
	w.SetBounds(bounds)
	w.UpdateData(sampleSnapshot())

	// Draw once so the rows are sorted; row 0 is the CPU hog.
	w.Draw(&core.DrawContext{Area: bounds, State: store})

	// Body starts below header and gap, so row 0 sits at y=2.
	click := tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if status := w.HandleMouseEvent(click); status != core.NoRedraw {
		t.Fatalf("Expected NoRedraw from activate click, got %v", status)
	}

	msgs := out.Drain()
	if len(msgs) != 1 {
		t.Fatalf("Expected one message, got %d", len(msgs))
	}
	kill, ok := msgs[0].(KillRequestMsg)
	if !ok {
		t.Fatalf("Expected KillRequestMsg, got %#v", msgs[0])
	}
	if kill.PID != 20 || kill.Name != "burn" {
		t.Errorf("Expected kill request for burn (pid 20), got %s (pid %d)", kill.Name, kill.PID)
	}
}

func TestTableWidgetSelectionFallsThroughAtEdge(t *testing.T) {
	store := core.NewStore()
	out := core.NewQueue()
	w := NewDiskTable(store, out)
	w.UpdateData(&collector.Snapshot{Disks: []collector.DiskUsage{
		{Mount: "/", UsedPercent: 40},
		{Mount: "/home", UsedPercent: 80},
	}})
	w.Draw(&core.DrawContext{Area: geom.NewRect(0, 0, 40, 10), State: store})

	if got := w.HandleSelectionUp(); got != core.NotHandled {
		t.Errorf("Expected up at top row to fall through, got %v", got)
	}
	if got := w.HandleSelectionDown(); got != core.Handled {
		t.Errorf("Expected down to be consumed while rows remain, got %v", got)
	}
	if got := w.HandleSelectionDown(); got != core.NotHandled {
		t.Errorf("Expected down at last row to fall through, got %v", got)
	}
}

func TestCarouselRedirectsToActiveChild(t *testing.T) {
	c := NewCarousel()
	if st := c.SelectableType(); st.Kind != core.Unselectable {
		t.Errorf("Expected empty carousel to be unselectable, got %v", st.Kind)
	}

	c.AddChild(3, "Disks")
	c.AddChild(5, "Temperatures")

	st := c.SelectableType()
	if st.Kind != core.RedirectTo || st.Target != 3 {
		t.Errorf("Expected redirect to first child, got %+v", st)
	}

	c.Next()
	if c.Active() != 5 {
		t.Errorf("Expected second child active after Next, got %d", c.Active())
	}
	c.Next()
	if c.Active() != 3 {
		t.Errorf("Expected Next to wrap to first child, got %d", c.Active())
	}
	c.Prev()
	if c.Active() != 5 {
		t.Errorf("Expected Prev to wrap to last child, got %d", c.Active())
	}
}

func TestCarouselArrowClicks(t *testing.T) {
	c := NewCarousel()
	c.AddChild(1, "A")
	c.AddChild(2, "B")
	c.SetBounds(geom.NewRect(10, 0, 20, 1))

	right := tea.MouseMsg{X: 29, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if status := c.HandleMouseEvent(right); status != core.Redraw {
		t.Fatalf("Expected Redraw from right arrow, got %v", status)
	}
	if c.Active() != 2 {
		t.Errorf("Expected right arrow to advance, got child %d", c.Active())
	}

	left := tea.MouseMsg{X: 10, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if status := c.HandleMouseEvent(left); status != core.Redraw {
		t.Fatalf("Expected Redraw from left arrow, got %v", status)
	}
	if c.Active() != 1 {
		t.Errorf("Expected left arrow to go back, got child %d", c.Active())
	}

	center := tea.MouseMsg{X: 20, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if status := c.HandleMouseEvent(center); status != core.Ignored {
		t.Errorf("Expected center click to be ignored, got %v", status)
	}
}

func TestSeriesTrimsToRetention(t *testing.T) {
	s := newSeries(60 * time.Second)
	base := time.Unix(1000, 0)
	for i := 0; i < 100; i++ {
		s.push(base.Add(time.Duration(i)*time.Second), float64(i))
	}

	if len(s.points) != 61 {
		t.Errorf("Expected 61 points inside a 60s window, got %d", len(s.points))
	}
	if s.points[0].val != 39 {
		t.Errorf("Expected oldest surviving sample to be 39, got %v", s.points[0].val)
	}
	if got := s.max(); got != 99 {
		t.Errorf("Expected max 99, got %v", got)
	}
}

func TestBasicMemSpringSettles(t *testing.T) {
	w := NewBasicMem()
	w.UpdateData(&collector.Snapshot{Memory: collector.MemoryStats{UsedPercent: 50}})

	moving := true
	for i := 0; i < 600 && moving; i++ {
		moving = w.Animate()
	}
	if moving {
		t.Fatal("Expected spring to settle within 10 seconds of frames")
	}
	if diff := w.pos - 0.5; diff > 0.01 || diff < -0.01 {
		t.Errorf("Expected bar to settle near 0.5, got %v", w.pos)
	}
}

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}
	for _, c := range cases {
		if got := humanBytes(c.in); got != c.want {
			t.Errorf("Expected %s for %d, got %s", c.want, c.in, got)
		}
	}
}

func TestEmptyWidgetUnselectable(t *testing.T) {
	e := NewEmpty()
	if st := e.SelectableType(); st.Kind != core.Unselectable {
		t.Errorf("Expected Unselectable, got %v", st.Kind)
	}
	if e.Draw(&core.DrawContext{Area: geom.NewRect(0, 0, 10, 5)}) != "" {
		t.Error("Expected empty draw output")
	}
}
