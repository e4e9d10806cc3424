package widgets

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"sysdash/internal/collector"
	"sysdash/ui/tui/components"
	"sysdash/ui/tui/core"
	"sysdash/ui/tui/geom"
	"sysdash/ui/tui/styles"
)

// tableWidget is the shared shape of every table-backed widget: a persistent
// widget value wrapping a cheap table component, with the table's state
// living in the registry.
type tableWidget struct {
	core.BaseWidget
	store *core.Store
	out   *core.Queue
	table *components.TextTable
	name  string
}

func (w *tableWidget) PrettyName() string { return w.name }

func (w *tableWidget) HandleMouseEvent(ev tea.MouseMsg) core.Status {
	return w.table.OnEvent(w.store, w.Bounds(), ev, w.out)
}

// Up/down movements are consumed while the highlight can still move; at the
// edges they fall through so focus can leave the table.
func (w *tableWidget) HandleSelectionUp() core.SelectionAction {
	if w.table.Move(w.store, -1) == core.Redraw {
		return core.Handled
	}
	return core.NotHandled
}

func (w *tableWidget) HandleSelectionDown() core.SelectionAction {
	if w.table.Move(w.store, 1) == core.Redraw {
		return core.Handled
	}
	return core.NotHandled
}

func (w *tableWidget) RegisterState(store *core.Store) {
	w.table.RegisterState(store)
}

func (w *tableWidget) Draw(ctx *core.DrawContext) string {
	return drawCard(ctx, func(inner *core.DrawContext) string {
		return w.table.Draw(inner)
	})
}

// drawCard renders a widget's bordered frame and delegates the interior to
// the body callback. The returned block fills ctx.Area exactly.
func drawCard(ctx *core.DrawContext, body func(inner *core.DrawContext) string) string {
	area := ctx.Area
	if area.Width < 2 || area.Height < 2 {
		return ""
	}
	inner := geom.NewRect(area.X+1, area.Y+1, area.Width-2, area.Height-2)
	innerCtx := &core.DrawContext{Area: inner, Selected: ctx.Selected, State: ctx.State}
	return styles.Card(ctx.Selected).
		Width(inner.Width).
		Height(inner.Height).
		Render(body(innerCtx))
}

// ProcessTable lists sampled processes, sortable by any column, with kill
// confirmation on activating the selected row.
type ProcessTable struct {
	tableWidget
}

const (
	procColName = iota
	procColPID
	procColUser
	procColCPU
	procColMem
)

func NewProcessTable(store *core.Store, out *core.Queue) *ProcessTable {
	w := &ProcessTable{tableWidget{store: store, out: out, name: "Processes"}}
	cols := []components.TextColumn{
		{Name: "Name", Constraint: components.Fill()},
		{Name: "PID", Constraint: components.Length(8)},
		{Name: "User", Constraint: components.MaxPercentage(20)},
		{Name: "CPU%", Constraint: components.Length(8)},
		{Name: "Mem%", Constraint: components.Length(8)},
	}
	w.table = components.NewTextTable("widget/processes", cols).
		SortColumn(procColCPU, true).
		OnSelect(func(i int) core.Message {
			return SelectionChangedMsg{Widget: w.name, Index: i}
		}).
		OnSelectedClick(w.killRequest).
		Styles(styles.Table())
	return w
}

func (w *ProcessTable) killRequest(i int) core.Message {
	row, ok := w.table.RowAt(i)
	if !ok || len(row.Cells) <= procColPID {
		return nil
	}
	return KillRequestMsg{
		PID:  int32(row.Cells[procColPID].Num),
		Name: row.Cells[procColName].Text,
	}
}

func (w *ProcessTable) UpdateData(snap *collector.Snapshot) {
	rows := make([]components.DataRow, 0, len(snap.Processes))
	for _, p := range snap.Processes {
		rows = append(rows, components.NewRow(
			components.TextCell(p.Name),
			components.NumberCell(strconv.Itoa(int(p.PID)), float64(p.PID)),
			components.TextCell(p.User),
			components.PercentCell(p.CPUPercent),
			components.PercentCell(p.MemPercent),
		))
	}
	w.table.SetRows(rows)
}

// DiskTable lists mounted filesystems sorted by usage.
type DiskTable struct {
	tableWidget
}

func NewDiskTable(store *core.Store, out *core.Queue) *DiskTable {
	w := &DiskTable{tableWidget{store: store, out: out, name: "Disks"}}
	cols := []components.TextColumn{
		{Name: "Mount", Constraint: components.MaxPercentage(35)},
		{Name: "Used", Constraint: components.Length(8)},
		{Name: "Free", Constraint: components.Length(10)},
		{Name: "Total", Constraint: components.Length(10)},
		{Name: "FS", Constraint: components.MaxLength(10)},
	}
	w.table = components.NewTextTable("widget/disks", cols).
		SortColumn(1, true).
		OnSelect(func(i int) core.Message {
			return SelectionChangedMsg{Widget: w.name, Index: i}
		}).
		Styles(styles.Table())
	return w
}

func (w *DiskTable) UpdateData(snap *collector.Snapshot) {
	rows := make([]components.DataRow, 0, len(snap.Disks))
	for _, d := range snap.Disks {
		rows = append(rows, components.NewRow(
			components.TextCell(d.Mount),
			components.PercentCell(d.UsedPercent),
			components.NumberCell(humanBytes(d.FreeBytes), float64(d.FreeBytes)),
			components.NumberCell(humanBytes(d.TotalBytes), float64(d.TotalBytes)),
			components.TextCell(d.Fstype),
		))
	}
	w.table.SetRows(rows)
}

// TempTable lists temperature sensors, hottest first.
type TempTable struct {
	tableWidget
}

func NewTempTable(store *core.Store, out *core.Queue) *TempTable {
	w := &TempTable{tableWidget{store: store, out: out, name: "Temperatures"}}
	cols := []components.TextColumn{
		{Name: "Sensor", Constraint: components.Fill()},
		{Name: "Temp", Constraint: components.Length(9)},
	}
	w.table = components.NewTextTable("widget/temps", cols).
		SortColumn(1, true).
		Styles(styles.Table())
	return w
}

func (w *TempTable) UpdateData(snap *collector.Snapshot) {
	rows := make([]components.DataRow, 0, len(snap.Temperatures))
	for _, t := range snap.Temperatures {
		rows = append(rows, components.NewRow(
			components.TextCell(t.Sensor),
			components.NumberCell(fmt.Sprintf("%.0f°C", t.Celsius), t.Celsius),
		))
	}
	w.table.SetRows(rows)
}

// BatteryTable lists batteries. Unsorted; hosts rarely have more than one.
type BatteryTable struct {
	tableWidget
}

func NewBatteryTable(store *core.Store, out *core.Queue) *BatteryTable {
	w := &BatteryTable{tableWidget{store: store, out: out, name: "Battery"}}
	cols := []components.TextColumn{
		{Name: "Battery", Constraint: components.Fill()},
		{Name: "Charge", Constraint: components.Length(9)},
		{Name: "Status", Constraint: components.MaxPercentage(40)},
	}
	w.table = components.NewTextTable("widget/batteries", cols).
		Styles(styles.Table())
	return w
}

func (w *BatteryTable) UpdateData(snap *collector.Snapshot) {
	rows := make([]components.DataRow, 0, len(snap.Batteries))
	for _, b := range snap.Batteries {
		rows = append(rows, components.NewRow(
			components.TextCell(fmt.Sprintf("BAT%d", b.ID)),
			components.PercentCell(b.ChargePercent),
			components.TextCell(b.Status),
		))
	}
	w.table.SetRows(rows)
}

// humanBytes renders a byte count with a binary unit suffix.
func humanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
