package components

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"sysdash/ui/tui/core"
	"sysdash/ui/tui/geom"
)

// Below this table height the header gap is suppressed even when requested,
// so a cramped table never starves visible data rows for a blank line.
const tableGapHeightLimit = 7

// StyleSheet holds the lipgloss styles a table renders with.
type StyleSheet struct {
	Text         lipgloss.Style
	SelectedText lipgloss.Style
	Header       lipgloss.Style
}

// TextTable is a sortable, scrollable table for text data. The component
// value itself is cheap and carries no interaction state: scroll offset,
// highlight, and sort column are fetched from the registry by the table's
// Key at the start of every draw and event dispatch, so the component can be
// rebuilt freely while its state persists.
type TextTable struct {
	key          core.Key
	columns      []TextColumn
	rows         []DataRow
	showGap      bool
	showSelected bool
	sortable     bool
	initialSort  int
	initialDesc  bool

	sorted       bool
	sortedColumn int
	sortedDesc   bool

	onSelect        func(index int) core.Message
	onSelectedClick func(index int) core.Message
	styles          StyleSheet
}

// NewTextTable declares a table with the given key and columns. The key must
// be unique per logical table instance; tables constructed in a loop need a
// caller-supplied suffix.
func NewTextTable(key core.Key, columns []TextColumn) *TextTable {
	return &TextTable{
		key:          key,
		columns:      columns,
		showGap:      true,
		showSelected: true,
	}
}

// Columns builds Fill-constrained columns from names, for the common case.
func Columns(names ...string) []TextColumn {
	cols := make([]TextColumn, len(names))
	for i, name := range names {
		cols[i] = NewColumn(name)
	}
	return cols
}

// ShowGap controls the blank row between header and body. Even when enabled
// the gap is dropped if the table is too short.
func (t *TextTable) ShowGap(show bool) *TextTable {
	t.showGap = show
	return t
}

// ShowSelectedEntry controls highlighting of the selected row.
func (t *TextTable) ShowSelectedEntry(show bool) *TextTable {
	t.showSelected = show
	return t
}

// Sortable enables sorting, starting on column 0 ascending.
func (t *TextTable) Sortable(sortable bool) *TextTable {
	t.sortable = sortable
	return t
}

// SortColumn enables sorting and sets the initial sort column and direction
// used when the table's state record is first created.
func (t *TextTable) SortColumn(column int, descending bool) *TextTable {
	t.sortable = true
	t.initialSort = column
	t.initialDesc = descending
	return t
}

// OnSelect registers the message to emit when the selection changes via
// scrolling.
func (t *TextTable) OnSelect(fn func(index int) core.Message) *TextTable {
	t.onSelect = fn
	return t
}

// OnSelectedClick registers the message to emit when the already-selected
// row is clicked again.
func (t *TextTable) OnSelectedClick(fn func(index int) core.Message) *TextTable {
	t.onSelectedClick = fn
	return t
}

// Styles sets the table's style sheet.
func (t *TextTable) Styles(s StyleSheet) *TextTable {
	t.styles = s
	return t
}

// Key returns the table's registry key.
func (t *TextTable) Key() core.Key { return t.key }

// SetRows replaces the table's rows. The new rows are re-sorted against the
// persisted sort column on next use.
func (t *TextTable) SetRows(rows []DataRow) {
	t.rows = rows
	t.sorted = false
}

// Len returns the current row count.
func (t *TextTable) Len() int { return len(t.rows) }

// RowAt returns the row currently at logical index i, in display (sorted)
// order.
func (t *TextTable) RowAt(i int) (DataRow, bool) {
	if i < 0 || i >= len(t.rows) {
		return DataRow{}, false
	}
	return t.rows[i], true
}

// RegisterState marks the table's key as live in the registry. Call during
// tree rebuild so the following sweep keeps this table's state.
func (t *TextTable) RegisterState(store *core.Store) {
	t.state(store)
}

func (t *TextTable) state(store *core.Store) *TableState {
	return core.State(store, t.key, func() *TableState {
		return &TableState{SortColumn: t.initialSort, SortDescending: t.initialDesc}
	})
}

// Move shifts the highlighted row by delta rows (positive moves down),
// clamped to the row set. Returns Ignored when already at the edge, which
// lets a widget report NotHandled so focus can leave it.
func (t *TextTable) Move(store *core.Store, delta int) core.Status {
	state := t.state(store)
	state.SetNumItems(len(t.rows))
	if delta >= 0 {
		return state.MoveDown(delta)
	}
	return state.MoveUp(-delta)
}

// ensureSorted re-sorts the rows when they were replaced or the persisted
// sort target changed since the last sort.
func (t *TextTable) ensureSorted(state *TableState) {
	if !t.sortable {
		return
	}
	if t.sorted && t.sortedColumn == state.SortColumn && t.sortedDesc == state.SortDescending {
		return
	}
	t.sortRows(state.SortColumn, state.SortDescending)
	t.sorted = true
	t.sortedColumn = state.SortColumn
	t.sortedDesc = state.SortDescending
}

// sortRows stably sorts by the given column. A row missing a cell in that
// column sorts after every row that has one, regardless of direction, and
// two missing cells stay in their relative order.
func (t *TextTable) sortRows(column int, descending bool) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		a, aok := t.rows[i].Cell(column)
		b, bok := t.rows[j].Cell(column)
		switch {
		case aok && bok:
			c := a.Compare(b)
			if descending {
				return c > 0
			}
			return c < 0
		case aok:
			return true
		default:
			return false
		}
	})
}

// gapRows returns the number of gap rows (0 or 1) for the given height.
func (t *TextTable) gapRows(height int) int {
	if !t.showGap || (len(t.rows)+2 > height && height < tableGapHeightLimit) {
		return 0
	}
	return 1
}

// Draw renders the table into its area: one header row, an optional gap
// row, and only the visible slice of the body rows.
func (t *TextTable) Draw(ctx *core.DrawContext) string {
	area := ctx.Area
	if area.Width <= 0 || area.Height <= 0 {
		return ""
	}

	state := t.state(ctx.State)
	state.SetNumItems(len(t.rows))
	t.ensureSorted(state)

	gap := t.gapRows(area.Height)
	scrollable := area.Height - 1 - gap
	if scrollable < 0 {
		scrollable = 0
	}
	widths := ResolveColumnWidths(t.columns, area.Width)

	lines := make([]string, 0, area.Height)
	lines = append(lines, t.styles.Header.Render(t.renderHeader(state, widths)))
	if gap > 0 {
		lines = append(lines, "")
	}

	start := state.DisplayStart(scrollable)
	end := start + scrollable
	if end > len(t.rows) {
		end = len(t.rows)
	}
	for i := start; i < end; i++ {
		line := renderCells(t.rows[i].Cells, widths)
		if t.showSelected && ctx.Selected && i == state.CurrentIndex {
			line = t.styles.SelectedText.Render(line)
		} else {
			line = t.styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < area.Height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (t *TextTable) renderHeader(state *TableState, widths []int) string {
	var b strings.Builder
	for i, col := range t.columns {
		name := col.Name
		if t.sortable && i == state.SortColumn {
			if state.SortDescending {
				name += "▼"
			} else {
				name += "▲"
			}
		}
		b.WriteString(padCell(name, widths[i]))
	}
	return b.String()
}

func renderCells(cells []DataCell, widths []int) string {
	var b strings.Builder
	for i, w := range widths {
		text := ""
		if i < len(cells) {
			text = cells[i].Text
		}
		b.WriteString(padCell(text, w))
	}
	return b.String()
}

// padCell truncates or pads text to exactly width cells, leaving one cell of
// separation from the next column when it can.
func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	limit := width - 1
	if limit < 1 {
		limit = width
	}
	text = runewidth.Truncate(text, limit, "")
	return runewidth.FillRight(text, width)
}

// OnEvent handles an input event against the table's bounds, possibly
// mutating the persisted state and pushing at most one message to out.
func (t *TextTable) OnEvent(store *core.Store, bounds geom.Rect, msg tea.Msg, out *core.Queue) core.Status {
	switch ev := msg.(type) {
	case tea.KeyMsg:
		// Keyboard movement goes through Move; the table binds no keys of
		// its own.
		return core.Ignored
	case tea.MouseMsg:
		return t.onMouse(store, bounds, ev, out)
	default:
		return core.Ignored
	}
}

func (t *TextTable) onMouse(store *core.Store, bounds geom.Rect, ev tea.MouseMsg, out *core.Queue) core.Status {
	if !bounds.Contains(ev.X, ev.Y) {
		return core.Ignored
	}

	state := t.state(store)
	state.SetNumItems(len(t.rows))
	t.ensureSorted(state)

	switch {
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		return t.onLeftClick(state, bounds, ev, out)
	case ev.Button == tea.MouseButtonWheelDown:
		status := state.MoveDown(1)
		if status == core.Redraw && t.onSelect != nil {
			out.Push(t.onSelect(state.CurrentIndex))
		}
		return status
	case ev.Button == tea.MouseButtonWheelUp:
		status := state.MoveUp(1)
		if status == core.Redraw && t.onSelect != nil {
			out.Push(t.onSelect(state.CurrentIndex))
		}
		return status
	default:
		return core.Ignored
	}
}

func (t *TextTable) onLeftClick(state *TableState, bounds geom.Rect, ev tea.MouseMsg, out *core.Queue) core.Status {
	gap := t.gapRows(bounds.Height)
	y := ev.Y - bounds.Top()

	switch {
	case y == 0:
		if !t.sortable {
			return core.Ignored
		}
		column := t.columnAt(ev.X-bounds.Left(), bounds.Width)
		if column < 0 {
			return core.Ignored
		}
		// Clicking the active column toggles direction; clicking another
		// column switches to it ascending.
		if column == state.SortColumn {
			state.SortDescending = !state.SortDescending
		} else {
			state.SortColumn = column
			state.SortDescending = false
		}
		t.ensureSorted(state)
		return core.Redraw
	case y > gap:
		scrollable := bounds.Height - 1 - gap
		if scrollable < 0 {
			scrollable = 0
		}
		start := state.DisplayStart(scrollable)
		logical := start + (y - 1 - gap)
		if logical >= len(t.rows) {
			return core.Ignored
		}
		if logical == state.CurrentIndex && t.onSelectedClick != nil {
			out.Push(t.onSelectedClick(logical))
			return core.NoRedraw
		}
		return state.SelectLogical(logical)
	default:
		return core.Ignored
	}
}

// columnAt maps an x offset inside the table to a column index via the
// resolved widths, or -1 when the offset is past the last column.
func (t *TextTable) columnAt(x, totalWidth int) int {
	if x < 0 {
		return -1
	}
	widths := ResolveColumnWidths(t.columns, totalWidth)
	edge := 0
	for i, w := range widths {
		edge += w
		if x < edge {
			return i
		}
	}
	return -1
}
