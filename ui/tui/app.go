// Package tui wires the widget tree, layout grid, and harvest loop into a
// Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"sysdash/internal/collector"
	"sysdash/internal/config"
	"sysdash/internal/engine"
	"sysdash/internal/record"
	"sysdash/ui/tui/core"
	"sysdash/ui/tui/geom"
	"sysdash/ui/tui/styles"
	"sysdash/ui/tui/widgets"
)

// ProcessKiller terminates a process by pid after the user confirms.
type ProcessKiller interface {
	KillProcess(pid int32) error
}

// stateRegistrar is implemented by widgets whose interaction state lives in
// the registry and must be re-marked on every rebuild cycle.
type stateRegistrar interface {
	RegisterState(store *core.Store)
}

// animator is implemented by widgets that ease toward their data instead of
// jumping. Animate returns true while another frame is needed.
type animator interface {
	Animate() bool
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	provider collector.SnapshotProvider
	killer   ProcessKiller
	recorder *record.Recorder
	cfg      config.Config

	store  *core.Store
	out    *core.Queue
	tree   *core.Tree
	layout Layout

	spinner spinner.Model
	dialog  *killDialog
	results []engine.CheckResult

	err          error
	haveSnapshot bool
	quitting     bool
	width        int
	height       int
}

// Messages
type TickMsg time.Time
type HarvestMsg time.Time
type AnimateMsg time.Time
type SnapshotMsg struct {
	Snap *collector.Snapshot
	Err  error
}
type KillResultMsg struct {
	Name string
	Err  error
}

func InitialModel(provider collector.SnapshotProvider, killer ProcessKiller, recorder *record.Recorder, cfg config.Config) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Highlight)

	m := MainModel{
		provider: provider,
		killer:   killer,
		recorder: recorder,
		cfg:      cfg,
		store:    core.NewStore(),
		out:      core.NewQueue(),
		spinner:  s,
	}
	m.buildTree()
	return m
}

// buildTree constructs the widget set and the grid that places it. Node ids
// are positional, so the carousel children are added before the carousel
// itself wires redirects to them.
func (m *MainModel) buildTree() {
	m.tree = core.NewTree()

	cpu := m.tree.Add(widgets.NewCPUGraph(m.cfg.Retention))
	mem := m.tree.Add(widgets.NewMemGraph(m.cfg.Retention))
	net := m.tree.Add(widgets.NewNetGraph(m.cfg.Retention))

	pager := widgets.NewCarousel()
	disk := m.tree.Add(widgets.NewDiskTable(m.store, m.out))
	temp := m.tree.Add(widgets.NewTempTable(m.store, m.out))
	batt := m.tree.Add(widgets.NewBatteryTable(m.store, m.out))
	pager.AddChild(disk, "Disks")
	pager.AddChild(temp, "Temperatures")
	pager.AddChild(batt, "Battery")
	carousel := m.tree.Add(pager)

	gauge := m.tree.Add(widgets.NewBasicMem())
	filler := m.tree.Add(widgets.NewEmpty())
	procs := m.tree.Add(widgets.NewProcessTable(m.store, m.out))

	m.layout = Layout{Rows: []Row{
		{Height: core.Expand(1), Cells: []Cell{
			{ID: cpu, Width: core.Expand(1)},
			{ID: mem, Width: core.Expand(1)},
		}},
		{Height: core.Expand(1), Cells: []Cell{
			{ID: net, Width: core.Expand(1)},
			{ID: carousel, Width: core.Expand(1)},
		}},
		{Height: core.Length(4), Cells: []Cell{
			{ID: gauge, Width: core.Expand(1)},
			{ID: filler, Width: core.Expand(1)},
		}},
		{Height: core.Expand(1), Cells: []Cell{
			{ID: procs, Width: core.Expand(1)},
		}},
	}}

	if err := m.tree.ValidateRedirects(); err != nil {
		// A bad redirect is a construction bug, not a runtime condition.
		panic(err)
	}
	m.tree.Select(procs)
	m.registerStates()
}

// registerStates runs one mark-sweep cycle so registry entries belonging to
// widgets that no longer exist are dropped.
func (m *MainModel) registerStates() {
	m.store.BeginCycle()
	for _, w := range m.tree.Widgets() {
		if r, ok := w.(stateRegistrar); ok {
			r.RegisterState(m.store)
		}
	}
	m.store.Sweep()
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(m.cfg.TickRate),
		harvestCmd(0),
		animateCmd(),
	)
}

// Commands
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func harvestCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return HarvestMsg(time.Now()) }
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return HarvestMsg(t)
	})
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func fetchSnapshotCmd(p collector.SnapshotProvider) tea.Cmd {
	return func() tea.Msg {
		snap, err := p.Snapshot(context.Background())
		return SnapshotMsg{Snap: snap, Err: err}
	}
}

func recordCmd(r *record.Recorder, snap *collector.Snapshot) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		// Recording failures must never take the dashboard down.
		_ = r.Record(context.Background(), snap)
		return nil
	}
}

func killCmd(k ProcessKiller, req widgets.KillRequestMsg) tea.Cmd {
	return func() tea.Msg {
		return KillResultMsg{Name: req.Name, Err: k.KillProcess(req.PID)}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case TickMsg:
		return m, tickCmd(m.cfg.TickRate)

	case HarvestMsg:
		return m, tea.Batch(
			fetchSnapshotCmd(m.provider),
			harvestCmd(m.cfg.HarvestRate),
		)

	case SnapshotMsg:
		return m.handleSnapshotMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case KillResultMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("kill %s: %w", msg.Name, msg.Err)
		} else {
			m.err = nil
		}
		// Harvest right away so the process list reflects the kill.
		return m, harvestCmd(0)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		confirmed, closed := m.dialog.HandleKey(msg)
		return m.resolveDialog(confirmed, closed)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.tree.MoveSelection(core.DirLeft)
		return m, nil
	case "right", "l":
		m.tree.MoveSelection(core.DirRight)
		return m, nil
	case "up", "k":
		m.tree.MoveSelection(core.DirUp)
		return m, nil
	case "down", "j":
		m.tree.MoveSelection(core.DirDown)
		return m, nil
	}

	if w := m.tree.SelectedWidget(); w != nil {
		w.HandleKeyEvent(msg)
	}
	return m, m.drainOutbox()
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		confirmed, closed := m.dialog.HandleMouse(msg)
		return m.resolveDialog(confirmed, closed)
	}

	// Focus follows the click, then the widget under the pointer gets the
	// event.
	for id, w := range m.tree.Widgets() {
		if !w.BorderIntersects(msg) {
			continue
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tree.Select(core.NodeID(id))
		}
		status := w.HandleMouseEvent(msg)
		if status == core.Redraw {
			// Paging the carousel changes which child occupies its cell.
			m.applyLayout()
		}
		break
	}
	return m, m.drainOutbox()
}

// drainOutbox empties the widget message queue in emission order and turns
// each message into an application action.
func (m *MainModel) drainOutbox() tea.Cmd {
	for _, msg := range m.out.Drain() {
		switch msg := msg.(type) {
		case widgets.KillRequestMsg:
			m.dialog = newKillDialog(msg)
		case widgets.SelectionChangedMsg:
			// Selection state already lives in the registry.
		}
	}
	return nil
}

func (m *MainModel) resolveDialog(confirmed, closed bool) (tea.Model, tea.Cmd) {
	if !closed || m.dialog == nil {
		return m, nil
	}
	req := m.dialog.request
	m.dialog = nil
	if confirmed && m.killer != nil {
		return m, killCmd(m.killer, req)
	}
	return m, nil
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout()
	m.registerStates()
	return m, nil
}

// applyLayout recomputes widget bounds for the current terminal size,
// reserving the bottom line for the status footer.
func (m *MainModel) applyLayout() {
	gridHeight := m.height - 1
	if gridHeight < 0 {
		gridHeight = 0
	}
	m.layout.Apply(m.tree, geom.NewRect(0, 0, m.width, gridHeight))
}

func (m *MainModel) handleSnapshotMsg(msg SnapshotMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		return m, nil
	}
	m.err = nil
	m.haveSnapshot = true
	m.results = engine.Evaluate(msg.Snap)

	// Every widget ingests the snapshot before any of them is drawn.
	for _, w := range m.tree.Widgets() {
		w.UpdateData(msg.Snap)
	}

	return m, recordCmd(m.recorder, msg.Snap)
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	for _, w := range m.tree.Widgets() {
		if a, ok := w.(animator); ok {
			a.Animate()
		}
	}
	return m, animateCmd()
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !m.haveSnapshot {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s gathering first sample...", m.spinner.View()))
	}

	if m.dialog != nil {
		return zone.Scan(m.dialog.View(m.width, m.height))
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewGrid(), m.viewFooter())
}

func (m *MainModel) viewGrid() string {
	rows := make([]string, 0, len(m.layout.Rows))
	for _, row := range m.layout.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, m.drawNode(cell.ID))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *MainModel) drawNode(id core.NodeID) string {
	w := m.tree.Widget(id)
	if w == nil {
		return ""
	}

	if pager, ok := w.(carouselNode); ok {
		header := w.Draw(&core.DrawContext{Area: w.BorderBounds(), State: m.store})
		child := m.drawNode(pager.Active())
		return lipgloss.JoinVertical(lipgloss.Left, header, child)
	}

	ctx := &core.DrawContext{
		Area:     w.BorderBounds(),
		Selected: m.tree.Selected() == id,
		State:    m.store,
	}
	return w.Draw(ctx)
}

// viewFooter renders the one-line health summary: the worst check result
// plus any pending error.
func (m *MainModel) viewFooter() string {
	status := engine.StatusHealthy
	worst := ""
	for _, r := range m.results {
		if r.Status == engine.StatusCritical && status != engine.StatusCritical {
			status = engine.StatusCritical
			worst = r.Name
		} else if r.Status == engine.StatusWarning && status == engine.StatusHealthy {
			status = engine.StatusWarning
			worst = r.Name
		}
	}

	var line string
	switch {
	case m.err != nil:
		line = styles.CritStyle.Render(fmt.Sprintf("error: %v", m.err))
	case status == engine.StatusCritical:
		line = styles.CritStyle.Render(fmt.Sprintf("CRIT %s", worst))
	case status == engine.StatusWarning:
		line = styles.WarnStyle.Render(fmt.Sprintf("WARN %s", worst))
	default:
		line = styles.StatusStyle.Render("all systems nominal")
	}
	return lipgloss.NewStyle().Width(m.width).MaxHeight(1).Render(line)
}

func Start(provider collector.SnapshotProvider, killer ProcessKiller, recorder *record.Recorder, cfg config.Config) error {
	m := InitialModel(provider, killer, recorder, cfg)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
