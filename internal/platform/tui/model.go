package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dkoval/cellscope/internal/config"
	"github.com/dkoval/cellscope/internal/control"
	"github.com/dkoval/cellscope/internal/core"
	"github.com/dkoval/cellscope/internal/life"
	"github.com/dkoval/cellscope/internal/pattern"
	"github.com/dkoval/cellscope/internal/render"
	"github.com/dkoval/cellscope/internal/storage"
	"github.com/dkoval/cellscope/internal/view"
)

// hudHeight is the number of terminal rows reserved below the board view
// for the status line and the key help.
const hudHeight = 2

var (
	hudStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model driving one simulation session.
type Model struct {
	cfg  config.SimConfig
	pat  pattern.Pattern
	keys KeyMap

	grid     *life.Grid
	view     *view.View
	ctrl     *control.Controller
	renderer *render.Renderer
	fb       *core.Framebuffer

	store    *storage.Store
	start    time.Time
	peakPop  int
	quitting bool
}

// NewModel assembles grid, view, renderer, and controller from the config
// and seeds the grid with the given pattern.
func NewModel(cfg config.SimConfig, pat pattern.Pattern, store *storage.Store) Model {
	theme := themeFromConfig(cfg.Render.Theme)

	g := life.NewWithWorkers(cfg.Grid.Size, cfg.Render.Workers)
	g.Seed(pat.Offsets())
	v := view.New(cfg.Grid.Size)

	interval := time.Duration(cfg.Timing.TickIntervalMS) * time.Millisecond

	// The framebuffer starts at a nominal size; the first WindowSizeMsg
	// resizes it to the terminal.
	fb := core.NewFramebuffer(80, 48)

	return Model{
		cfg:      cfg,
		pat:      pat,
		keys:     DefaultKeyMap(),
		grid:     g,
		view:     v,
		ctrl:     control.New(g, v, pat.Offsets(), interval, fb.Width(), fb.Height()),
		renderer: render.New(theme, cfg.Render.Workers),
		fb:       fb,
		store:    store,
		start:    time.Now(),
		peakPop:  g.Population(),
	}
}

// themeFromConfig converts validated hex strings to a render theme.
// Config validation already rejected unparseable colors.
func themeFromConfig(t config.ThemeConfig) render.Theme {
	theme := render.DefaultTheme()
	if c, err := core.ParseHex(t.Border); err == nil {
		theme.Border = c
	}
	if c, err := core.ParseHex(t.Alive); err == nil {
		theme.Alive = c
	}
	if c, err := core.ParseHex(t.Dead); err == nil {
		theme.Dead = c
	}
	return theme
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.Timing.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to controller actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.ctrl.Handle(core.KeyPress(action))
	}
	return m, nil
}

// handleMouse maps terminal mouse events to pointer events. One terminal
// cell is one pixel wide and two pixels tall (half-block rendering), so
// the row coordinate is doubled.
func (m Model) handleMouse(msg tea.MouseMsg) {
	px := float64(msg.X)
	py := float64(msg.Y * 2)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.ctrl.Handle(core.PointerPress(core.ButtonPrimary, px, py))
		case tea.MouseButtonRight:
			m.ctrl.Handle(core.PointerPress(core.ButtonSecondary, px, py))
		case tea.MouseButtonWheelUp:
			m.ctrl.Handle(core.Scroll(px, py, +1))
		case tea.MouseButtonWheelDown:
			m.ctrl.Handle(core.Scroll(px, py, -1))
		}
	case tea.MouseActionRelease:
		m.ctrl.Handle(core.PointerRelease(core.ButtonPrimary, px, py))
	case tea.MouseActionMotion:
		m.ctrl.Handle(core.PointerMove(px, py))
	}
}

// handleResize fits the framebuffer to the terminal, keeping rows for the
// HUD. The view transform is unchanged: the world under the center stays
// put, the window just shows more or less of it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w := msg.Width
	h := (msg.Height - hudHeight) * 2
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	m.fb.Resize(w, h)
	m.ctrl.SetScreenSize(w, h)
	return m, nil
}

// handleFrame polls the simulation tick gate and schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.ctrl.Tick(now) {
		if pop := m.grid.Population(); pop > m.peakPop {
			m.peakPop = pop
		}
	}
	return m, frameCmd(m.cfg.Timing.FrameRate)
}

// saveSession records the session summary. Best-effort: the simulator
// works fine without a database.
func (m *Model) saveSession() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveSession(storage.SessionEntry{
		PatternID:       m.pat.ID,
		Generations:     m.grid.Generation(),
		PeakPopulation:  m.peakPop,
		FinalPopulation: m.grid.Population(),
		Duration:        int(time.Since(m.start).Seconds()),
	})
}

// View renders the board plus the HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.view, m.grid, m.fb)

	var sb strings.Builder
	sb.WriteString(RenderFrame(m.fb))
	sb.WriteRune('\n')
	sb.WriteString(hudStyle.Render(fmt.Sprintf(
		" gen %d  pop %d  zoom %.2f  [%s]",
		m.grid.Generation(), m.grid.Population(), m.view.Zoom, m.ctrl.RunState(),
	)))
	sb.WriteRune('\n')
	sb.WriteString(helpStyle.Render(" " + helpLine(m.keys)))
	return sb.String()
}

// helpLine formats the short help from the keymap bindings.
func helpLine(km KeyMap) string {
	parts := make([]string, 0, 8)
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "drag pan", "right-click toggle", "scroll zoom")
	return strings.Join(parts, " · ")
}

// Run starts the Bubble Tea program for one interactive session.
func Run(cfg config.SimConfig, pat pattern.Pattern, store *storage.Store) error {
	model := NewModel(cfg, pat, store)

	// Pre-size to the terminal so the first frame is already full size;
	// the WindowSizeMsg keeps it in sync afterwards.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > hudHeight {
		model.fb.Resize(w, (h-hudHeight)*2)
		model.ctrl.SetScreenSize(w, (h-hudHeight)*2)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drag, toggle, and wheel zoom
	)

	_, err := p.Run()
	return err
}
