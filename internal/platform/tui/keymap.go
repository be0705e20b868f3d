package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoval/cellscope/internal/core"
)

// KeyMap defines the keyboard bindings. Bindings carry help text so the
// footer can be generated from them.
type KeyMap struct {
	Pause    key.Binding
	StepOnce key.Binding
	Clear    key.Binding
	Reseed   key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		StepOnce: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step once"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pan down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a core action. Returns ActionNone
// for unbound keys.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Pause):
		return core.ActionPause
	case key.Matches(msg, km.StepOnce):
		return core.ActionStepOnce
	case key.Matches(msg, km.Clear):
		return core.ActionClear
	case key.Matches(msg, km.Reseed):
		return core.ActionReseed
	case key.Matches(msg, km.PanLeft):
		return core.ActionPanLeft
	case key.Matches(msg, km.PanRight):
		return core.ActionPanRight
	case key.Matches(msg, km.PanUp):
		return core.ActionPanUp
	case key.Matches(msg, km.PanDown):
		return core.ActionPanDown
	case key.Matches(msg, km.ZoomIn):
		return core.ActionZoomIn
	case key.Matches(msg, km.ZoomOut):
		return core.ActionZoomOut
	}
	return core.ActionNone
}

// ShortHelp lists the bindings shown in the footer, in display order.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Pause, km.StepOnce, km.Reseed, km.Clear, km.ZoomIn, km.ZoomOut, km.Quit}
}
