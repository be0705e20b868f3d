// Package tui provides the Bubble Tea integration for the simulator. It
// handles the terminal event loop, maps key and mouse input to core
// events, and presents the framebuffer as half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to drive one frame: poll the controller's tick gate,
// rerender, and schedule the next frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given rate. The simulation step cadence is gated separately inside the
// controller; frames just poll it.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
