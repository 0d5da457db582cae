package app

import tea "github.com/charmbracelet/bubbletea"

// fatalErrorMsg is sent to the Bubble Tea program when a background subsystem
// encounters an unrecoverable error. The app should quit and show the error.
type fatalErrorMsg struct{ err error }

// refreshMsg means the host's cursor, scroll or buffer may have moved.
type refreshMsg struct{}

// docChangedMsg means the watched file changed on disk.
type docChangedMsg struct{ path string }

type colorsReadyMsg struct {
	colors map[string][2]string
	err    error
}

func fatalCmd(err error) tea.Cmd {
	return tea.Batch(tea.Printf("fatal: %v\n", err), tea.Quit)
}

// waitForEvent blocks on the app's event channel. It is re-issued after
// every event so background goroutines never need a *tea.Program.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}
