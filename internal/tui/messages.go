package tui

// copyResetMsg clears the copy feedback scheduled by the copy with the same seq.
type copyResetMsg struct {
	seq int
}
