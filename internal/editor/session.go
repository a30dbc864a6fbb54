// Package editor holds the interactive editing session: the gradient being
// edited plus the UI state around it.
package editor

import (
	"time"

	"github.com/alexisbeaulieu97/prism/internal/gradient"
)

// Theme selects the light or dark palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// CopyState reports the outcome of the most recent copy action.
type CopyState int

const (
	CopyIdle CopyState = iota
	CopyCopied
	CopyFailed
)

func (c CopyState) String() string {
	switch c {
	case CopyCopied:
		return "copied"
	case CopyFailed:
		return "failed"
	default:
		return "idle"
	}
}

// CopyFeedbackDelay is how long a copy outcome stays visible.
const CopyFeedbackDelay = 2 * time.Second

// Session is an immutable snapshot of the editor. Every method returns a new
// Session and leaves the receiver untouched.
type Session struct {
	State    gradient.State
	ActiveID string
	Theme    Theme

	copyState CopyState
	copyAt    time.Time
	copyErr   error
}

// New starts a session on state with its first stop active and the dark theme.
func New(state gradient.State) Session {
	s := Session{Theme: ThemeDark}
	return s.Replace(state)
}

// Active returns the stop currently being edited.
func (s Session) Active() (gradient.ColorStop, bool) {
	return s.State.Stop(s.ActiveID)
}

// Update applies fn to the gradient, keeping the active stop when it still exists.
func (s Session) Update(fn func(gradient.State) gradient.State) Session {
	s.State = fn(s.State.Clone())
	if s.State.IndexOf(s.ActiveID) < 0 {
		s.ActiveID = firstID(s.State)
	}
	return s
}

// AddStop inserts a stop and makes it active. A full gradient is left as is.
func (s Session) AddStop(position float64, color string) Session {
	state, id := gradient.AddColorStopWithID(s.State, position, color)
	if id == "" {
		return s
	}
	s.State = state
	s.ActiveID = id
	return s
}

// AddSuggestedStop adds a stop in the widest early gap, colored like its
// nearest neighbour.
func (s Session) AddSuggestedStop() Session {
	position := gradient.SuggestStopPosition(s.State)
	return s.AddStop(position, gradient.NearestStopColor(s.State, position))
}

// UpdateStop merges patch into the stop with the given id.
func (s Session) UpdateStop(id string, patch gradient.StopPatch) Session {
	s.State = gradient.UpdateColorStop(s.State, id, patch)
	return s
}

// UpdateActive merges patch into the active stop.
func (s Session) UpdateActive(patch gradient.StopPatch) Session {
	return s.UpdateStop(s.ActiveID, patch)
}

// RemoveStop drops a stop. Removing the active stop activates the first
// remaining one; gradients at the minimum size are left as is.
func (s Session) RemoveStop(id string) Session {
	s.State = gradient.RemoveColorStop(s.State, id)
	if s.State.IndexOf(s.ActiveID) < 0 {
		s.ActiveID = firstID(s.State)
	}
	return s
}

// Select activates the stop with the given id. Unknown ids are ignored.
func (s Session) Select(id string) Session {
	if s.State.IndexOf(id) >= 0 {
		s.ActiveID = id
	}
	return s
}

// SelectNext activates the following stop, wrapping to the first.
func (s Session) SelectNext() Session { return s.step(1) }

// SelectPrev activates the preceding stop, wrapping to the last.
func (s Session) SelectPrev() Session { return s.step(-1) }

func (s Session) step(delta int) Session {
	n := len(s.State.ColorStops)
	if n == 0 {
		return s
	}
	i := s.State.IndexOf(s.ActiveID)
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	s.ActiveID = s.State.ColorStops[i].ID
	return s
}

// Replace swaps in a new gradient, as when applying a preset, and activates
// its first stop.
func (s Session) Replace(state gradient.State) Session {
	s.State = state.Clone()
	s.ActiveID = firstID(s.State)
	return s
}

// Reset returns to the default gradient.
func (s Session) Reset() Session {
	return s.Replace(gradient.Default())
}

// ToggleTheme flips between the light and dark palettes.
func (s Session) ToggleTheme() Session {
	if s.Theme == ThemeLight {
		s.Theme = ThemeDark
	} else {
		s.Theme = ThemeLight
	}
	return s
}

// MarkCopied records a successful copy at now.
func (s Session) MarkCopied(now time.Time) Session {
	s.copyState = CopyCopied
	s.copyAt = now
	s.copyErr = nil
	return s
}

// MarkCopyFailed records a failed copy at now.
func (s Session) MarkCopyFailed(now time.Time, err error) Session {
	s.copyState = CopyFailed
	s.copyAt = now
	s.copyErr = err
	return s
}

// CopyStatus returns the copy outcome as seen at now. Outcomes older than
// CopyFeedbackDelay read as CopyIdle.
func (s Session) CopyStatus(now time.Time) CopyState {
	if s.copyState == CopyIdle || now.Sub(s.copyAt) >= CopyFeedbackDelay {
		return CopyIdle
	}
	return s.copyState
}

// CopyError returns the error behind the last failed copy, if any.
func (s Session) CopyError() error {
	return s.copyErr
}

// ClearCopyStatus forgets the last copy outcome.
func (s Session) ClearCopyStatus() Session {
	s.copyState = CopyIdle
	s.copyAt = time.Time{}
	s.copyErr = nil
	return s
}

func firstID(state gradient.State) string {
	if len(state.ColorStops) == 0 {
		return ""
	}
	return state.ColorStops[0].ID
}
