// Package session tracks which menu-driven tabs are open and which one
// has focus.
//
// A Session is owned by the root model and mutated only from the Bubble
// Tea update loop, so it carries no locking.
package session

import "slices"

// Op names the transition that produced a Change.
type Op string

const (
	OpOpen     Op = "open"
	OpActivate Op = "activate"
	OpClose    Op = "close"
)

// Snapshot is a value copy of the session state handed to renderers.
type Snapshot struct {
	Open   []string
	Active string // empty when HasActive is false
	// HasActive distinguishes "no active tab" from a tab whose id is "".
	HasActive bool
}

// IsOpen reports whether id is in the open set.
func (s Snapshot) IsOpen(id string) bool {
	return slices.Contains(s.Open, id)
}

// Change describes one applied transition and the state after it.
type Change struct {
	Op    Op
	ID    string
	After Snapshot
}

// Session holds the ordered open-tab set and the active selection.
type Session struct {
	open      []string
	active    string
	hasActive bool
	observers []func(Change)
}

// New returns an empty session: no tabs, nothing active.
func New() *Session {
	return &Session{}
}

// Subscribe registers fn to be called after every state transition.
// No-op calls (closing or activating an id that is not open) do not notify.
func (s *Session) Subscribe(fn func(Change)) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

// OpenOrActivate appends id to the open set if it is not already there and
// makes it the active tab.
func (s *Session) OpenOrActivate(id string) {
	op := OpActivate
	if !slices.Contains(s.open, id) {
		s.open = append(s.open, id)
		op = OpOpen
	}
	s.active = id
	s.hasActive = true
	s.notify(op, id)
}

// Activate focuses id if it is open. Unknown ids are ignored.
func (s *Session) Activate(id string) {
	if !slices.Contains(s.open, id) {
		return
	}
	s.active = id
	s.hasActive = true
	s.notify(OpActivate, id)
}

// Close removes id from the open set. When id was active, focus moves to
// whichever tab is now last in the remaining order, not to the closed
// tab's neighbour.
func (s *Session) Close(id string) {
	idx := slices.Index(s.open, id)
	if idx < 0 {
		return
	}
	s.open = slices.Delete(s.open, idx, idx+1)
	if s.hasActive && s.active == id {
		if n := len(s.open); n > 0 {
			s.active = s.open[n-1]
		} else {
			s.active = ""
			s.hasActive = false
		}
	}
	s.notify(OpClose, id)
}

// CloseActive closes the active tab, if any.
func (s *Session) CloseActive() {
	if !s.hasActive {
		return
	}
	s.Close(s.active)
}

// Next activates the tab after the active one, wrapping to the first.
func (s *Session) Next() {
	s.cycle(1)
}

// Prev activates the tab before the active one, wrapping to the last.
func (s *Session) Prev() {
	s.cycle(-1)
}

func (s *Session) cycle(delta int) {
	if len(s.open) < 2 || !s.hasActive {
		return
	}
	idx := slices.Index(s.open, s.active)
	n := len(s.open)
	s.Activate(s.open[(idx+delta+n)%n])
}

// Active returns the active tab id and whether one exists.
func (s *Session) Active() (string, bool) {
	return s.active, s.hasActive
}

// Open returns a copy of the open tab ids in display order.
func (s *Session) Open() []string {
	return slices.Clone(s.open)
}

// Len returns the number of open tabs.
func (s *Session) Len() int {
	return len(s.open)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Open:      slices.Clone(s.open),
		Active:    s.active,
		HasActive: s.hasActive,
	}
}

func (s *Session) notify(op Op, id string) {
	if len(s.observers) == 0 {
		return
	}
	c := Change{Op: op, ID: id, After: s.Snapshot()}
	for _, fn := range s.observers {
		fn(c)
	}
}
