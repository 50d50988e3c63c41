package nav

import (
	"fyne.io/fyne/v2"
	"github.com/samber/do/v2"
)

// Entry is one live screen on the navigation stack: its resolved route, the
// DI scope its controllers live in, and the built content.
type Entry struct {
	Route   *Route
	Scope   *do.Scope
	Content fyne.CanvasObject
}

// Stack holds the live screens in navigation order. The bottom entry is the
// root screen, the top entry is the one on display.
type Stack struct {
	entries []*Entry
}

func NewStack() *Stack {
	return &Stack{entries: make([]*Entry, 0, 4)}
}

// Push adds an entry on top of the stack.
func (s *Stack) Push(e *Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the top entry, or nil when the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e
}

// Peek returns the top entry without removing it, or nil when empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

func (s *Stack) Len() int {
	return len(s.entries)
}
