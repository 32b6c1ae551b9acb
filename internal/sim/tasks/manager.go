package tasks

type State uint8

const (
	Pending State = iota
	InProgress
	Done
)

func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "InProgress"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Entry pairs a task with its lifecycle state.
type Entry struct {
	Task  Task
	State State
}

// Manager keeps tasks in insertion order; insertion order is the tie-break
// for next-task selection. There is no cancellation or removal.
type Manager struct {
	entries []Entry
}

func NewManager() *Manager {
	return &Manager{}
}

// Push appends a task in the Pending state.
func (m *Manager) Push(t Task) {
	m.entries = append(m.entries, Entry{Task: t, State: Pending})
}

func (m *Manager) AnyPending() bool {
	for _, e := range m.entries {
		if e.State == Pending {
			return true
		}
	}
	return false
}

// StartNext flips the first Pending entry to InProgress and returns a copy
// of its task. FIFO, no priorities.
func (m *Manager) StartNext() (Task, bool) {
	for i := range m.entries {
		if m.entries[i].State == Pending {
			m.entries[i].State = InProgress
			return m.entries[i].Task, true
		}
	}
	return Task{}, false
}

// Complete marks the first entry whose task equals t as Done. Matching is
// by value, so structurally identical duplicate tasks can mark an entry
// other than the one that actually ran; see DESIGN.md.
func (m *Manager) Complete(t Task) {
	for i := range m.entries {
		if m.entries[i].Task == t {
			m.entries[i].State = Done
			return
		}
	}
}

// Entries returns a snapshot of the queue for read-only display.
func (m *Manager) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
