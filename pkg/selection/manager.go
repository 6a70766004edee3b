package selection

import "sync"

// Manager tracks the confirmed selection set.
//
// Mutations go through Select, Toggle, and Clear. Each returns a single-shot
// channel that delivers the confirmed set exactly once and is then closed,
// mirroring hosts where selection is confirmed asynchronously: the caller
// applies highlighting when the confirmation arrives, while a concurrent full
// render reads Current. Both paths observe the same confirmed state, so
// highlight application converges regardless of which runs first.
type Manager struct {
	mu  sync.Mutex
	cur Set
}

// NewManager returns a manager with an empty confirmed set.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the confirmed selection set.
func (m *Manager) Current() Set {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// Select replaces the selection with the given identities.
func (m *Manager) Select(ids ...Identity) <-chan Set {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = NewSet(ids...)
	return m.confirm()
}

// Toggle adds id to the selection, or removes it if already a member.
// Toggling uses exact membership, not the Includes hierarchy: toggling a bar
// under a selected category adds the bar's own identity.
func (m *Manager) Toggle(id Identity) <-chan Set {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cur.Has(id) {
		m.cur = m.cur.Without(id)
	} else {
		m.cur = m.cur.With(id)
	}
	return m.confirm()
}

// Clear empties the selection.
func (m *Manager) Clear() <-chan Set {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = Set{}
	return m.confirm()
}

// confirm delivers the current set on a fresh single-shot channel.
// Callers hold m.mu.
func (m *Manager) confirm() <-chan Set {
	ch := make(chan Set, 1)
	ch <- m.cur
	close(ch)
	return ch
}
