package input

import "sync"

// Action represents a logical game action, not a physical key or button.
type Action int

const (
	ActionPlace Action = iota
	ActionRemove
	ActionSelect1
	ActionSelect2
	ActionSelect3
	ActionToggleLock
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// SelectActions lists the hotbar selection actions in slot order.
var SelectActions = [...]Action{ActionSelect1, ActionSelect2, ActionSelect3}

// Manager maps named device events to logical actions and tracks per-frame
// edge state. The input device reports discrete events by name
// ("place", "remove", "select-1".."select-n", "toggle-lock", "quit");
// multiple names may map to the same action.
type Manager struct {
	mu sync.RWMutex

	nameToActions map[string][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager creates a Manager with the default event bindings.
func NewManager() *Manager {
	m := &Manager{nameToActions: make(map[string][]Action)}

	m.Bind("place", ActionPlace)
	m.Bind("remove", ActionRemove)
	m.Bind("select-1", ActionSelect1)
	m.Bind("select-2", ActionSelect2)
	m.Bind("select-3", ActionSelect3)
	m.Bind("toggle-lock", ActionToggleLock)
	m.Bind("quit", ActionQuit)

	return m
}

// Bind maps a named device event to a logical action.
func (m *Manager) Bind(name string, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	m.nameToActions[name] = append(m.nameToActions[name], action)
}

// Unbind removes all action bindings for a named event.
func (m *Manager) Unbind(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.nameToActions, name)
}

// HandleEvent processes one named device event and updates edge state.
// Unbound names are ignored.
func (m *Manager) HandleEvent(name string, pressed bool) {
	m.mu.RLock()
	actions, exists := m.nameToActions[name]
	m.mu.RUnlock()

	if !exists {
		return
	}

	m.mu.Lock()
	for _, act := range actions {
		if pressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = pressed
	}
	m.mu.Unlock()
}

// PostUpdate resets edge flags. Call at the end of each frame, after all
// input checks are done.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true while the action is held down.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed returns true only in the frame the action was pressed.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased returns true only in the frame the action was released.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
