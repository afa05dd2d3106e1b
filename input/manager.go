package input

import "sort"

// Manager owns the device sampler and the stack of enabled contexts, and
// serves gameplay's per-frame queries. All methods are called from the
// single simulation goroutine; only the Sampler's feeder methods may be
// called from elsewhere.
type Manager struct {
	sampler *Sampler

	stack []stackEntry
	seq   int

	// Per-frame caches, rebuilt by every resolve pass.
	resolved   map[string]State
	byContext  map[string]map[string]State
	mouseDelta Vec2
}

type stackEntry struct {
	ctx *Context
	// seq breaks priority ties: most recently enabled wins.
	seq int
}

// NewManager returns a manager with an empty stack and a fresh sampler.
func NewManager() *Manager {
	return &Manager{
		sampler:   NewSampler(),
		resolved:  make(map[string]State),
		byContext: make(map[string]map[string]State),
	}
}

// Sampler returns the device sampler backing this manager. Device feeders
// write into it between ticks.
func (m *Manager) Sampler() *Sampler {
	return m.sampler
}

// Enable pushes a context onto the stack. Enabling a context whose name is
// already enabled is a no-op that does not change its position. The change
// takes effect on the next Tick, never mid-pass.
func (m *Manager) Enable(ctx *Context) {
	if ctx == nil {
		return
	}
	for _, e := range m.stack {
		if e.ctx.Name == ctx.Name {
			return
		}
	}
	m.seq++
	m.stack = append(m.stack, stackEntry{ctx: ctx, seq: m.seq})
	sort.SliceStable(m.stack, func(i, j int) bool {
		if m.stack[i].ctx.Priority != m.stack[j].ctx.Priority {
			return m.stack[i].ctx.Priority > m.stack[j].ctx.Priority
		}
		return m.stack[i].seq > m.stack[j].seq
	})
}

// Disable removes a context from the stack by name. Disabling an absent
// context is a no-op.
func (m *Manager) Disable(name string) {
	for i, e := range m.stack {
		if e.ctx.Name == name {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// Enabled reports whether a context name is currently on the stack.
func (m *Manager) Enabled(name string) bool {
	for _, e := range m.stack {
		if e.ctx.Name == name {
			return true
		}
	}
	return false
}

// Tick swaps the device buffers and runs the resolution pass. Call once per
// simulation frame, after the device backend has fed the sampler.
func (m *Manager) Tick() {
	cur, prev := m.sampler.Swap()
	m.Resolve(cur, prev)
}

// Resolve runs the per-frame resolution pass against an explicit snapshot
// pair. Tick uses the sampler's buffers; tests feed synthetic snapshots.
//
// The stack is walked top to bottom (priority desc, enable order desc).
// Every enabled context resolves its actions; the facade keeps the first
// (highest) state per action name, shadowing lower same-named actions while
// their contexts still see their own values via ContextAction. A context
// with ConsumeInput stops the walk: nothing below it resolves this frame.
func (m *Manager) Resolve(cur, prev *Snapshot) {
	clear(m.resolved)
	for name := range m.byContext {
		clear(m.byContext[name])
	}
	m.mouseDelta = Vec2{}
	if cur != nil {
		m.mouseDelta = cur.MouseDelta
	}

	for _, e := range m.stack {
		states := m.byContext[e.ctx.Name]
		if states == nil {
			states = make(map[string]State, len(e.ctx.Actions))
			m.byContext[e.ctx.Name] = states
		}
		for i := range e.ctx.Actions {
			a := &e.ctx.Actions[i]
			st := a.resolve(cur, prev)
			states[a.Name] = st
			if _, shadowed := m.resolved[a.Name]; !shadowed {
				m.resolved[a.Name] = st
			}
		}
		if e.ctx.ConsumeInput {
			break
		}
	}
}

// GetAxis2D returns the resolved 2D value of the named action, or (0, 0)
// when no enabled context resolved it this frame.
func (m *Manager) GetAxis2D(name string) (x, y float64) {
	st := m.resolved[name]
	return st.Value.X, st.Value.Y
}

// GetScalar returns the resolved scalar value of the named action, or 0.
func (m *Manager) GetScalar(name string) float64 {
	return m.resolved[name].Value.X
}

// GetButton returns the level state of the named button action, or false.
func (m *Manager) GetButton(name string) bool {
	return m.resolved[name].Value.Pressed
}

// WasButtonPressed reports a false -> true transition of the named action
// this frame.
func (m *Manager) WasButtonPressed(name string) bool {
	return m.resolved[name].JustPressed
}

// WasButtonReleased reports a true -> false transition of the named action
// this frame.
func (m *Manager) WasButtonReleased(name string) bool {
	return m.resolved[name].JustReleased
}

// GetMouseDelta returns the frame's raw cursor movement in pixels. It
// bypasses the action and binding layer entirely, so no deadzone or
// sensitivity shaping applies; callers scale it themselves.
func (m *Manager) GetMouseDelta() (dx, dy float64) {
	return m.mouseDelta.X, m.mouseDelta.Y
}

// ContextAction returns a specific context's own resolved state for an
// action this frame, even when a higher-priority context shadows the name
// at the facade. It reports false for disabled contexts, contexts below a
// consuming context, and unknown action names.
func (m *Manager) ContextAction(context, action string) (State, bool) {
	states, ok := m.byContext[context]
	if !ok {
		return State{}, false
	}
	st, ok := states[action]
	return st, ok
}
