package input

import (
	"math"
	"sync"
)

// Vec2 is a 2D value resolved from an axis binding or a raw mouse delta.
type Vec2 struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// PadState holds one gamepad's raw state for a frame.
type PadState struct {
	Buttons map[int]bool
	Axes    map[int]float64
}

func newPadState() *PadState {
	return &PadState{
		Buttons: make(map[int]bool),
		Axes:    make(map[int]float64),
	}
}

func (p *PadState) clone() *PadState {
	c := newPadState()
	for k, v := range p.Buttons {
		c.Buttons[k] = v
	}
	for k, v := range p.Axes {
		c.Axes[k] = v
	}
	return c
}

// Snapshot is one frame's view of every raw device channel. A snapshot is
// pure state capture with no gameplay semantics; bindings are resolved
// against a current and a previous snapshot.
type Snapshot struct {
	Keys         map[string]bool
	MouseButtons map[int]bool
	// MouseDelta is the raw cursor movement in pixels for the frame.
	MouseDelta Vec2
	// MouseAxes are the delta-derived pseudo-axes, normalized to [-1, 1].
	MouseAxes [2]float64
	// Gamepads maps pad slots to pad state. Missing slots read neutral.
	Gamepads map[int]*PadState
}

// NewSnapshot returns an empty snapshot with every channel neutral.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Keys:         make(map[string]bool),
		MouseButtons: make(map[int]bool),
		Gamepads:     make(map[int]*PadState),
	}
}

// Pressed reports the boolean level of a button-like source. Unset sources
// and disconnected pad slots read false.
func (s *Snapshot) Pressed(src Source) bool {
	if s == nil {
		return false
	}
	switch src.Device {
	case DeviceKeyboard:
		return s.Keys[src.Key]
	case DeviceMouseButton:
		return s.MouseButtons[src.Index]
	case DeviceGamepadButton:
		if pad := s.Gamepads[src.Pad]; pad != nil {
			return pad.Buttons[src.Index]
		}
	}
	return false
}

// Axis returns the analog value of an axis source in [-1, 1]. Unset sources
// and disconnected pad slots read 0.
func (s *Snapshot) Axis(src Source) float64 {
	if s == nil {
		return 0
	}
	switch src.Device {
	case DeviceMouseAxis:
		if src.Index == MouseAxisX || src.Index == MouseAxisY {
			return s.MouseAxes[src.Index]
		}
	case DeviceGamepadAxis:
		if pad := s.Gamepads[src.Pad]; pad != nil {
			return pad.Axes[src.Index]
		}
	}
	return 0
}

// SetKey records a keyboard key level. Exposed so tests can assemble
// synthetic snapshots without a device backend.
func (s *Snapshot) SetKey(code string, down bool) {
	if down {
		s.Keys[code] = true
	} else {
		delete(s.Keys, code)
	}
}

// SetMouseButton records a mouse button level.
func (s *Snapshot) SetMouseButton(index int, down bool) {
	if down {
		s.MouseButtons[index] = true
	} else {
		delete(s.MouseButtons, index)
	}
}

// SetPadButton records a gamepad button level, creating the pad slot if
// needed.
func (s *Snapshot) SetPadButton(pad, button int, down bool) {
	p := s.pad(pad)
	if down {
		p.Buttons[button] = true
	} else {
		delete(p.Buttons, button)
	}
}

// SetPadAxis records a gamepad axis value, clamped to [-1, 1].
func (s *Snapshot) SetPadAxis(pad, axis int, value float64) {
	s.pad(pad).Axes[axis] = clamp(value, -1, 1)
}

func (s *Snapshot) pad(slot int) *PadState {
	p, ok := s.Gamepads[slot]
	if !ok {
		p = newPadState()
		s.Gamepads[slot] = p
	}
	return p
}

func (s *Snapshot) clone() *Snapshot {
	c := NewSnapshot()
	for k, v := range s.Keys {
		c.Keys[k] = v
	}
	for k, v := range s.MouseButtons {
		c.MouseButtons[k] = v
	}
	c.MouseDelta = s.MouseDelta
	c.MouseAxes = s.MouseAxes
	for slot, pad := range s.Gamepads {
		c.Gamepads[slot] = pad.clone()
	}
	return c
}

// mouseAxisRange is the cursor movement, in pixels per frame, that maps to
// full deflection of a mouse pseudo-axis.
const mouseAxisRange = 50.0

// Sampler double-buffers raw device state across frame boundaries. Device
// feeders (event callbacks or a polling backend) write only the back buffer;
// Swap at tick start publishes it as the current frame and retires the old
// current snapshot as the previous one. The mutex is the single swap barrier
// that lets feeders run on another goroutine without tearing the frame being
// resolved.
//
// Buttons are level state in the back buffer, with a sticky overlay so a
// press and release that both land inside one frame interval still register
// as pressed for that frame. Axes are last-value-wins; the mouse delta
// accumulates and resets at every swap.
type Sampler struct {
	mu     sync.Mutex
	back   *Snapshot
	sticky *Snapshot
	cur    *Snapshot
	prev   *Snapshot
}

// NewSampler returns a sampler with all buffers neutral.
func NewSampler() *Sampler {
	return &Sampler{
		back:   NewSnapshot(),
		sticky: NewSnapshot(),
		cur:    NewSnapshot(),
		prev:   NewSnapshot(),
	}
}

// SetKey records a keyboard key transition into the next frame.
func (s *Sampler) SetKey(code string, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.SetKey(code, down)
	if down {
		s.sticky.SetKey(code, true)
	}
}

// SetMouseButton records a mouse button transition into the next frame.
func (s *Sampler) SetMouseButton(index int, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.SetMouseButton(index, down)
	if down {
		s.sticky.SetMouseButton(index, true)
	}
}

// AddMouseDelta accumulates cursor movement for the next frame.
func (s *Sampler) AddMouseDelta(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.MouseDelta.X += dx
	s.back.MouseDelta.Y += dy
}

// SetPadButton records a gamepad button transition into the next frame.
func (s *Sampler) SetPadButton(pad, button int, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.SetPadButton(pad, button, down)
	if down {
		s.sticky.SetPadButton(pad, button, true)
	}
}

// SetPadAxis records a gamepad axis value into the next frame.
func (s *Sampler) SetPadAxis(pad, axis int, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.SetPadAxis(pad, axis, value)
}

// SetPadConnected marks a pad slot connected or disconnected. Disconnecting
// drops all of the slot's state so its sources read neutral; reconnection is
// picked up transparently on the next frame's writes.
func (s *Sampler) SetPadConnected(pad int, connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if connected {
		s.back.pad(pad)
		return
	}
	delete(s.back.Gamepads, pad)
	delete(s.sticky.Gamepads, pad)
}

// Swap publishes the back buffer as the current frame and returns the
// (current, previous) snapshot pair for the resolution pass. The returned
// snapshots are owned by the caller for the frame; feeders keep writing the
// back buffer.
func (s *Sampler) Swap() (cur, prev *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := s.back.clone()
	// Sub-frame presses survive as pressed for exactly this frame.
	for code := range s.sticky.Keys {
		frame.Keys[code] = true
	}
	for idx := range s.sticky.MouseButtons {
		frame.MouseButtons[idx] = true
	}
	for slot, pad := range s.sticky.Gamepads {
		for b := range pad.Buttons {
			frame.SetPadButton(slot, b, true)
		}
	}
	frame.MouseAxes[MouseAxisX] = clamp(frame.MouseDelta.X/mouseAxisRange, -1, 1)
	frame.MouseAxes[MouseAxisY] = clamp(frame.MouseDelta.Y/mouseAxisRange, -1, 1)

	s.prev = s.cur
	s.cur = frame
	s.sticky = NewSnapshot()
	s.back.MouseDelta = Vec2{}

	return s.cur, s.prev
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
