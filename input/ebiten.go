package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Standard gamepad axis indices used by DeviceGamepadAxis sources when the
// pad exposes the standard layout.
const (
	PadAxisLeftX = iota
	PadAxisLeftY
	PadAxisRightX
	PadAxisRightY
)

var mouseButtons = map[int]ebiten.MouseButton{
	MouseLeft:   ebiten.MouseButtonLeft,
	MouseRight:  ebiten.MouseButtonRight,
	MouseMiddle: ebiten.MouseButtonMiddle,
}

// Backend polls ebiten device state into a sampler once per frame. Keyboard
// keys are published under ebiten's key code strings ("A", "Space",
// "ArrowLeft"). Gamepads are addressed by slot in connection order; a pad
// that vanishes reads neutral until it comes back.
type Backend struct {
	sampler *Sampler

	ids      []ebiten.GamepadID
	slots    int
	cursorX  int
	cursorY  int
	hasFocus bool
}

// NewBackend returns a backend feeding the given sampler.
func NewBackend(sampler *Sampler) *Backend {
	return &Backend{sampler: sampler}
}

// Poll captures the current device state into the sampler's back buffer.
// Call once per frame, before Manager.Tick.
func (b *Backend) Poll() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		b.sampler.SetKey(k.String(), ebiten.IsKeyPressed(k))
	}

	for idx, btn := range mouseButtons {
		b.sampler.SetMouseButton(idx, ebiten.IsMouseButtonPressed(btn))
	}

	cx, cy := ebiten.CursorPosition()
	if b.hasFocus {
		b.sampler.AddMouseDelta(float64(cx-b.cursorX), float64(cy-b.cursorY))
	}
	b.cursorX, b.cursorY = cx, cy
	b.hasFocus = true

	b.ids = ebiten.AppendGamepadIDs(b.ids[:0])
	for slot, id := range b.ids {
		b.sampler.SetPadConnected(slot, true)
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			b.pollStandard(slot, id)
		} else {
			b.pollLegacy(slot, id)
		}
	}
	// Stale slots from pads that disconnected this frame.
	for slot := len(b.ids); slot < b.slots; slot++ {
		b.sampler.SetPadConnected(slot, false)
	}
	b.slots = len(b.ids)
}

func (b *Backend) pollStandard(slot int, id ebiten.GamepadID) {
	b.sampler.SetPadAxis(slot, PadAxisLeftX, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
	b.sampler.SetPadAxis(slot, PadAxisLeftY, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
	b.sampler.SetPadAxis(slot, PadAxisRightX, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal))
	b.sampler.SetPadAxis(slot, PadAxisRightY, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical))

	for btn := ebiten.StandardGamepadButton(0); btn <= ebiten.StandardGamepadButtonMax; btn++ {
		b.sampler.SetPadButton(slot, int(btn), ebiten.IsStandardGamepadButtonPressed(id, btn))
	}
}

func (b *Backend) pollLegacy(slot int, id ebiten.GamepadID) {
	for a := 0; a < ebiten.GamepadAxisNum(id); a++ {
		b.sampler.SetPadAxis(slot, a, ebiten.GamepadAxis(id, a))
	}
	for n := 0; n < ebiten.GamepadButtonNum(id); n++ {
		b.sampler.SetPadButton(slot, n, ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(n)))
	}
}
