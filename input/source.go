package input

import "fmt"

// Device identifies which raw hardware channel a Source reads.
type Device uint8

const (
	deviceNone Device = iota
	DeviceKeyboard
	DeviceMouseButton
	DeviceMouseAxis
	DeviceGamepadButton
	DeviceGamepadAxis
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouseButton:
		return "mouse-button"
	case DeviceMouseAxis:
		return "mouse-axis"
	case DeviceGamepadButton:
		return "gamepad-button"
	case DeviceGamepadAxis:
		return "gamepad-axis"
	}
	return "none"
}

// Mouse axis indices for DeviceMouseAxis sources.
const (
	MouseAxisX = 0
	MouseAxisY = 1
)

// Standard mouse button indices.
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// Source references one raw input channel on one device. The zero value is
// an unset source, which always reads neutral.
type Source struct {
	Device Device
	// Key is the keyboard key code, e.g. "A", "Space", "ArrowLeft".
	Key string
	// Index is the mouse button, mouse axis, gamepad button, or gamepad
	// axis index, depending on Device.
	Index int
	// Pad is the gamepad slot for gamepad devices. Slot 0 is the first
	// connected pad.
	Pad int
}

// Key references a keyboard key by its key code string.
func Key(code string) Source {
	return Source{Device: DeviceKeyboard, Key: code}
}

// MouseButton references a mouse button by index (0 left, 1 right, 2 middle).
func MouseButton(index int) Source {
	return Source{Device: DeviceMouseButton, Index: index}
}

// MouseAxis references a normalized mouse-delta pseudo-axis.
func MouseAxis(index int) Source {
	return Source{Device: DeviceMouseAxis, Index: index}
}

// PadButton references a gamepad button on a pad slot.
func PadButton(pad, button int) Source {
	return Source{Device: DeviceGamepadButton, Pad: pad, Index: button}
}

// PadAxis references a gamepad analog axis on a pad slot.
func PadAxis(pad, axis int) Source {
	return Source{Device: DeviceGamepadAxis, Pad: pad, Index: axis}
}

func (s Source) String() string {
	switch s.Device {
	case DeviceKeyboard:
		return fmt.Sprintf("key %q", s.Key)
	case DeviceMouseButton:
		return fmt.Sprintf("mouse button %d", s.Index)
	case DeviceMouseAxis:
		return fmt.Sprintf("mouse axis %d", s.Index)
	case DeviceGamepadButton:
		return fmt.Sprintf("pad %d button %d", s.Pad, s.Index)
	case DeviceGamepadAxis:
		return fmt.Sprintf("pad %d axis %d", s.Pad, s.Index)
	}
	return "unset source"
}

// isSet reports whether the source references any channel at all.
func (s Source) isSet() bool {
	return s.Device != deviceNone
}

// isButton reports whether the source produces a boolean level.
func (s Source) isButton() bool {
	switch s.Device {
	case DeviceKeyboard, DeviceMouseButton, DeviceGamepadButton:
		return true
	}
	return false
}

// isAxis reports whether the source produces an analog value.
func (s Source) isAxis() bool {
	switch s.Device {
	case DeviceMouseAxis, DeviceGamepadAxis:
		return true
	}
	return false
}

func (s Source) validate() error {
	switch s.Device {
	case DeviceKeyboard:
		if s.Key == "" {
			return fmt.Errorf("input: keyboard source with empty key code")
		}
	case DeviceMouseButton, DeviceMouseAxis, DeviceGamepadButton, DeviceGamepadAxis:
		if s.Index < 0 {
			return fmt.Errorf("input: %s with negative index %d", s.Device, s.Index)
		}
		if (s.Device == DeviceGamepadButton || s.Device == DeviceGamepadAxis) && s.Pad < 0 {
			return fmt.Errorf("input: %s with negative pad slot %d", s.Device, s.Pad)
		}
	default:
		return fmt.Errorf("input: unset source")
	}
	return nil
}
