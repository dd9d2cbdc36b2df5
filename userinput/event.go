// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "github.com/jetsetilly/nkc68k/hardware/peripherals/ioe"

// KeyMod identifies the modifier keys held during a keyboard event. Values
// can be combined.
type KeyMod int

// KeyModNone indicates that no modifier key is held.
const KeyModNone KeyMod = 0

// List of valid key modifiers.
const (
	KeyModShift KeyMod = 1 << iota
	KeyModCaps
	KeyModCtrl
	KeyModAlt
	KeyModAltGr
)

// Event represents all the different type of events that can occur in the gui.
//
// Events are sent from the GUI goroutine to the emulation goroutine over a
// channel and are handled by Controllers.HandleUserInput().
type Event interface{}

// EventQuit is sent when the gui wants to quit.
type EventQuit struct{}

// EventKeyboard is sent on a keypress or release. The Key field is the
// character produced by the key without modifiers for printable keys (eg. "a",
// "ä" or "#") or the name of the key otherwise (eg. "Up" or "Keypad 5").
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// EventChar is sent by input sources that produce characters rather than
// keys, such as a terminal in raw mode. The value is an NKC ASCII code.
type EventChar struct {
	Char uint8
}

// EventPaste is sent when text should be typed into the emulation.
type EventPaste struct {
	Text string
}

// MouseButton identifies the mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota - 1
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is sent when the mouse moves. The coordinates are those of
// the GDP64 page with the origin in the top left corner.
type EventMouseMotion struct {
	X int
	Y int
}

// EventJoystickAxis is sent when the axis of a joystick moves. The ID is the
// IOE port the joystick is connected to.
type EventJoystickAxis struct {
	ID    ioe.PortID
	Axis  int
	Value int
}

// EventJoystickButton is sent when a joystick button is pressed or released.
type EventJoystickButton struct {
	ID     ioe.PortID
	Button int
	Down   bool
}
