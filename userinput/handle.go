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

// Keyboard is the destination of keyboard input. Satisfied by the KEY card.
type Keyboard interface {
	Press(ascii uint8)
	Release(ascii uint8)
	Paste(text string)
	Type(text string)
}

// Joysticks is the destination of joystick input and of the keys that are
// wired to the joystick inputs. Satisfied by the IOE card.
type Joysticks interface {
	Press(mask uint8)
	Release(mask uint8)
	Axis(id ioe.PortID, axis int, value int)
	JoystickButton(id ioe.PortID, button int, down bool)
}

// Pointer is the destination of mouse input. Satisfied by the mouse
// interface.
type Pointer interface {
	Move(x int, y int)
	Button(button int, down bool)
}

// Functions are the functions of the emulator that are bound to the function
// keys.
type Functions interface {
	ToggleOverlay()
	RewindTape() error
	Reset()
	ToggleTrace() bool
}

// HandleInput collates the destinations of user input. Any field can be nil
// in which case input for that destination is dropped.
type HandleInput struct {
	Keyboard  Keyboard
	Joysticks Joysticks
	Pointer   Pointer
	Functions Functions
}
