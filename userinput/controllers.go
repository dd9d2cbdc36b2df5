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

import (
	"github.com/jetsetilly/nkc68k/govern"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/ioe"
	"github.com/jetsetilly/nkc68k/logger"
)

// Function keys of the emulator.
const (
	KeyOverlay = "F1"
	KeyRewind  = "F2"
	KeyReset   = "F3"
	KeyTrace   = "F4"
)

// Controllers keeps track of user input state.
type Controllers struct {
	// Clipboard returns the text to paste when the Insert key is pressed. Can
	// be nil
	Clipboard func() (string, error)

	// the state of the emulation as requested by the user. the pause key
	// toggles between running and paused
	state govern.State

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers() *Controllers {
	return &Controllers{
		state: govern.Running,
	}
}

// State returns the state of the emulation requested by the user.
func (c *Controllers) State() govern.State {
	if c.Quit {
		return govern.Ending
	}
	return c.state
}

// the bits of the IOE inputs pressed by keys on the host keyboard
func joystickMask(ev EventKeyboard) uint8 {
	switch ev.Key {
	case KeyUp:
		return ioe.Up
	case KeyDown:
		return ioe.Down
	case KeyLeft:
		return ioe.Left
	case KeyRight:
		return ioe.Right
	case KeypadEnter:
		return ioe.Button
	}

	// with the Alt key the number keys control the input bits directly
	if ev.Mod&KeyModAlt == KeyModAlt && len(ev.Key) == 1 && ev.Key[0] >= '1' && ev.Key[0] <= '8' {
		return 0x01 << (ev.Key[0] - '1')
	}

	return 0
}

// returns true if the key was a function key of the emulator
func (c *Controllers) function(ev EventKeyboard, handle HandleInput) bool {
	switch ev.Key {
	case KeyOverlay, KeyRewind, KeyReset, KeyTrace, KeyPause, KeyInsert:
	default:
		return false
	}

	// function keys act on the key press only
	if !ev.Down || ev.Repeat {
		return true
	}

	switch ev.Key {
	case KeyPause:
		if c.state == govern.Paused {
			c.state = govern.Running
		} else {
			c.state = govern.Paused
		}
		return true
	case KeyInsert:
		if c.Clipboard == nil || handle.Keyboard == nil {
			return true
		}
		text, err := c.Clipboard()
		if err != nil {
			logger.Logf(logger.Allow, "userinput", "clipboard: %v", err)
			return true
		}
		if text != "" {
			handle.Keyboard.Paste(text)
		}
		return true
	}

	if handle.Functions == nil {
		return true
	}

	switch ev.Key {
	case KeyOverlay:
		handle.Functions.ToggleOverlay()
	case KeyRewind:
		// rewinding fails if there is no tape. there is nothing to tell the
		// user that the logger has not already been told
		_ = handle.Functions.RewindTape()
	case KeyReset:
		handle.Functions.Reset()
	case KeyTrace:
		logger.Logf(logger.Allow, "userinput", "trace: %v", handle.Functions.ToggleTrace())
	}

	return true
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) {
	c.LastKeyHandled = true

	if c.function(ev, handle) {
		return
	}

	// keys are connected to both the KEY card and the IOE card
	if mask := joystickMask(ev); mask != 0 && handle.Joysticks != nil {
		if ev.Down {
			handle.Joysticks.Press(mask)
		} else {
			handle.Joysticks.Release(mask)
		}
	}

	ascii, ok := ASCII(ev)
	if !ok {
		c.LastKeyHandled = false
		return
	}

	if handle.Keyboard == nil {
		return
	}

	if ev.Down {
		handle.Keyboard.Press(ascii)
	} else {
		handle.Keyboard.Release(ascii)
	}
}

func (c *Controllers) mouseButton(ev EventMouseButton, handle HandleInput) {
	if handle.Pointer == nil || ev.Button == MouseButtonNone {
		return
	}
	handle.Pointer.Button(int(ev.Button), ev.Down)
}

func (c *Controllers) mouseMotion(ev EventMouseMotion, handle HandleInput) {
	if handle.Pointer == nil {
		return
	}
	handle.Pointer.Move(ev.X, ev.Y)
}

// HandleUserInput deciphers the Event and forwards the input to the devices
// of the emulation.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev, handle)
	case EventChar:
		if handle.Keyboard != nil {
			handle.Keyboard.Type(string([]byte{ev.Char}))
			c.LastKeyHandled = true
		}
	case EventPaste:
		if handle.Keyboard != nil {
			handle.Keyboard.Paste(ev.Text)
		}
	case EventMouseButton:
		c.mouseButton(ev, handle)
	case EventMouseMotion:
		c.mouseMotion(ev, handle)
	case EventJoystickAxis:
		if handle.Joysticks != nil {
			handle.Joysticks.Axis(ev.ID, ev.Axis, ev.Value)
		}
	case EventJoystickButton:
		if handle.Joysticks != nil {
			handle.Joysticks.JoystickButton(ev.ID, ev.Button, ev.Down)
		}
	default:
	}
}

// Drain handles every event waiting in the channel without blocking and
// returns the state that the emulation should be in. Suitable for use as the
// continueCheck() function of the emulation's Run() function.
func (c *Controllers) Drain(events <-chan Event, handle HandleInput) (govern.State, error) {
	for {
		select {
		case ev := <-events:
			c.HandleUserInput(ev, handle)
			if c.Quit {
				return govern.Ending, nil
			}
		default:
			return c.State(), nil
		}
	}
}
