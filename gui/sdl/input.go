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

package sdl

import (
	"github.com/jetsetilly/nkc68k/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// keycodes with this bit set do not represent a character
const scancodeMask = 1 << 30

// the name of the key as expected by the userinput package. printable keys
// are named by the character they produce on an unshifted keyboard
func keyName(sym sdl.Keycode) string {
	if (sym > 0x20 && sym < 0x7f) || (sym >= 0xa0 && sym&scancodeMask == 0) {
		return string(rune(sym))
	}
	return sdl.GetKeyName(sym)
}

func keyMod(mod uint16) userinput.KeyMod {
	m := userinput.KeyModNone
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= userinput.KeyModShift
	}
	if mod&sdl.KMOD_CAPS != 0 {
		m |= userinput.KeyModCaps
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= userinput.KeyModCtrl
	}
	if mod&sdl.KMOD_LALT != 0 {
		m |= userinput.KeyModAlt
	}
	if mod&sdl.KMOD_RALT != 0 {
		m |= userinput.KeyModAltGr
	}
	return m
}

// convert an SDL event to a userinput.Event. returns nil if the event is not
// of interest to the emulation
func (scr *SDL) convertEvent(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_CLOSE {
			return userinput.EventQuit{}
		}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    keyName(ev.Keysym.Sym),
			Mod:    keyMod(ev.Keysym.Mod),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}

	case *sdl.MouseMotionEvent:
		// the mouse is only connected to the GDP window
		id, _ := scr.gdp.window.GetID()
		if ev.WindowID != id {
			return nil
		}
		return userinput.EventMouseMotion{
			X: int(ev.X / scr.gdp.xmag),
			Y: int(ev.Y / scr.gdp.ymag),
		}

	case *sdl.MouseButtonEvent:
		id, _ := scr.gdp.window.GetID()
		if ev.WindowID != id {
			return nil
		}
		return userinput.EventMouseButton{
			Button: userinput.MouseButton(int(ev.Button) - 1),
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}

	case *sdl.JoyAxisEvent:
		port, ok := scr.joysticks[ev.Which]
		if !ok {
			return nil
		}
		return userinput.EventJoystickAxis{
			ID:    port,
			Axis:  int(ev.Axis),
			Value: int(ev.Value),
		}

	case *sdl.JoyButtonEvent:
		port, ok := scr.joysticks[ev.Which]
		if !ok {
			return nil
		}
		return userinput.EventJoystickButton{
			ID:     port,
			Button: int(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		}
	}

	return nil
}
