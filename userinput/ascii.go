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

// Names of non-printable keys.
const (
	KeyTab       = "Tab"
	KeyUp        = "Up"
	KeyDown      = "Down"
	KeyLeft      = "Left"
	KeyRight     = "Right"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyPageUp    = "PageUp"
	KeyPageDown  = "PageDown"
	KeyBackspace = "Backspace"
	KeyReturn    = "Return"
	KeyEscape    = "Escape"
	KeyDelete    = "Delete"
	KeyInsert    = "Insert"
	KeyPause     = "Pause"
	KeySpace     = "Space"

	KeypadEnter = "Keypad Enter"
)

// keys that produce the same value regardless of modifiers
var fixedKeys = map[string]uint8{
	KeyTab:       0x09,
	KeyUp:        0x05, // CTRL-E
	KeyDown:      0x18, // CTRL-X
	KeyRight:     0x04, // CTRL-D
	KeyLeft:      0x13, // CTRL-S
	KeyHome:      0x01,
	KeyEnd:       0x06,
	KeyPageUp:    0x12, // CTRL-R
	KeyPageDown:  0x03, // CTRL-C
	KeyBackspace: 0x08,
	KeySpace:     0x20,
	" ":          0x20,
	KeyReturn:    0x0d,
	KeyEscape:    0x1b,
	KeyDelete:    0x7f,
	"'":          0x27,
	"/":          0x2f,
	";":          0x3b,
	"=":          0x3b,
	"[":          0x5b,
	"\\":         0x5c,
	"]":          0x5d,
	"^":          0x5e,
	"`":          0x60,

	"Keypad 0":  0x30,
	"Keypad 1":  0x31,
	"Keypad 2":  0x32,
	"Keypad 3":  0x33,
	"Keypad 4":  0x34,
	"Keypad 5":  0x35,
	"Keypad 6":  0x36,
	"Keypad 7":  0x37,
	"Keypad 8":  0x38,
	"Keypad 9":  0x39,
	"Keypad .":  0x2c,
	"Keypad /":  0x2f,
	"Keypad *":  0x2a,
	"Keypad -":  0x2d,
	"Keypad +":  0x2b,
	KeypadEnter: 0x0d,
	"Keypad =":  0x3d,
}

// the value of a key when unshifted, shifted and with AltGr. a zero AltGr
// value means the key has no AltGr variant
type shiftedKey struct {
	lower uint8
	upper uint8
	altGr uint8
}

// keys that are affected by the shift and AltGr keys. the layout is that of
// a German keyboard
var shiftedKeys = map[string]shiftedKey{
	"#": {lower: 0x23, upper: 0x27},
	"+": {lower: 0x2b, upper: 0x2a, altGr: 0x7e},
	",": {lower: 0x2c, upper: 0x3b},
	"-": {lower: 0x2d, upper: 0x5f},
	".": {lower: 0x2e, upper: 0x3a},
	"<": {lower: 0x3c, upper: 0x3e, altGr: 0x7c},
	"0": {lower: 0x30, upper: 0x3d, altGr: 0x7d},
	"1": {lower: 0x31, upper: 0x21},
	"2": {lower: 0x32, upper: 0x22},
	"3": {lower: 0x33, upper: 0x40},
	"4": {lower: 0x34, upper: 0x24},
	"5": {lower: 0x35, upper: 0x25},
	"6": {lower: 0x36, upper: 0x26},
	"7": {lower: 0x37, upper: 0x2f, altGr: 0x7b},
	"8": {lower: 0x38, upper: 0x28, altGr: 0x5b},
	"9": {lower: 0x39, upper: 0x29, altGr: 0x5d},

	// the national characters are mapped to the ISO 646 DE code points
	"´": {lower: 0x27, upper: 0x60},
	"ß": {lower: 0x7e, upper: 0x3f},
	"ä": {lower: 0x7b, upper: 0x5b},
	"ö": {lower: 0x7c, upper: 0x5c},
	"ü": {lower: 0x7d, upper: 0x5d},
}

// ASCII returns the value presented by the KEY card for the keyboard event.
// The second return value is false if the key has no value, in which case
// the first return value is the KEY card's "no key" value.
//
// Keys pressed with the Alt modifier never have a value.
func ASCII(ev EventKeyboard) (uint8, bool) {
	const noKey = 0x80

	upper := ev.Mod&KeyModShift == KeyModShift
	if ev.Mod&KeyModCaps == KeyModCaps {
		upper = !upper
	}

	if ev.Mod&KeyModAlt == KeyModAlt {
		return noKey, false
	}

	if v, ok := fixedKeys[ev.Key]; ok {
		return v, true
	}

	if k, ok := shiftedKeys[ev.Key]; ok {
		switch {
		case upper:
			return k.upper, true
		case ev.Mod&KeyModAltGr == KeyModAltGr && k.altGr != 0:
			return k.altGr, true
		}
		return k.lower, true
	}

	// letters. the control key takes priority over shift
	if len(ev.Key) == 1 && ev.Key[0] >= 'a' && ev.Key[0] <= 'z' {
		v := ev.Key[0] - 'a' + 1
		switch {
		case ev.Mod&KeyModCtrl == KeyModCtrl:
			return v, true
		case upper:
			return v + 0x40, true
		}
		return v + 0x60, true
	}

	return noKey, false
}
