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

package terminal

import "github.com/jetsetilly/nkc68k/userinput"

// the key that ends the emulation. CTRL-]
const quitKey = 0x1d

const esc = 0x1b

// cursor and editing keys as sent by the host terminal after "ESC [". the
// values are those produced by the NKC keyboard
var csiFinal = map[byte]uint8{
	'A': 0x05,
	'B': 0x18,
	'C': 0x04,
	'D': 0x13,
	'H': 0x01,
	'F': 0x06,
}

// keys that are sent as "ESC [ n ~"
var csiTilde = map[string]uint8{
	"1": 0x01,
	"3": 0x7f,
	"4": 0x06,
	"5": 0x12,
	"6": 0x03,
	"7": 0x01,
	"8": 0x06,
}

// decode bytes read from the terminal. a terminal sends an escape sequence in
// a single write so sequences are not carried between calls. an incomplete
// sequence is passed through as it was received
func decode(b []byte) []userinput.Event {
	var ev []userinput.Event

	char := func(c uint8) {
		ev = append(ev, userinput.EventChar{Char: c})
	}

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch c {
		case quitKey:
			return append(ev, userinput.EventQuit{})
		case '\n':
			char(0x0d)
			continue
		case 0x7f:
			// the backspace key of most terminals
			char(0x08)
			continue
		case esc:
		default:
			char(c)
			continue
		}

		if i+1 >= len(b) || b[i+1] != '[' {
			char(esc)
			continue
		}

		// parameter bytes followed by the final byte
		j := i + 2
		for j < len(b) && b[j] >= 0x30 && b[j] <= 0x3f {
			j++
		}
		if j >= len(b) {
			for _, c := range b[i:] {
				char(c)
			}
			return ev
		}

		params := string(b[i+2 : j])
		final := b[j]
		i = j

		if final == '~' {
			if v, ok := csiTilde[params]; ok {
				char(v)
			}
			continue
		}

		// modifier parameters of cursor keys are ignored
		if v, ok := csiFinal[final]; ok {
			char(v)
		}
	}

	return ev
}
