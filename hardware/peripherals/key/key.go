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

// Package key implements the KEY card. The card presents the ASCII code of
// the most recently pressed key with the strobe bit (bit 7) clear. Reading
// the DIP switch port sets the strobe bit again, meaning that the key has
// been consumed.
//
// Text can be pasted into the keyboard. Pasted text is presented one
// character at a time and takes priority over the real keyboard.
package key

import (
	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// Strobe is the bit in the data register that indicates that no key is
// waiting to be read.
const Strobe = 0x80

// Key implements the bus.Device interface.
type Key struct {
	env *environment.Environment

	data uint8
	dip  uint8

	paste []uint8
}

// NewKey is the preferred method of initialisation for the Key type.
func NewKey(env *environment.Environment) *Key {
	return &Key{env: env}
}

// Ports returns the list of ports used by the KEY card.
func (k *Key) Ports() []addresses.Port {
	return []addresses.Port{addresses.KeyData, addresses.KeyDIP}
}

// Reset the KEY card. Any text waiting to be pasted is discarded.
func (k *Key) Reset(cfg preferences.KeyConfig) {
	k.data = Strobe
	k.dip = cfg.DIP
	k.paste = k.paste[:0]
}

// Read implements the bus.Device interface.
func (k *Key) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.KeyData:
		if len(k.paste) > 0 {
			// a line feed would be seen as CTRL-J and is skipped
			if k.paste[0] == '\n' {
				k.paste = k.paste[1:]
				return Strobe
			}
			return k.paste[0]
		}
		return k.data
	case addresses.KeyDIP:
		// the strobe for pasted text is the next character
		if len(k.paste) > 0 {
			k.paste = k.paste[1:]
		}
		k.data = Strobe
		return k.dip
	}
	return 0
}

// Write implements the bus.Device interface.
func (k *Key) Write(port uint8, data uint8) {
	if addresses.Port(port) == addresses.KeyData {
		logger.Logf(k.env, "key", "output not supported (%#02x)", data)
	}
}

// Press a key with the ASCII value.
func (k *Key) Press(ascii uint8) {
	k.data = ascii
}

// Release a key. The strobe bit is only set if the key being released is the
// key that was most recently pressed and it has not yet been read.
func (k *Key) Release(ascii uint8) {
	if k.data == ascii {
		k.data = Strobe
	}
}

// Paste text into the keyboard. Any text still waiting to be pasted is
// replaced.
func (k *Key) Paste(text string) {
	k.paste = append(k.paste[:0], text...)
	logger.Logf(k.env.Debug(), "key", "pasting %d characters", len(k.paste))
}

// Pasting returns true if there is text waiting to be pasted.
func (k *Key) Pasting() bool {
	return len(k.paste) > 0
}

// Peek returns the value of the data register without side effects.
func (k *Key) Peek() uint8 {
	return k.data
}

// Type appends text to the text waiting to be pasted. Used by input sources
// that produce characters faster than the NKC can read them.
func (k *Key) Type(text string) {
	k.paste = append(k.paste, text...)
}
