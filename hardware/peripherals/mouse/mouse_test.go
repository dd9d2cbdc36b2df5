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

package mouse_test

import (
	"testing"

	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/mouse"
	"github.com/jetsetilly/nkc68k/test"
)

var (
	key   = uint8(addresses.MouseKey)
	down  = uint8(addresses.MouseDown)
	up    = uint8(addresses.MouseUp)
	right = uint8(addresses.MouseRight)
	left  = uint8(addresses.MouseLeft)
)

func TestButtons(t *testing.T) {
	m := mouse.NewMouse()
	test.ExpectEquality(t, m.Read(key), 0xff)

	m.Button(0, true)
	test.ExpectEquality(t, m.Read(key), 0x7f)
	m.Button(1, true)
	test.ExpectEquality(t, m.Read(key), 0x5f)
	m.Button(2, true)
	test.ExpectEquality(t, m.Read(key), 0x1f)
	m.Button(3, true)
	test.ExpectEquality(t, m.Read(key), 0x1f)

	m.Button(0, false)
	m.Button(1, false)
	m.Button(2, false)
	test.ExpectEquality(t, m.Read(key), 0xff)
}

func TestMotion(t *testing.T) {
	m := mouse.NewMouse()

	// the starting position is the middle of the screen. the counters follow
	// the GDP coordinate system so moving the pointer up the host screen
	// increases the down counter
	m.Move(266, 117)
	m.Move(260, 117)

	// the counters are not visible until they have been latched
	test.ExpectEquality(t, m.Read(right), 0)
	m.Write(up, 0)
	test.ExpectEquality(t, m.Read(right), 10)
	test.ExpectEquality(t, m.Read(left), 6)
	test.ExpectEquality(t, m.Read(up), 0)
	test.ExpectEquality(t, m.Read(down), 10)

	// clearing the counters does not change the latched values
	m.Write(right, 0)
	test.ExpectEquality(t, m.Read(right), 10)
	m.Move(260, 127)
	m.Write(up, 0)
	test.ExpectEquality(t, m.Read(right), 0)
	test.ExpectEquality(t, m.Read(left), 0)
	test.ExpectEquality(t, m.Read(up), 10)
	test.ExpectEquality(t, m.Read(down), 0)

	m.Reset()
	m.Write(up, 0)
	test.ExpectEquality(t, m.Read(up), 0)
}
