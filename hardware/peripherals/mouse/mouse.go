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

// Package mouse implements the bus mouse interface. The interface counts the
// movement of the mouse in each of the four directions. The counters are
// latched into the readable registers on request.
//
// Movement is measured in the coordinates of the GDP64 screen so that the
// pointer on the emulated screen follows the pointer on the host screen.
package mouse

import (
	"fmt"

	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/gdp"
)

// Offsets of the registers from the base port.
const (
	offsetKey   = 3
	offsetDown  = 4
	offsetUp    = 5
	offsetRight = 6
	offsetLeft  = 7
)

// NumButtons is the number of buttons on the mouse.
const NumButtons = 3

// the bits of the key register cleared by each button
var buttonMask = [NumButtons]uint8{0x80, 0x20, 0x40}

type position struct {
	x int
	y int
}

// Mouse implements the bus.Device interface.
type Mouse struct {
	key   uint8
	down  uint8
	up    uint8
	right uint8
	left  uint8

	cntDown  int
	cntUp    int
	cntRight int
	cntLeft  int

	last position
}

// NewMouse is the preferred method of initialisation for the Mouse type.
func NewMouse() *Mouse {
	m := &Mouse{}
	m.Reset()
	return m
}

func (m *Mouse) String() string {
	return fmt.Sprintf("key=%#02x up=%d down=%d left=%d right=%d", m.key, m.up, m.down, m.left, m.right)
}

// Ports returns the list of ports used by the mouse interface.
func (m *Mouse) Ports() []addresses.Port {
	var p []addresses.Port
	for i := range 8 {
		p = append(p, addresses.MouseBase+addresses.Port(i))
	}
	return p
}

// Reset the mouse interface.
func (m *Mouse) Reset() {
	*m = Mouse{
		key:  0xff,
		last: position{x: gdp.Width / 2, y: gdp.Height / 2},
	}
}

// Read implements the bus.Device interface.
func (m *Mouse) Read(port uint8) uint8 {
	switch port - uint8(addresses.MouseBase) {
	case offsetKey:
		return m.key
	case offsetDown:
		return m.down
	case offsetUp:
		return m.up
	case offsetRight:
		return m.right
	case offsetLeft:
		return m.left
	}
	return 0
}

// Write implements the bus.Device interface.
func (m *Mouse) Write(port uint8, _ uint8) {
	switch port - uint8(addresses.MouseBase) {
	case offsetUp:
		m.up = uint8(m.cntUp)
		m.down = uint8(m.cntDown)
		m.left = uint8(m.cntLeft)
		m.right = uint8(m.cntRight)
	case offsetRight:
		m.cntUp = 0
		m.cntDown = 0
		m.cntLeft = 0
		m.cntRight = 0
	}
}

// Move the mouse to the position. The coordinates are those of the GDP64
// screen with the origin in the top left corner.
func (m *Mouse) Move(x int, y int) {
	p := position{x: x, y: gdp.Height - 1 - y}

	dx := p.x - m.last.x
	if dx < 0 {
		m.cntLeft -= dx
	} else {
		m.cntRight += dx
	}

	dy := p.y - m.last.y
	if dy < 0 {
		m.cntUp -= dy
	} else {
		m.cntDown += dy
	}

	m.last = p
}

// Button changes the state of a mouse button. Buttons are numbered from zero.
func (m *Mouse) Button(button int, down bool) {
	if button < 0 || button >= NumButtons {
		return
	}
	if down {
		m.key &^= buttonMask[button]
	} else {
		m.key |= buttonMask[button]
	}
}
