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

// Package ioe implements the IOE card, a pair of 8-bit input/output ports.
// Up to two joysticks can be connected to the inputs, one on each port. The
// inputs of port A are read inverted.
//
// Joystick bits:
//
//	bit 0 right
//	bit 1 left
//	bit 2 up
//	bit 3 down
//	bit 4 to 7 buttons
package ioe

import (
	"fmt"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/logger"
)

// Input bits of the joystick.
const (
	Right  = 0x01
	Left   = 0x02
	Up     = 0x04
	Down   = 0x08
	Button = 0x10
)

// NumButtons is the number of joystick buttons that are connected.
const NumButtons = 4

// AxisThreshold is the absolute value of a joystick axis beyond which a
// direction is considered to be pressed.
const AxisThreshold = 10000

// PortID identifies one of the two ports.
type PortID int

// List of valid PortID values.
const (
	PortA PortID = iota
	PortB
	NumPorts
)

func (id PortID) String() string {
	switch id {
	case PortA:
		return "A"
	case PortB:
		return "B"
	}
	return "unknown"
}

// IOE implements the bus.Device interface.
type IOE struct {
	env *environment.Environment

	in  [NumPorts]uint8
	out [NumPorts]uint8
}

// NewIOE is the preferred method of initialisation for the IOE type.
func NewIOE(env *environment.Environment) *IOE {
	return &IOE{env: env}
}

func (ioe *IOE) String() string {
	return fmt.Sprintf("A in=%#02x out=%#02x B in=%#02x out=%#02x",
		ioe.in[PortA], ioe.out[PortA], ioe.in[PortB], ioe.out[PortB])
}

// Ports returns the list of ports used by the IOE card.
func (ioe *IOE) Ports() []addresses.Port {
	return []addresses.Port{addresses.IOEPortA, addresses.IOEPortB}
}

// Reset the IOE card. All inputs are released.
func (ioe *IOE) Reset() {
	ioe.in = [NumPorts]uint8{}
}

// Read implements the bus.Device interface.
func (ioe *IOE) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.IOEPortA:
		return ^ioe.in[PortA]
	case addresses.IOEPortB:
		return ioe.in[PortB]
	}
	return 0
}

// Write implements the bus.Device interface. The outputs are not connected to
// anything.
func (ioe *IOE) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.IOEPortA:
		ioe.out[PortA] = data
	case addresses.IOEPortB:
		ioe.out[PortB] = data
	default:
		return
	}
	logger.Logf(ioe.env.Debug(), "ioe", "port %s output: %#02x", addresses.Port(port), data)
}

// Output returns the last value written to the port.
func (ioe *IOE) Output(id PortID) uint8 {
	return ioe.out[id]
}

// Press sets the input bits on both ports. Keys on the host keyboard are
// connected to both ports.
func (ioe *IOE) Press(mask uint8) {
	ioe.in[PortA] |= mask
	ioe.in[PortB] |= mask
}

// Release clears the input bits on both ports.
func (ioe *IOE) Release(mask uint8) {
	ioe.in[PortA] &^= mask
	ioe.in[PortB] &^= mask
}

// Axis changes the direction bits of the joystick connected to the port. Axis
// zero is the horizontal axis and axis one is the vertical axis. Positive
// values are right and down.
func (ioe *IOE) Axis(id PortID, axis int, value int) {
	if id < 0 || id >= NumPorts {
		return
	}

	var pos, neg uint8
	switch axis {
	case 0:
		pos, neg = Right, Left
	case 1:
		pos, neg = Down, Up
	default:
		return
	}

	switch {
	case value > AxisThreshold:
		ioe.in[id] |= pos
	case value < -AxisThreshold:
		ioe.in[id] |= neg
	default:
		ioe.in[id] &^= pos | neg
	}
}

// JoystickButton changes the state of a button on the joystick connected to
// the port. Buttons beyond NumButtons are ignored.
func (ioe *IOE) JoystickButton(id PortID, button int, down bool) {
	if id < 0 || id >= NumPorts || button < 0 || button >= NumButtons {
		return
	}
	mask := uint8(Button << button)
	if down {
		ioe.in[id] |= mask
	} else {
		ioe.in[id] &^= mask
	}
	logger.Logf(ioe.env.Debug(), "ioe", "joystick %s button %d: %v", id, button, down)
}
