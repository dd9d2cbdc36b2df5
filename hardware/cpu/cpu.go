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

package cpu

// Core is the interface to the 68000 processor used by the rest of the
// emulation.
type Core interface {
	// Step executes a single instruction and returns the number of cycles
	// consumed
	Step() int

	// Reset the processor. the stack pointer and program counter are loaded
	// from the vectors at address zero
	Reset()

	// SetIRQ sets the level of the interrupt line. a level of zero means no
	// interrupt is requested
	SetIRQ(level uint8)

	// PC returns the current value of the program counter
	PC() uint32

	// Halted returns true if the processor has stopped after a double bus
	// fault. Step() does nothing while the processor is halted
	Halted() bool
}
