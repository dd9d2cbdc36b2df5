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

// Package cpu is the boundary between the NKC and the 68000 processor. The
// emulation of the processor itself is provided by the go-chip-m68k package.
// The Core interface is all the rest of the emulation knows about the CPU,
// which means the processor can be replaced in tests by a simple scripted
// implementation.
//
// The M68K type adapts a bus.CPUBus to the bus interface required by
// go-chip-m68k. The interrupt line set with SetIRQ() is level sensitive for
// levels 1 to 6: the interrupt is taken before an instruction if the line is
// still above the interrupt mask. A line that is cleared before the mask is
// lowered is not taken. Level 7 is edge triggered and is taken once for each
// rise of the line, whatever the mask.
package cpu
