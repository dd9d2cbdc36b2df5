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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Words and longs are big-endian. Every access through the CPUBus is
// subject to wait-state accounting.
type CPUBus interface {
	ReadByte(address uint32) uint8
	ReadWord(address uint32) uint16
	ReadLong(address uint32) uint32
	WriteByte(address uint32, data uint8)
	WriteWord(address uint32, data uint16)
	WriteLong(address uint32, data uint32)
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. Accesses through the DebugBus never add wait
// states and never have side effects on devices.
type DebugBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}

// Device is implemented by every peripheral that has registers in the I/O
// page. The port argument is the offset of the register from the start of
// the I/O page.
type Device interface {
	Read(port uint8) uint8
	Write(port uint8, data uint8)
}

// Window is implemented by memory mapped devices that can overlay part of
// the address space, such as the COL256 video RAM.
type Window interface {
	InWindow(address uint32) bool
	ReadWindow(address uint32) uint8
	WriteWindow(address uint32, data uint8)
}

// Latch is implemented by the bank-boot device. The boot ROM is mapped at
// address zero while the latch is set.
type Latch interface {
	BootEnabled() bool
}
