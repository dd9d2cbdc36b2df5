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

import (
	"github.com/jetsetilly/nkc68k/hardware/memory/bus"

	m68k "github.com/user-none/go-chip-m68k"
)

// the m68k package requires a bus with a Reset() function, which is called
// when the processor executes the RESET instruction. it clashes with the
// Reset() function of the Core interface so the adaptor is a separate type
type busAdaptor struct {
	mem   bus.CPUBus
	reset func()
}

func (b busAdaptor) Read(op m68k.Size, addr uint32) uint32 {
	switch op {
	case m68k.Byte:
		return uint32(b.mem.ReadByte(addr))
	case m68k.Word:
		return uint32(b.mem.ReadWord(addr))
	}
	return b.mem.ReadLong(addr)
}

func (b busAdaptor) Write(op m68k.Size, addr uint32, val uint32) {
	switch op {
	case m68k.Byte:
		b.mem.WriteByte(addr, uint8(val))
	case m68k.Word:
		b.mem.WriteWord(addr, uint16(val))
	default:
		b.mem.WriteLong(addr, val)
	}
}

func (b busAdaptor) Reset() {
	if b.reset != nil {
		b.reset()
	}
}

// M68K is an implementation of the Core interface using go-chip-m68k.
type M68K struct {
	cpu *m68k.CPU

	// the level of the interrupt line
	irq uint8

	// a rising edge to level 7 that has not yet been taken
	nmi bool
}

// NewM68K is the preferred method of initialisation for the M68K type. The
// reset function is called when the processor executes a RESET instruction
// and should pulse the reset line of every device. It can be nil.
//
// The processor is reset by this function so memory should be ready before it
// is called.
func NewM68K(mem bus.CPUBus, reset func()) *M68K {
	return &M68K{
		cpu: m68k.New(busAdaptor{mem: mem, reset: reset}),
	}
}

// Step implements the Core interface.
//
// go-chip-m68k holds a requested level until the interrupt mask allows it to
// be taken. A request is only made when the processor will take it at the
// start of this instruction.
func (mc *M68K) Step() int {
	if mc.nmi {
		mc.nmi = false
		mc.cpu.RequestInterrupt(7, nil)
	} else if mc.irq > 0 && mc.irq < 7 && mc.irq > mc.mask() {
		mc.cpu.RequestInterrupt(mc.irq, nil)
	}
	return mc.cpu.Step()
}

// the interrupt mask in the status register
func (mc *M68K) mask() uint8 {
	return uint8(mc.cpu.Registers().SR>>8) & 0x07
}

// Reset implements the Core interface.
func (mc *M68K) Reset() {
	mc.irq = 0
	mc.nmi = false
	mc.cpu.Reset()
}

// SetIRQ implements the Core interface. Levels 1 to 6 are taken for as long
// as the line is held above the interrupt mask. Level 7 is taken once for
// every rising edge. NKC devices all use auto-vectored interrupts.
func (mc *M68K) SetIRQ(level uint8) {
	level &= 0x07
	if level == 7 && mc.irq != 7 {
		mc.nmi = true
	}
	mc.irq = level
}

// PC implements the Core interface.
func (mc *M68K) PC() uint32 {
	return mc.cpu.Registers().PC
}

// Halted implements the Core interface.
func (mc *M68K) Halted() bool {
	return mc.cpu.Halted()
}

// Registers returns a copy of the processor registers.
func (mc *M68K) Registers() m68k.Registers {
	return mc.cpu.Registers()
}

// Cycles returns the number of cycles executed since the processor was
// created.
func (mc *M68K) Cycles() uint64 {
	return mc.cpu.Cycles()
}
