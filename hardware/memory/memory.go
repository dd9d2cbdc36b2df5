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

package memory

import (
	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/memory/bus"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

type port struct {
	read  func() uint8
	write func(uint8)
}

type wordPort struct {
	read  func() uint16
	write func(uint16)
}

// Memory is the monolithic representation of the NKC address space.
type Memory struct {
	env *environment.Environment

	// physical memory. ROM images other than the boot ROM are loaded directly
	// into this array at their configured address
	RAM []uint8

	// the boot ROM is only visible while the bank-boot latch is set
	BootROM []uint8

	// start of the general program RAM window
	ProgramRAM uint32

	latch  bus.Latch
	window bus.Window

	ports [256]port
	words [256]wordPort

	waitStates int
	waitCycles int

	// function code of the most recent CPU access. the memory doesn't use
	// the value for decoding, it is recorded for tracing only
	FunctionCode uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The port table is empty until devices are mapped with MapDevice(),
// MapPort() and MapWord().
func NewMemory(env *environment.Environment) *Memory {
	mem := &Memory{
		env:        env,
		RAM:        make([]uint8, addresses.MemtopPhysical+1),
		BootROM:    make([]uint8, addresses.BootROMSize),
		ProgramRAM: addresses.DefaultProgramRAM,
	}

	// the probe port is read by operating systems looking for the top of
	// memory. it is connected to nothing but mapping it stops it being logged
	mem.MapPort(addresses.Probe, func() uint8 { return 0 }, func(uint8) {})

	return mem
}

// Reset the memory's wait state accounting. The contents of RAM survive a
// reset.
func (mem *Memory) Reset(cfg preferences.TimingConfig) {
	mem.waitStates = cfg.WaitStates
	mem.waitCycles = 0
}

// MapDevice connects the device to each of the listed ports. Reads and writes
// to the port will be forwarded to the device with the port number as the
// first argument.
func (mem *Memory) MapDevice(dev bus.Device, ports ...addresses.Port) {
	for _, p := range ports {
		p := uint8(p)
		mem.ports[p] = port{
			read:  func() uint8 { return dev.Read(p) },
			write: func(data uint8) { dev.Write(p, data) },
		}
	}
}

// MapPort connects a port to a pair of functions. Either function can be nil,
// in which case reads return zero and writes are ignored.
func (mem *Memory) MapPort(p addresses.Port, read func() uint8, write func(uint8)) {
	if read == nil {
		read = func() uint8 { return 0 }
	}
	if write == nil {
		write = func(uint8) {}
	}
	mem.ports[p] = port{read: read, write: write}
}

// MapWord adds a word accessor to a port. Word accesses to the port will be
// handled in one transaction rather than being rejected. Either function can
// be nil.
func (mem *Memory) MapWord(p addresses.Port, read func() uint16, write func(uint16)) {
	mem.words[p] = wordPort{read: read, write: write}
}

// AttachLatch connects the bank-boot latch.
func (mem *Memory) AttachLatch(latch bus.Latch) {
	mem.latch = latch
}

// AttachWindow connects a memory mapped overlay device.
func (mem *Memory) AttachWindow(window bus.Window) {
	mem.window = window
}

// SetFunctionCode records the function code of the current CPU access.
func (mem *Memory) SetFunctionCode(fc uint8) {
	mem.FunctionCode = fc
}

// CollectWaitCycles returns the number of wait-state cycles accumulated since
// the previous call.
func (mem *Memory) CollectWaitCycles() int {
	c := mem.waitCycles
	mem.waitCycles = 0
	return c
}

func (mem *Memory) inWindow(address uint32) bool {
	return mem.window != nil && mem.window.InWindow(address)
}

func (mem *Memory) bootEnabled() bool {
	return mem.latch != nil && mem.latch.BootEnabled()
}

func isIO(address uint32) bool {
	return address >= addresses.IOOrigin
}

// isWritable returns true if the address is in an area of RAM that the CPU
// can write to.
func (mem *Memory) isWritable(address uint32) bool {
	if address <= addresses.MemtopRAM {
		return !(mem.bootEnabled() && address < addresses.BootShadow)
	}
	return address >= mem.ProgramRAM && address < mem.ProgramRAM+addresses.ProgramRAMSize
}

func (mem *Memory) readRAM(address uint32) uint8 {
	if address > addresses.MemtopPhysical {
		return 0xff
	}
	if mem.bootEnabled() && address <= addresses.MemtopBootROM {
		if address < uint32(len(mem.BootROM)) {
			return mem.BootROM[address]
		}
		return 0xff
	}
	return mem.RAM[address]
}

func (mem *Memory) writeRAM(address uint32, data uint8) {
	if mem.isWritable(address) {
		mem.RAM[address] = data
	}
}

func (mem *Memory) readPort(p uint8) uint8 {
	if mem.ports[p].read == nil {
		logger.Logf(mem.env.Debug(), "memory", "byte read from unmapped port %#06x", addresses.IOOrigin|uint32(p))
		return 0
	}
	return mem.ports[p].read()
}

func (mem *Memory) writePort(p uint8, data uint8) {
	if mem.ports[p].write == nil {
		logger.Logf(mem.env.Debug(), "memory", "byte write to unmapped port %#06x (%#02x)", addresses.IOOrigin|uint32(p), data)
		return
	}
	mem.ports[p].write(data)
}

func (mem *Memory) readByte(address uint32) uint8 {
	address &= addresses.IOMemtop
	if mem.inWindow(address) {
		return mem.window.ReadWindow(address)
	}
	if isIO(address) {
		return mem.readPort(uint8(address))
	}
	return mem.readRAM(address)
}

func (mem *Memory) writeByte(address uint32, data uint8) {
	address &= addresses.IOMemtop
	if mem.inWindow(address) {
		mem.window.WriteWindow(address, data)
		return
	}
	if isIO(address) {
		mem.writePort(uint8(address), data)
		return
	}
	mem.writeRAM(address, data)
}

// ReadByte implements the bus.CPUBus interface.
func (mem *Memory) ReadByte(address uint32) uint8 {
	mem.waitCycles += mem.waitStates
	return mem.readByte(address)
}

// ReadWord implements the bus.CPUBus interface.
func (mem *Memory) ReadWord(address uint32) uint16 {
	mem.waitCycles += 4 + 2*mem.waitStates

	address &= addresses.IOMemtop
	if isIO(address) && !mem.inWindow(address) {
		if w := mem.words[uint8(address)]; w.read != nil {
			return w.read()
		}
		logger.Logf(mem.env.Debug(), "memory", "word read from unmapped port %#06x", address)
		return 0
	}

	return uint16(mem.readByte(address))<<8 | uint16(mem.readByte(address+1))
}

// ReadLong implements the bus.CPUBus interface.
func (mem *Memory) ReadLong(address uint32) uint32 {
	mem.waitCycles += 8 + 4*mem.waitStates

	address &= addresses.IOMemtop
	if isIO(address) && !mem.inWindow(address) {
		logger.Logf(mem.env.Debug(), "memory", "long read from unmapped port %#06x", address)
		return 0
	}

	return uint32(mem.readByte(address))<<24 |
		uint32(mem.readByte(address+1))<<16 |
		uint32(mem.readByte(address+2))<<8 |
		uint32(mem.readByte(address+3))
}

// WriteByte implements the bus.CPUBus interface.
func (mem *Memory) WriteByte(address uint32, data uint8) {
	mem.waitCycles += mem.waitStates
	mem.writeByte(address, data)
}

// WriteWord implements the bus.CPUBus interface.
func (mem *Memory) WriteWord(address uint32, data uint16) {
	mem.waitCycles += 4 + 2*mem.waitStates

	address &= addresses.IOMemtop
	if isIO(address) && !mem.inWindow(address) {
		if w := mem.words[uint8(address)]; w.write != nil {
			w.write(data)
			return
		}
		logger.Logf(mem.env.Debug(), "memory", "word write to unmapped port %#06x (%#04x)", address, data)
		return
	}

	mem.writeByte(address, uint8(data>>8))
	mem.writeByte(address+1, uint8(data))
}

// WriteLong implements the bus.CPUBus interface.
func (mem *Memory) WriteLong(address uint32, data uint32) {
	mem.waitCycles += 8 + 4*mem.waitStates

	address &= addresses.IOMemtop
	if isIO(address) && !mem.inWindow(address) {
		logger.Logf(mem.env.Debug(), "memory", "long write to unmapped port %#06x (%#08x)", address, data)
		return
	}

	mem.writeByte(address, uint8(data>>24))
	mem.writeByte(address+1, uint8(data>>16))
	mem.writeByte(address+2, uint8(data>>8))
	mem.writeByte(address+3, uint8(data))
}

// Sentinel error patterns returned by the DebugBus functions.
const (
	PeekIO       = "memory: cannot peek I/O address %#06x"
	PokeIO       = "memory: cannot poke I/O address %#06x"
	PokeUnmapped = "memory: cannot poke unmapped address %#06x"
)

// Peek implements the bus.DebugBus interface. The I/O page cannot be peeked
// because reading a port can change the state of the device.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	address &= addresses.IOMemtop
	if mem.inWindow(address) {
		return mem.window.ReadWindow(address), nil
	}
	if isIO(address) {
		return 0, curated.Errorf(PeekIO, address)
	}
	return mem.readRAM(address), nil
}

// Poke implements the bus.DebugBus interface. Unlike the CPU bus, Poke() can
// write to any address in physical memory, including the write protected
// areas.
func (mem *Memory) Poke(address uint32, value uint8) error {
	address &= addresses.IOMemtop
	if mem.inWindow(address) {
		mem.window.WriteWindow(address, value)
		return nil
	}
	if isIO(address) {
		return curated.Errorf(PokeIO, address)
	}
	if address > addresses.MemtopPhysical {
		return curated.Errorf(PokeUnmapped, address)
	}
	mem.RAM[address] = value
	return nil
}
