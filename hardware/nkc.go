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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/cpu"
	"github.com/jetsetilly/nkc68k/hardware/memory"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/memory/bus"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/bankboot"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/cas"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/centronics"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/col256"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/flo2"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/fpgatimer"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/gdp"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/ioe"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/key"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/mouse"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/promer"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/serial"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/sound"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/uhr"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/hardware/timing"
	"github.com/jetsetilly/nkc68k/logger"
)

// CoreFactory creates the CPU. The reset function should be called when the
// CPU executes a RESET instruction.
type CoreFactory func(mem bus.CPUBus, reset func()) cpu.Core

// NewM68K is the default CoreFactory.
func NewM68K(mem bus.CPUBus, reset func()) cpu.Core {
	return cpu.NewM68K(mem, reset)
}

// NKC is the main container for the emulated components of the NKC.
type NKC struct {
	env *environment.Environment

	CPU cpu.Core
	Mem *memory.Memory

	IRQ      *timing.Interrupts
	Coord    *timing.Coordinator
	Throttle *timing.Throttle

	BankBoot   *bankboot.BankBoot
	FLO2       *flo2.FLO2
	GDP        *gdp.GDP
	Col256     *col256.Col256
	Sound      *sound.Sound
	Key        *key.Key
	IOE        *ioe.IOE
	Mouse      *mouse.Mouse
	CAS        *cas.CAS
	Centronics *centronics.Centronics
	Promer     *promer.Promer
	Uhr        *uhr.Uhr
	Timer      *fpgatimer.Timer
	Serial     *serial.Serial

	// log the program counter of every instruction
	Trace bool

	// the CPU has halted and the fact has been logged
	halted bool
}

// NewNKC creates a new NKC and everything associated with the hardware. The
// boot ROM and any additional ROMs named in the preferences are loaded and
// the machine is reset.
//
// An error is returned if a ROM cannot be loaded.
func NewNKC(env *environment.Environment, newCore CoreFactory) (*NKC, error) {
	if newCore == nil {
		newCore = NewM68K
	}

	nkc := &NKC{
		env: env,
		Mem: memory.NewMemory(env),
		IRQ: &timing.Interrupts{},
	}

	nkc.BankBoot = bankboot.NewBankBoot(env)
	nkc.FLO2 = flo2.NewFLO2(env)
	nkc.GDP = gdp.NewGDP(env, nil)
	nkc.Col256 = col256.NewCol256(env, nil)
	nkc.Sound = sound.NewSound(env)
	nkc.Key = key.NewKey(env)
	nkc.IOE = ioe.NewIOE(env)
	nkc.Mouse = mouse.NewMouse()
	nkc.CAS = cas.NewCAS(env)
	nkc.Centronics = centronics.NewCentronics(env)
	nkc.Promer = promer.NewPromer(env)
	nkc.Uhr = uhr.NewUhr(env)
	nkc.Timer = fpgatimer.NewTimer(env, nkc.IRQ)
	nkc.Serial = serial.NewSerial(env)

	nkc.Coord = timing.NewCoordinator(nkc.IRQ, nkc.GDP, nkc.service)
	nkc.Throttle = timing.NewThrottle(env)

	nkc.mapPorts()
	nkc.Mem.AttachLatch(nkc.BankBoot)
	nkc.Mem.AttachWindow(nkc.Col256)

	// the devices must be reset before the ROMs are loaded and the CPU is
	// created because the CPU fetches the reset vectors through the boot
	// latch
	nkc.resetDevices()

	err := nkc.Mem.LoadROMs(env.Prefs.Memory())
	if err != nil {
		nkc.End()
		return nil, curated.Errorf("nkc: %v", err)
	}

	nkc.CPU = newCore(nkc.Mem, nkc.pulseReset)
	nkc.Reset()

	return nkc, nil
}

// the static port table
func (nkc *NKC) mapPorts() {
	type device interface {
		bus.Device
		Ports() []addresses.Port
	}

	for _, d := range []device{
		nkc.BankBoot, nkc.FLO2, nkc.GDP, nkc.Col256, nkc.Sound, nkc.Key,
		nkc.IOE, nkc.Mouse, nkc.CAS, nkc.Centronics, nkc.Promer, nkc.Uhr,
		nkc.Timer, nkc.Serial,
	} {
		nkc.Mem.MapDevice(d, d.Ports()...)
	}

	// word accesses to the GDP that are combined into a single transaction
	nkc.Mem.MapWord(addresses.GDPXMSB, nkc.GDP.ReadX, nkc.GDP.WriteX)
	nkc.Mem.MapWord(addresses.GDPYMSB, nkc.GDP.ReadY, nkc.GDP.WriteY)
	nkc.Mem.MapWord(addresses.GDPCtrl2, nil, nkc.GDP.WriteCtrl2Csize)
}

func (nkc *NKC) String() string {
	return fmt.Sprintf("pc=%#06x irq=%d", nkc.CPU.PC(), nkc.IRQ.Level())
}

// Prefs returns the preferences used by the machine.
func (nkc *NKC) Prefs() *preferences.Preferences {
	return nkc.env.Prefs
}

// Reset emulates the reset switch. Every device is reset with the current
// preferences and the CPU fetches the reset vectors.
func (nkc *NKC) Reset() {
	tc := nkc.env.Prefs.Timing()

	nkc.Mem.Reset(tc)
	nkc.IRQ.Reset()
	nkc.resetDevices()
	nkc.Coord.Reset(tc)
	nkc.Throttle.Reset(tc)
	nkc.halted = false

	nkc.CPU.Reset()
	nkc.CPU.SetIRQ(0)
}

// called when the CPU executes the RESET instruction. the CPU itself is not
// reset
func (nkc *NKC) pulseReset() {
	logger.Logf(nkc.env.Debug(), "nkc", "reset line pulsed at %#06x", nkc.CPU.PC())
	nkc.resetDevices()
}

func (nkc *NKC) resetDevices() {
	p := nkc.env.Prefs
	mc := p.Memory()

	nkc.BankBoot.Reset(mc)
	nkc.Col256.Reset(mc)
	nkc.FLO2.Reset(p.Floppy())
	nkc.GDP.Reset(p.GDP())
	nkc.Sound.Reset()
	nkc.Key.Reset(p.Key())
	nkc.IOE.Reset()
	nkc.Mouse.Reset()
	nkc.CAS.Reset(p.Cassette())
	nkc.Centronics.Reset(p.Listing())
	nkc.Promer.Reset(p.Prom())
	nkc.Uhr.Reset()
	nkc.Timer.Reset()
	nkc.Serial.Reset(p.Serial())
}

// End closes every file and host device owned by the emulation.
func (nkc *NKC) End() {
	nkc.FLO2.End()
	nkc.CAS.End()
	nkc.Centronics.End()
	nkc.Promer.End()
	nkc.Serial.End()
	nkc.Sound.End()
}

// Step the emulation one CPU instruction. Returns the number of CPU cycles
// consumed by the instruction, not including wait states.
func (nkc *NKC) Step() int {
	if nkc.CPU.Halted() {
		if !nkc.halted {
			nkc.halted = true
			logger.Logf(nkc.env, "nkc", "CPU halted at %#06x", nkc.CPU.PC())
		}
		return 0
	}

	c := nkc.CPU.Step()
	nkc.Callback(nkc.CPU.PC())
	return c
}

// Callback is called after every instruction with the address of the next
// instruction. It drives the timing coordinator and presents the interrupt
// level to the CPU.
func (nkc *NKC) Callback(pc uint32) {
	if nkc.Trace {
		logger.Logf(nkc.env, "trace", "%#06x", pc)
	}

	nkc.Coord.Tick()

	// level 7 is edge triggered. a source that is cleared and asserted again
	// between two instructions must still present a new edge
	if nkc.IRQ.Retrigger() {
		nkc.CPU.SetIRQ(0)
	}
	nkc.CPU.SetIRQ(nkc.IRQ.Level())
}

// called by the coordinator every timing.ServicePeriod
func (nkc *NKC) service() {
	nkc.Col256.Present()
	if nkc.env.Prefs.Sound.Get().(bool) {
		nkc.Sound.Generate(timing.ServicePeriod)
	}
}

// Halted returns true if the CPU has stopped.
func (nkc *NKC) Halted() bool {
	return nkc.CPU.Halted()
}
