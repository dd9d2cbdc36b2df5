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

// Package fpgatimer implements the sixteen bit timer of the FPGA based NKC
// boards. The timer counts down in microseconds of emulated time. When the
// count reaches zero the overflow flag is set, an interrupt is requested if
// enabled, and the count is reloaded.
package fpgatimer

import (
	"fmt"
	"time"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/timing"
	"github.com/jetsetilly/nkc68k/logger"
)

// Bits in the control register.
const (
	CtrlRun       = 0x01
	CtrlWriteMode = 0x06
	CtrlOverflow  = 0x40
	CtrlIE        = 0x80
)

// Write modes select which registers are changed by a write to the low byte
// port.
const (
	WriteReload = iota
	WriteTimer
	WriteBoth
)

// Level is the interrupt level requested on overflow.
const Level = uint8(5)

// Timer implements the bus.Device interface.
type Timer struct {
	env *environment.Environment
	irq *timing.Interrupts

	ctrl uint8

	// the high byte is latched until the low byte is written
	temp uint8

	reload uint16
	count  uint16

	// emulated time not yet counted
	frac time.Duration
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(env *environment.Environment, irq *timing.Interrupts) *Timer {
	return &Timer{
		env: env,
		irq: irq,
	}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("ctrl=%#02x reload=%d count=%d", tmr.ctrl, tmr.reload, tmr.count)
}

// Ports returns the list of ports used by the timer.
func (tmr *Timer) Ports() []addresses.Port {
	return []addresses.Port{addresses.TimerCtrl, addresses.TimerHigh, addresses.TimerLow}
}

// Reset stops the timer.
func (tmr *Timer) Reset() {
	tmr.ctrl = 0
	tmr.temp = 0
	tmr.reload = 0
	tmr.count = 0
	tmr.frac = 0
	tmr.irq.Clear(timing.SourceTimer)
}

// Read implements the bus.Device interface.
func (tmr *Timer) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.TimerCtrl:
		return tmr.ctrl
	case addresses.TimerHigh:
		return uint8(tmr.count >> 8)
	case addresses.TimerLow:
		return uint8(tmr.count)
	}
	return 0
}

// Write implements the bus.Device interface.
func (tmr *Timer) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.TimerCtrl:
		tmr.ctrl = data
		if tmr.ctrl&CtrlRun == 0 {
			tmr.frac = 0
		}

		// the interrupt is acknowledged by clearing the overflow flag or by
		// disabling the interrupt
		if tmr.ctrl&CtrlOverflow == 0 || tmr.ctrl&CtrlIE == 0 {
			tmr.irq.Clear(timing.SourceTimer)
		}

	case addresses.TimerHigh:
		tmr.temp = data

	case addresses.TimerLow:
		v := uint16(tmr.temp)<<8 | uint16(data)
		mode := (tmr.ctrl & CtrlWriteMode) >> 1
		if mode == WriteReload || mode == WriteBoth {
			tmr.reload = v
			tmr.frac = 0
			logger.Logf(tmr.env.Debug(), "fpgatimer", "reload: %dus", v)
		}
		if mode == WriteTimer || mode == WriteBoth {
			tmr.count = v
		}
	}
}

// Step advances the timer by the duration of emulated time. A reload value of
// zero stops the timer.
func (tmr *Timer) Step(d time.Duration) {
	if tmr.ctrl&CtrlRun == 0 || tmr.reload == 0 {
		return
	}

	tmr.frac += d
	us := int(tmr.frac / time.Microsecond)
	tmr.frac -= time.Duration(us) * time.Microsecond

	for us > 0 {
		if tmr.count == 0 {
			tmr.count = tmr.reload
		}
		if us < int(tmr.count) {
			tmr.count -= uint16(us)
			return
		}
		us -= int(tmr.count)
		tmr.count = 0
		tmr.overflow()
	}
}

func (tmr *Timer) overflow() {
	tmr.ctrl |= CtrlOverflow
	if tmr.ctrl&CtrlIE == CtrlIE {
		tmr.irq.Assert(timing.SourceTimer, Level)
	}
}
