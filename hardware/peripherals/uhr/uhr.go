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

// Package uhr implements the UHR real time clock card. The card is a serial
// clock chip driven by three bits of a single port: enable, clock and data.
//
// The time presented by the clock is the host time plus an offset. Setting
// the clock changes the offset only. The offset is lost on reset.
//
// A transfer begins when the enable bit is raised. Four bits are then
// received, three address bits and the mode bit, followed by seven BCD
// values of eight bits each. In read mode the values are shifted out least
// significant bit first in the order hour, minute, day, month, year,
// weekday and second. In write mode they are shifted in most significant bit
// first in the same order.
package uhr

import (
	"fmt"
	"time"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/logger"
)

// Bits of the control port.
const (
	Data   = 0x01
	Clock  = 0x02
	Enable = 0x04
)

// Transfer modes.
const (
	modeUnknown = -1
	modeWrite   = 0
	modeRead    = 1
)

// the number of bits in the address and mode header
const headerBits = 4

// Fields of the clock in transfer order.
const (
	FieldHour = iota
	FieldMinute
	FieldDay
	FieldMonth
	FieldYear
	FieldWeekday
	FieldSecond
	NumFields
)

// ToBCD converts the value to binary coded decimal. Only the two least
// significant decimal digits are kept.
func ToBCD(v int) uint8 {
	v %= 100
	return uint8(v/10)<<4 | uint8(v%10)
}

// FromBCD converts a binary coded decimal value.
func FromBCD(v uint8) int {
	return int(v>>4)*10 + int(v&0x0f)
}

// Uhr implements the bus.Device interface.
type Uhr struct {
	env *environment.Environment

	enable    bool
	clockHigh bool
	mode      int
	addr      uint8

	// remaining bits in the current transfer
	bits int

	fields  [NumFields]uint8
	shift   uint8
	receive uint8
	set     [NumFields]int

	diff time.Duration
	now  func() time.Time
}

// NewUhr is the preferred method of initialisation for the Uhr type.
func NewUhr(env *environment.Environment) *Uhr {
	return &Uhr{
		env:  env,
		now:  time.Now,
		mode: modeUnknown,
	}
}

func (uhr *Uhr) String() string {
	return fmt.Sprintf("%s (diff %v)", uhr.Now().Format(time.DateTime), uhr.diff)
}

// Ports returns the list of ports used by the clock card.
func (uhr *Uhr) Ports() []addresses.Port {
	return []addresses.Port{addresses.UhrData}
}

// Reset disables the clock chip and forgets any time that has been set.
func (uhr *Uhr) Reset() {
	uhr.enable = false
	uhr.clockHigh = false
	uhr.mode = modeUnknown
	uhr.bits = 0
	uhr.diff = 0
}

// Now returns the time as presented by the clock.
func (uhr *Uhr) Now() time.Time {
	return uhr.now().Add(uhr.diff)
}

// Read implements the bus.Device interface. Every read shifts out a single
// bit of the current value.
func (uhr *Uhr) Read(_ uint8) uint8 {
	if uhr.bits <= 0 {
		logger.Logf(uhr.env.Debug(), "uhr", "read outside of transfer")
		return 0
	}

	if uhr.bits%8 == 0 {
		uhr.shift = uhr.fields[NumFields-uhr.bits/8]
	}
	uhr.bits--

	b := uhr.shift & 0x01
	uhr.shift = uhr.shift>>1 | uhr.shift<<7
	return b
}

// Write implements the bus.Device interface.
func (uhr *Uhr) Write(_ uint8, data uint8) {
	enable := data&Enable == Enable
	clock := data&Clock == Clock

	// the data line is inverted
	var bit uint8
	if data&Data == 0 {
		bit = 1
	}

	if enable && !uhr.enable {
		uhr.latch()
		uhr.enable = true
		uhr.addr = 0
		uhr.bits = headerBits
		return
	}

	if !enable && uhr.enable {
		uhr.enable = false
		uhr.mode = modeUnknown
		return
	}

	// data is processed on the falling edge of the clock and whenever the
	// clock is written low without a preceding rising edge
	if clock && !uhr.clockHigh {
		uhr.clockHigh = true
		return
	}
	if !clock {
		uhr.clockHigh = false
	}

	if uhr.bits <= 0 || !uhr.enable || uhr.mode == modeRead {
		return
	}

	uhr.bits--

	if uhr.mode == modeUnknown {
		if uhr.bits > 0 {
			uhr.addr = uhr.addr<<1 | bit
			return
		}
		uhr.mode = int(bit)
		uhr.bits = NumFields * 8
		logger.Logf(uhr.env.Debug(), "uhr", "transfer addr=%d mode=%d", uhr.addr, uhr.mode)
		return
	}

	uhr.receive = uhr.receive<<1 | bit
	if uhr.bits%8 != 0 {
		return
	}

	uhr.set[NumFields-1-uhr.bits/8] = FromBCD(uhr.receive)
	uhr.receive = 0

	if uhr.bits == 0 {
		uhr.setTime()
	}
}

// latch the current time into the fields of the clock chip
func (uhr *Uhr) latch() {
	t := uhr.Now()
	uhr.fields[FieldHour] = ToBCD(t.Hour())
	uhr.fields[FieldMinute] = ToBCD(t.Minute())
	uhr.fields[FieldSecond] = ToBCD(t.Second())
	uhr.fields[FieldDay] = ToBCD(t.Day())
	uhr.fields[FieldMonth] = ToBCD(int(t.Month()))
	uhr.fields[FieldYear] = ToBCD(t.Year())
	uhr.fields[FieldWeekday] = ToBCD(int(t.Weekday()))
}

// change the offset from host time. the weekday is implied by the date and
// is ignored
func (uhr *Uhr) setTime() {
	s := uhr.set

	// two digit years before 70 are in the 21st century
	year := 1900 + s[FieldYear]
	if s[FieldYear] < 70 {
		year += 100
	}

	if s[FieldMonth] < 1 || s[FieldMonth] > 12 || s[FieldDay] < 1 || s[FieldDay] > 31 ||
		s[FieldHour] > 23 || s[FieldMinute] > 59 || s[FieldSecond] > 59 {
		logger.Logf(uhr.env, "uhr", "invalid time: %02d:%02d:%02d %02d.%02d.%d",
			s[FieldHour], s[FieldMinute], s[FieldSecond], s[FieldDay], s[FieldMonth], year)
		return
	}

	n := uhr.now()
	t := time.Date(year, time.Month(s[FieldMonth]), s[FieldDay],
		s[FieldHour], s[FieldMinute], s[FieldSecond], 0, n.Location())
	uhr.diff = t.Sub(n).Truncate(time.Second)

	logger.Logf(uhr.env, "uhr", "time set to %s", t.Format(time.DateTime))
}
