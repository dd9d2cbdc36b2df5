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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/col256"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/gdp"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/sound"
)

// DeviceState is a summary of the machine suitable for visualisation. Video
// memory and RAM are not included.
type DeviceState struct {
	PC       uint32
	IRQ      uint8
	Frames   int
	BootROM  string
	GDP      gdp.Registers
	ReadPage int
	Sound    [sound.NumRegisters]uint8
	Col256   [col256.NumRegisters]uint8
	FLO2     string
	CAS      string
	IOE      string
	Mouse    string
	Promer   string
	Uhr      string
	Timer    string
	Serial   string
	Key      uint8
}

// State returns a summary of the machine.
func (nkc *NKC) State() *DeviceState {
	s := &DeviceState{
		PC:       nkc.CPU.PC(),
		IRQ:      nkc.IRQ.Level(),
		Frames:   nkc.Coord.Frames(),
		BootROM:  nkc.BankBoot.String(),
		GDP:      nkc.GDP.Regs,
		ReadPage: nkc.GDP.ReadPage(),
		FLO2:     nkc.FLO2.String(),
		CAS:      nkc.CAS.String(),
		IOE:      nkc.IOE.String(),
		Mouse:    nkc.Mouse.String(),
		Promer:   nkc.Promer.String(),
		Uhr:      nkc.Uhr.String(),
		Timer:    nkc.Timer.String(),
		Serial:   nkc.Serial.String(),
		Key:      nkc.Key.Peek(),
	}
	for i := range s.Sound {
		s.Sound[i] = nkc.Sound.Register(i)
	}
	for i := range s.Col256 {
		s.Col256[i] = nkc.Col256.Register(i)
	}
	return s
}

// Dump writes a graphviz representation of the machine's device state.
func (nkc *NKC) Dump(w io.Writer) {
	memviz.Map(w, nkc.State())
}
