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

// Package promer implements the PROMER EPROM programmer. The EPROM in the
// socket is simulated by a file. The file is never resized; addresses beyond
// the end of the file read as an erased EPROM and cannot be programmed.
package promer

import (
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// ProgramTime is the duration of a programming pulse.
const ProgramTime = 50 * time.Millisecond

// Values returned by the status register.
const (
	StatusBusy = 0x00
	StatusDone = 0x01
)

// Erased is the value of every byte in an erased EPROM.
const Erased = 0xff

// Bits in the high address register.
const (
	HighAddress = 0x1f
	HighProgram = 0x20
	HighLEDOff  = 0x40
	HighWrite   = 0x80
)

// Promer implements the bus.Device interface.
type Promer struct {
	env *environment.Environment

	data uint8
	adr  uint16
	read bool
	led  bool

	// end of the most recent programming pulse
	stop time.Time
	now  func() time.Time

	pth  string
	file *os.File
	size int64
}

// NewPromer is the preferred method of initialisation for the Promer type.
func NewPromer(env *environment.Environment) *Promer {
	return &Promer{
		env:  env,
		now:  time.Now,
		read: true,
	}
}

func (prm *Promer) String() string {
	mode := "read"
	if !prm.read {
		mode = "write"
	}
	return fmt.Sprintf("adr=%#04x %s led=%v", prm.adr, mode, prm.led)
}

// Ports returns the list of ports used by the EPROM programmer.
func (prm *Promer) Ports() []addresses.Port {
	return []addresses.Port{addresses.PromData, addresses.PromAddrL, addresses.PromAddrH}
}

// Reset the programmer. The EPROM file is opened if the path has changed
// since the previous reset.
func (prm *Promer) Reset(cfg preferences.FileConfig) {
	if cfg.Path != prm.pth || prm.file == nil {
		prm.End()
		prm.pth = cfg.Path
		if prm.pth != "" {
			err := prm.open()
			if err != nil {
				logger.Logf(prm.env, "promer", "can't open EPROM: %v", err)
			}
		}
	}

	prm.led = false
	prm.read = true
	prm.stop = time.Time{}
}

func (prm *Promer) open() error {
	f, err := os.OpenFile(prm.pth, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	prm.file = f
	prm.size = st.Size()
	logger.Logf(prm.env, "promer", "EPROM: %s (%d bytes)", prm.pth, prm.size)
	return nil
}

// End closes the EPROM file.
func (prm *Promer) End() {
	if prm.file != nil {
		prm.file.Close()
		prm.file = nil
		prm.size = 0
	}
}

// Read implements the bus.Device interface.
func (prm *Promer) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.PromData:
		if !prm.read || prm.file == nil || int64(prm.adr) >= prm.size {
			return Erased
		}
		b := []uint8{Erased}
		_, err := prm.file.ReadAt(b, int64(prm.adr))
		if err != nil {
			logger.Logf(prm.env, "promer", "%v", err)
			return Erased
		}
		return b[0]
	case addresses.PromAddrL:
		if prm.now().Before(prm.stop) {
			return StatusBusy
		}
		return StatusDone
	}
	return 0
}

// Write implements the bus.Device interface.
func (prm *Promer) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.PromData:
		prm.data = data
	case addresses.PromAddrL:
		prm.adr = prm.adr&0xff00 | uint16(data)
	case addresses.PromAddrH:
		prm.adr = prm.adr&0x00ff | uint16(data&HighAddress)<<8
		prm.read = data&HighWrite == 0
		prm.led = data&HighLEDOff == 0
		if data&HighProgram == HighProgram {
			prm.program()
		}
	}
}

// a programming pulse can only clear bits
func (prm *Promer) program() {
	prm.stop = prm.now().Add(ProgramTime)

	if prm.read || prm.file == nil || int64(prm.adr) >= prm.size {
		return
	}

	b := []uint8{Erased}
	_, err := prm.file.ReadAt(b, int64(prm.adr))
	if err != nil {
		logger.Logf(prm.env, "promer", "%v", err)
		return
	}
	b[0] &= prm.data
	_, err = prm.file.WriteAt(b, int64(prm.adr))
	if err != nil {
		logger.Logf(prm.env, "promer", "%v", err)
	}
}

// LED returns true if the programming LED is lit.
func (prm *Promer) LED() bool {
	return prm.led
}
