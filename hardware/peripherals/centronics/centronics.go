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

// Package centronics implements the CENT printer interface. Printed
// characters are written to a listing file.
package centronics

import (
	"os"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// StrobeBit is the bit in the strobe register. Data is sent to the printer
// when the bit is written as zero.
const StrobeBit = 0x01

// Centronics implements the bus.Device interface.
type Centronics struct {
	env *environment.Environment

	data   uint8
	status uint8

	pth  string
	file *os.File
	pos  int64
}

// NewCentronics is the preferred method of initialisation for the
// Centronics type.
func NewCentronics(env *environment.Environment) *Centronics {
	return &Centronics{env: env}
}

// Ports returns the list of ports used by the printer interface.
func (cen *Centronics) Ports() []addresses.Port {
	return []addresses.Port{addresses.CentData, addresses.CentStrobe}
}

// Reset the printer interface. The listing file is created the first time
// the interface is reset with a new path. Subsequent resets rewind the
// listing.
func (cen *Centronics) Reset(cfg preferences.FileConfig) {
	if cfg.Path != cen.pth || cen.file == nil {
		cen.End()
		cen.pth = cfg.Path
		if cen.pth != "" {
			f, err := os.Create(cen.pth)
			if err != nil {
				logger.Logf(cen.env, "centronics", "can't create listing: %v", err)
			} else {
				cen.file = f
				logger.Logf(cen.env, "centronics", "listing: %s", cen.pth)
			}
		}
	}
	cen.pos = 0
	cen.data = 0
}

// End closes the listing file.
func (cen *Centronics) End() {
	if cen.file != nil {
		cen.file.Close()
		cen.file = nil
	}
}

// Read implements the bus.Device interface.
func (cen *Centronics) Read(port uint8) uint8 {
	if addresses.Port(port) == addresses.CentStrobe {
		return cen.status
	}
	return 0
}

// Write implements the bus.Device interface.
func (cen *Centronics) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.CentData:
		cen.data = data
	case addresses.CentStrobe:
		if data&StrobeBit == 0 && cen.file != nil && cen.data != 0 {
			_, err := cen.file.WriteAt([]uint8{cen.data}, cen.pos)
			if err != nil {
				logger.Logf(cen.env, "centronics", "%v", err)
			} else {
				cen.pos++
			}
		}
		cen.data = 0
		cen.status = 0
	}
}
