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

package col256

import (
	"fmt"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// Dimensions of the image in pixels.
const (
	Width  = 256
	Height = 256
)

// MemorySize is the amount of video RAM on the card.
const MemorySize = 0x10000

// PageSize is the size of each page of video RAM and of the window.
const PageSize = addresses.ColWindowSize

// NumRegisters is the number of MC6845 registers that can be written.
const NumRegisters = 18

// Bits in the page register.
const (
	PageActive = 0x80
	PageMask   = 0x03
)

// Display is implemented by the presentation layer. A frame is Width*Height*3
// bytes of RGB data.
type Display interface {
	PresentCol256(frame []uint8)
}

// Col256 implements the bus.Device and bus.Window interfaces.
type Col256 struct {
	env *environment.Environment

	registers [NumRegisters]uint8
	addr      uint8

	page   uint8
	active bool

	mem [MemorySize]uint8

	// the card is only present if it is enabled in the configuration
	enabled bool
	base    uint32

	changed bool
	display Display
}

// NewCol256 is the preferred method of initialisation for the Col256 type.
// The display argument can be nil.
func NewCol256(env *environment.Environment, display Display) *Col256 {
	return &Col256{
		env:     env,
		display: display,
		base:    addresses.DefaultColWindow,
	}
}

func (col *Col256) String() string {
	return fmt.Sprintf("page=%d active=%v addr=%#02x", col.page, col.active, col.addr)
}

// SetDisplay changes the destination of presented frames.
func (col *Col256) SetDisplay(display Display) {
	col.display = display
}

// Ports returns the list of ports used by the card, including the alternative
// addresses used by JADOS and the write only colour registers of the GDP64
// colour extension.
//
// The colour registers are claimed so that software driving the colour
// extension does not fault, but writes to them are inert: the GDP64 is always
// drawn in its fixed colours. They read as zero.
func (col *Col256) Ports() []addresses.Port {
	return []addresses.Port{
		addresses.ColAddr, addresses.ColData, addresses.ColPage,
		addresses.ColJADOSAddr, addresses.ColJADOSData, addresses.ColJADOSPage,
		addresses.ColorFG, addresses.ColorBG,
	}
}

// Reset the card. Video RAM survives a reset.
func (col *Col256) Reset(cfg preferences.MemoryConfig) {
	col.enabled = cfg.Col256
	col.base = cfg.Col256Base
	col.page = 0
	col.active = false
	col.addr = 0
	col.changed = true
	if col.enabled {
		logger.Logf(col.env, "col256", "window at %#06x", col.base)
	}
}

// Read implements the bus.Device interface.
func (col *Col256) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.ColPage, addresses.ColJADOSPage:
		return col.page
	}

	// the address register is write only and reading the MC6845 registers is
	// not supported
	return 0
}

// Write implements the bus.Device interface.
func (col *Col256) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.ColAddr, addresses.ColJADOSAddr:
		col.addr = data & 0x1f
	case addresses.ColData, addresses.ColJADOSData:
		if int(col.addr) < NumRegisters {
			col.registers[col.addr] = data
		}
	case addresses.ColPage, addresses.ColJADOSPage:
		col.active = data&PageActive == PageActive
		col.page = data & PageMask
	case addresses.ColorFG, addresses.ColorBG:
		logger.Logf(col.env.Debug(), "col256", "colour register %s ignored (%#02x)", addresses.Port(port), data)
	}
}

// Register returns the value of the MC6845 register.
func (col *Col256) Register(r int) uint8 {
	return col.registers[r]
}

// Active returns true if the window is visible to the CPU.
func (col *Col256) Active() bool {
	return col.enabled && col.active
}

// InWindow implements the bus.Window interface.
func (col *Col256) InWindow(address uint32) bool {
	return col.Active() && address >= col.base && address < col.base+PageSize
}

func (col *Col256) offset(address uint32) int {
	return int(col.page)*int(PageSize) + int(address-col.base)
}

// ReadWindow implements the bus.Window interface.
func (col *Col256) ReadWindow(address uint32) uint8 {
	if !col.Active() {
		return 0
	}
	return col.mem[col.offset(address)]
}

// WriteWindow implements the bus.Window interface.
func (col *Col256) WriteWindow(address uint32, data uint8) {
	if !col.Active() {
		return
	}
	col.mem[col.offset(address)] = data
	col.changed = true
}

// Colour returns the RGB components of a pixel value.
func Colour(d uint8) (uint8, uint8, uint8) {
	intensity := (d >> 6) * 21
	r := (d&0x03)*64 + intensity
	g := ((d>>2)&0x03)*64 + intensity
	b := ((d>>4)&0x03)*64 + intensity
	return r, g, b
}

// Frame returns the image as RGB data. The visible image is the first
// Width*Height bytes of video RAM.
func (col *Col256) Frame() []uint8 {
	frame := make([]uint8, Width*Height*3)
	for i := range Width * Height {
		frame[i*3], frame[i*3+1], frame[i*3+2] = Colour(col.mem[i])
	}
	return frame
}

// Pixel returns the video RAM value at the coordinates.
func (col *Col256) Pixel(x int, y int) uint8 {
	return col.mem[y*Width+x]
}

// Present sends the image to the display if the video RAM has changed since
// the previous presentation. It is called periodically by the emulation.
func (col *Col256) Present() {
	if !col.enabled || !col.changed || col.display == nil {
		return
	}
	col.changed = false
	col.display.PresentCol256(col.Frame())
}
