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

package gdp

import (
	"fmt"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
)

// Dimensions of a page in pixels.
const (
	Width  = 512
	Height = 256
)

// NumPages is the number of hardware pages plus the overlay page.
const NumPages = 5

// OverlayPage is the index of the page used for the overlay screen.
const OverlayPage = NumPages - 1

// Bits in the status register.
const (
	StatusLightPen = 0x01
	StatusVsync    = 0x02
	StatusReady    = 0x04
	StatusOutside  = 0x08
)

// Bits in the CTRL1 register.
const (
	Ctrl1PenDown = 0x01
	Ctrl1Write   = 0x02
)

// Bits in the CTRL2 register.
const (
	Ctrl2Style    = 0x03
	Ctrl2Tilt     = 0x04
	Ctrl2Vertical = 0x08
)

// Display is implemented by the presentation layer. A frame is Width*Height
// bytes with one byte per pixel: zero for background and one for
// foreground.
type Display interface {
	PresentGDP(frame []uint8)
}

// Registers of the EF9366 and the page and scroll registers of the GDP64
// card.
type Registers struct {
	Status uint8
	Ctrl1  uint8
	Ctrl2  uint8
	Csize  uint8
	DeltaX uint8
	DeltaY uint8
	Page   uint8
	Scroll uint8

	// pen position. the EF9366 registers are 12 bits wide but the pen can
	// move outside of the screen area
	PenX int
	PenY int
}

func (r Registers) String() string {
	return fmt.Sprintf("x=%d y=%d ctrl1=%#02x ctrl2=%#02x csize=%#02x dx=%d dy=%d page=%#02x",
		r.PenX, r.PenY, r.Ctrl1, r.Ctrl2, r.Csize, r.DeltaX, r.DeltaY, r.Page)
}

// GDP implements the bus.Device interface.
type GDP struct {
	env *environment.Environment

	Regs  Registers
	saved Registers

	pages     [NumPages][]uint8
	readPage  int
	writePage int

	// something has been drawn or the visible page has changed since the
	// previous presentation
	changed bool

	overlay bool

	display Display
}

// NewGDP is the preferred method of initialisation for the GDP type. The
// display argument can be nil.
func NewGDP(env *environment.Environment, display Display) *GDP {
	gdp := &GDP{
		env:     env,
		display: display,
	}
	for i := range gdp.pages {
		gdp.pages[i] = make([]uint8, Width*Height)
	}
	return gdp
}

func (gdp *GDP) String() string {
	return gdp.Regs.String()
}

// SetDisplay changes the destination of presented frames.
func (gdp *GDP) SetDisplay(display Display) {
	gdp.display = display
}

// Ports returns the list of ports used by the GDP64 card.
func (gdp *GDP) Ports() []addresses.Port {
	p := []addresses.Port{addresses.GDPPage, addresses.GDPScroll}
	for i := addresses.GDPCmd; i <= addresses.GDPCmd+0x0f; i++ {
		p = append(p, i)
	}
	return p
}

// Reset the GDP. The magnification in the configuration is used by the
// presentation layer only.
func (gdp *GDP) Reset(_ preferences.GDPConfig) {
	gdp.Regs = Registers{
		Status: StatusReady,
		Csize:  0x11,
	}
	gdp.readPage = 0
	gdp.writePage = 0
	gdp.changed = false
	gdp.overlay = false
	gdp.clear(0)
}

// Read implements the bus.Device interface.
func (gdp *GDP) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.GDPPage:
		return gdp.Regs.Page
	case addresses.GDPCmd:
		return gdp.Regs.Status
	case addresses.GDPCtrl1:
		return gdp.Regs.Ctrl1
	case addresses.GDPCtrl2:
		return gdp.Regs.Ctrl2
	case addresses.GDPCsize:
		return gdp.Regs.Csize
	case addresses.GDPDeltaX:
		return gdp.Regs.DeltaX
	case addresses.GDPDeltaY:
		return gdp.Regs.DeltaY
	case addresses.GDPXMSB:
		return uint8(gdp.Regs.PenX >> 8)
	case addresses.GDPXLSB:
		return uint8(gdp.Regs.PenX)
	case addresses.GDPYMSB:
		return uint8(gdp.Regs.PenY >> 8)
	case addresses.GDPYLSB:
		return uint8(gdp.Regs.PenY)
	}

	// the hardware scroll register is write only. the remaining registers of
	// the EF9366 are not connected
	return 0
}

// Write implements the bus.Device interface.
func (gdp *GDP) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.GDPPage:
		gdp.readPage = int(data&0x30) >> 4
		gdp.writePage = int(data&0xc0) >> 6
		if gdp.Regs.Page != data {
			gdp.changed = true
		}
		gdp.Regs.Page = data
	case addresses.GDPScroll:
		if gdp.Regs.Scroll != data {
			gdp.changed = true
		}
		gdp.Regs.Scroll = data
	case addresses.GDPCmd:
		gdp.command(data)
	case addresses.GDPCtrl1:
		gdp.Regs.Ctrl1 = data
	case addresses.GDPCtrl2:
		gdp.Regs.Ctrl2 = data
	case addresses.GDPCsize:
		gdp.Regs.Csize = data
	case addresses.GDPDeltaX:
		gdp.Regs.DeltaX = data
	case addresses.GDPDeltaY:
		gdp.Regs.DeltaY = data
	case addresses.GDPXMSB:
		gdp.Regs.PenX = int(data)<<8 | gdp.Regs.PenX&0xff
	case addresses.GDPXLSB:
		gdp.Regs.PenX = int(data) | gdp.Regs.PenX&0xff00
	case addresses.GDPYMSB:
		gdp.Regs.PenY = int(data)<<8 | gdp.Regs.PenY&0xff
	case addresses.GDPYLSB:
		gdp.Regs.PenY = int(data) | gdp.Regs.PenY&0xff00
	}
}

// ReadX returns the X register as a single word.
func (gdp *GDP) ReadX() uint16 {
	return uint16(gdp.Regs.PenX)
}

// WriteX sets the X register in a single word access.
func (gdp *GDP) WriteX(data uint16) {
	gdp.Regs.PenX = int(data)
}

// ReadY returns the Y register as a single word.
func (gdp *GDP) ReadY() uint16 {
	return uint16(gdp.Regs.PenY)
}

// WriteY sets the Y register in a single word access.
func (gdp *GDP) WriteY(data uint16) {
	gdp.Regs.PenY = int(data)
}

// WriteCtrl2Csize sets the CTRL2 and CSIZE registers in a single word
// access. Operating systems clear both registers with a single CLR.W
// instruction.
func (gdp *GDP) WriteCtrl2Csize(data uint16) {
	gdp.Regs.Ctrl2 = uint8(data >> 8)
	gdp.Regs.Csize = uint8(data)
}

func (gdp *GDP) command(cmd uint8) {
	gdp.Regs.Status &^= StatusReady
	defer func() {
		gdp.Regs.Status |= StatusReady
	}()

	switch {
	case cmd >= 0x20 && cmd <= 0x7f:
		gdp.drawChar(cmd)
		return
	case cmd >= 0x80:
		gdp.shortVector(cmd)
		return
	}

	r := &gdp.Regs

	switch cmd {
	case 0:
		r.Ctrl1 |= Ctrl1Write
	case 1:
		r.Ctrl1 &^= Ctrl1Write
	case 2:
		r.Ctrl1 |= Ctrl1PenDown
	case 3:
		r.Ctrl1 &^= Ctrl1PenDown
	case 4:
		gdp.clear(0)
	case 5:
		r.PenX = 0
		r.PenY = 0
	case 6:
		gdp.clear(0)
		r.PenX = 0
		r.PenY = 0
	case 7:
		gdp.clear(0)
		r.PenX = 0
		r.PenY = 0
		r.Csize = 0x11
		r.Ctrl1 = 0
		r.Status = StatusReady
	case 10:
		gdp.drawChar(blockChar)
	case 11:
		gdp.drawBlock()
	case 12:
		if r.Ctrl1&Ctrl1Write == Ctrl1Write {
			gdp.clear(1)
		} else {
			gdp.clear(0)
		}
	case 13:
		r.PenX = 0
	case 14:
		r.PenY = 0

	// vectors. lines parallel to an axis are drawn by the faster hline and
	// vline functions
	case 16:
		gdp.hline(r.PenX, Height-1-r.PenY, r.PenX+int(r.DeltaX))
	case 17:
		gdp.vector(int(r.DeltaX), int(r.DeltaY))
	case 18:
		gdp.vline(r.PenX, Height-1-r.PenY, Height-1-(r.PenY+int(r.DeltaY)))
	case 19:
		gdp.vector(-int(r.DeltaX), int(r.DeltaY))
	case 20:
		gdp.vline(r.PenX, Height-1-r.PenY, Height-1-(r.PenY-int(r.DeltaY)))
	case 21:
		gdp.vector(int(r.DeltaX), -int(r.DeltaY))
	case 22:
		gdp.hline(r.PenX, Height-1-r.PenY, r.PenX-int(r.DeltaX))
	case 23:
		gdp.vector(-int(r.DeltaX), -int(r.DeltaY))
	}
}

// direction of the short vector command. indexed by the lower three bits of
// the command
var shortDirection = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{0, -1}, {1, -1}, {-1, 0}, {-1, -1},
}

func (gdp *GDP) shortVector(cmd uint8) {
	dx := int(cmd&0x60) >> 5
	dy := int(cmd&0x18) >> 3
	dir := shortDirection[cmd&0x07]
	gdp.vector(dx*dir[0], dy*dir[1])
}

// draw a line from the pen position and move the pen to the end of the line
func (gdp *GDP) vector(dx int, dy int) {
	r := &gdp.Regs
	gdp.line(r.PenX, Height-1-r.PenY, r.PenX+dx, Height-1-(r.PenY+dy))
	r.PenX += dx
	r.PenY += dy
}

// SetVsync is called by the timing coordinator on every edge of the vertical
// sync signal. The visible page is presented on the rising edge if it has
// changed.
func (gdp *GDP) SetVsync(active bool) {
	if !active {
		gdp.Regs.Status &^= StatusVsync
		return
	}

	gdp.Regs.Status |= StatusVsync
	if gdp.changed {
		gdp.present()
		gdp.changed = false
	}
}

// Frame returns a copy of the visible page with the hardware scroll applied.
func (gdp *GDP) Frame() []uint8 {
	frame := make([]uint8, Width*Height)
	page := gdp.pages[gdp.readPage]

	// the least significant bit of the scroll register is ignored
	scroll := int(gdp.Regs.Scroll & 0xfe)
	if scroll == 0 {
		copy(frame, page)
		return frame
	}

	// the top of the page moves down by the scroll value. the bottom of the
	// page wraps around to the top of the screen
	split := (Height - scroll) * Width
	copy(frame[scroll*Width:], page[:split])
	copy(frame, page[split:])
	return frame
}

func (gdp *GDP) present() {
	if gdp.display == nil {
		return
	}
	gdp.display.PresentGDP(gdp.Frame())
}

// Pixel returns the value of the pixel in the page. The coordinates are
// those of the page and not of the EF9366 coordinate system.
func (gdp *GDP) Pixel(page int, x int, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return gdp.pages[page][y*Width+x]
}

// ReadPage returns the index of the visible page.
func (gdp *GDP) ReadPage() int {
	return gdp.readPage
}

// WritePage returns the index of the page being drawn to.
func (gdp *GDP) WritePage() int {
	return gdp.writePage
}
