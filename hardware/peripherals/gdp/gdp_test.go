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

package gdp_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/gdp"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

type display struct {
	frames [][]uint8
}

func (d *display) PresentGDP(frame []uint8) {
	d.frames = append(d.frames, frame)
}

func newGDP(t *testing.T) (*gdp.GDP, *display) {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	d := &display{}
	g := gdp.NewGDP(env, d)
	g.Reset(p.GDP())
	return g, d
}

func write(g *gdp.GDP, p addresses.Port, data uint8) {
	g.Write(uint8(p), data)
}

func read(g *gdp.GDP, p addresses.Port) uint8 {
	return g.Read(uint8(p))
}

// pen down in write mode
func penDown(g *gdp.GDP) {
	write(g, addresses.GDPCmd, 0x00)
	write(g, addresses.GDPCmd, 0x02)
}

func TestReset(t *testing.T) {
	g, _ := newGDP(t)
	test.ExpectEquality(t, read(g, addresses.GDPCmd), uint8(gdp.StatusReady))
	test.ExpectEquality(t, read(g, addresses.GDPCsize), uint8(0x11))
	test.ExpectEquality(t, read(g, addresses.GDPCtrl1), uint8(0))

	// unconnected registers
	test.ExpectEquality(t, read(g, addresses.GDPCmd+4), uint8(0))
	test.ExpectEquality(t, read(g, addresses.GDPScroll), uint8(0))
}

func TestPenRegisters(t *testing.T) {
	g, _ := newGDP(t)

	write(g, addresses.GDPXMSB, 0x01)
	write(g, addresses.GDPXLSB, 0x23)
	test.ExpectEquality(t, g.Regs.PenX, 0x123)
	test.ExpectEquality(t, g.ReadX(), uint16(0x123))

	g.WriteY(0x00ff)
	test.ExpectEquality(t, read(g, addresses.GDPYMSB), uint8(0x00))
	test.ExpectEquality(t, read(g, addresses.GDPYLSB), uint8(0xff))

	g.WriteCtrl2Csize(0x0322)
	test.ExpectEquality(t, read(g, addresses.GDPCtrl2), uint8(0x03))
	test.ExpectEquality(t, read(g, addresses.GDPCsize), uint8(0x22))

	// set x and y to zero
	write(g, addresses.GDPCmd, 5)
	test.ExpectEquality(t, g.Regs.PenX, 0)
	test.ExpectEquality(t, g.Regs.PenY, 0)
}

func TestCharacter(t *testing.T) {
	g, _ := newGDP(t)

	// pen up. nothing is drawn and the pen does not move
	write(g, addresses.GDPCmd, 'A')
	test.ExpectEquality(t, g.Regs.PenX, 0)
	test.ExpectEquality(t, g.Pixel(0, 0, 254), uint8(0))

	penDown(g)
	write(g, addresses.GDPCmd, 'A')
	test.ExpectEquality(t, g.Regs.PenX, 6)
	test.ExpectEquality(t, read(g, addresses.GDPCmd)&gdp.StatusReady, uint8(gdp.StatusReady))

	// the first column of 'A' is six pixels high and starts one pixel above
	// the bottom of the character cell
	test.ExpectEquality(t, g.Pixel(0, 0, 255), uint8(0))
	for y := 249; y <= 254; y++ {
		test.ExpectEquality(t, g.Pixel(0, 0, y), uint8(1), y)
	}
	test.ExpectEquality(t, g.Pixel(0, 0, 248), uint8(0))

	// double size character
	write(g, addresses.GDPCsize, 0x22)
	write(g, addresses.GDPCmd, 5)
	write(g, addresses.GDPCmd, 'A')
	test.ExpectEquality(t, g.Regs.PenX, 12)
	test.ExpectEquality(t, g.Pixel(0, 1, 253), uint8(1))
}

func TestVerticalCharacter(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)

	write(g, addresses.GDPCtrl2, gdp.Ctrl2Vertical)
	g.WriteX(100)
	write(g, addresses.GDPCmd, 'I')
	test.ExpectEquality(t, g.Regs.PenX, 100)
	test.ExpectEquality(t, g.Regs.PenY, 6)
}

func TestBlock(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)

	write(g, addresses.GDPCmd, 11)
	test.ExpectEquality(t, g.Regs.PenX, 4)
	for x := range 4 {
		for y := 252; y <= 255; y++ {
			test.ExpectEquality(t, g.Pixel(0, x, y), uint8(1))
		}
	}
	test.ExpectEquality(t, g.Pixel(0, 4, 255), uint8(0))

	write(g, addresses.GDPCmd, 5)
	write(g, addresses.GDPCmd, 10)
	test.ExpectEquality(t, g.Regs.PenX, 6)
	test.ExpectEquality(t, g.Pixel(0, 4, 248), uint8(1))
}

func TestLines(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)

	write(g, addresses.GDPDeltaX, 10)
	write(g, addresses.GDPDeltaY, 5)

	// horizontal line
	write(g, addresses.GDPCmd, 16)
	test.ExpectEquality(t, g.Regs.PenX, 10)
	for x := range 11 {
		test.ExpectEquality(t, g.Pixel(0, x, 255), uint8(1), x)
	}
	test.ExpectEquality(t, g.Pixel(0, 11, 255), uint8(0))

	// vertical line
	write(g, addresses.GDPCmd, 18)
	test.ExpectEquality(t, g.Regs.PenY, 5)
	for y := 250; y <= 255; y++ {
		test.ExpectEquality(t, g.Pixel(0, 10, y), uint8(1), y)
	}

	// diagonal back to the origin
	write(g, addresses.GDPDeltaX, 5)
	write(g, addresses.GDPCmd, 23)
	test.ExpectEquality(t, g.Regs.PenX, 5)
	test.ExpectEquality(t, g.Regs.PenY, 0)
	test.ExpectEquality(t, g.Pixel(0, 5, 255), uint8(1))
	test.ExpectEquality(t, g.Pixel(0, 7, 253), uint8(1))
}

func TestLineStyle(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)

	// fill the page so that the gaps in the line are visible
	write(g, addresses.GDPCmd, 12)
	test.ExpectEquality(t, g.Pixel(0, 100, 100), uint8(1))

	// dotted line in erase mode
	write(g, addresses.GDPCmd, 1)
	write(g, addresses.GDPCtrl2, 0x01)
	write(g, addresses.GDPDeltaX, 20)
	write(g, addresses.GDPCmd, 16)

	expected := []uint8{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1}
	for x, v := range expected {
		test.ExpectEquality(t, g.Pixel(0, x, 255), v, x)
	}

	// clear with erase pen selected
	write(g, addresses.GDPCmd, 12)
	test.ExpectEquality(t, g.Pixel(0, 100, 100), uint8(0))
}

func TestShortVector(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)
	g.WriteX(10)
	g.WriteY(10)

	// length 3 in x, length 2 in y, direction (1, 1)
	write(g, addresses.GDPCmd, 0x80|0x60|0x10|0x01)
	test.ExpectEquality(t, g.Regs.PenX, 13)
	test.ExpectEquality(t, g.Regs.PenY, 12)
	test.ExpectEquality(t, g.Pixel(0, 10, 245), uint8(1))
	test.ExpectEquality(t, g.Pixel(0, 13, 243), uint8(1))

	// direction (-1, -1)
	write(g, addresses.GDPCmd, 0x80|0x60|0x18|0x07)
	test.ExpectEquality(t, g.Regs.PenX, 10)
	test.ExpectEquality(t, g.Regs.PenY, 9)
}

func TestXOR(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)

	write(g, addresses.GDPPage, 0x01)
	write(g, addresses.GDPDeltaX, 5)

	write(g, addresses.GDPCmd, 16)
	test.ExpectEquality(t, g.Pixel(0, 3, 255), uint8(1))
	write(g, addresses.GDPCmd, 22)
	test.ExpectEquality(t, g.Pixel(0, 3, 255), uint8(0))
}

func TestPages(t *testing.T) {
	g, d := newGDP(t)
	penDown(g)

	// write to page 1 while showing page 0
	write(g, addresses.GDPPage, 0x40)
	test.ExpectEquality(t, g.WritePage(), 1)
	test.ExpectEquality(t, g.ReadPage(), 0)
	write(g, addresses.GDPCmd, 11)
	test.ExpectEquality(t, g.Pixel(1, 0, 255), uint8(1))
	test.ExpectEquality(t, g.Pixel(0, 0, 255), uint8(0))

	g.SetVsync(true)
	test.DemandEquality(t, len(d.frames), 1)
	test.ExpectEquality(t, d.frames[0][255*gdp.Width], uint8(0))
	test.ExpectEquality(t, read(g, addresses.GDPCmd)&gdp.StatusVsync, uint8(gdp.StatusVsync))

	g.SetVsync(false)
	test.ExpectEquality(t, read(g, addresses.GDPCmd)&gdp.StatusVsync, uint8(0))

	// nothing has changed so nothing is presented
	g.SetVsync(true)
	test.ExpectEquality(t, len(d.frames), 1)

	// show page 1
	write(g, addresses.GDPPage, 0x50)
	g.SetVsync(true)
	test.DemandEquality(t, len(d.frames), 2)
	test.ExpectEquality(t, d.frames[1][255*gdp.Width], uint8(1))
}

func TestScroll(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)

	// single pixel at the top and the bottom of the page
	write(g, addresses.GDPCmd, 0x80|0x20)
	g.WriteX(0)
	g.WriteY(255)
	write(g, addresses.GDPCmd, 0x80|0x20)

	f := g.Frame()
	test.ExpectEquality(t, f[0], uint8(1))
	test.ExpectEquality(t, f[255*gdp.Width], uint8(1))

	// the lowest bit of the scroll register is ignored
	write(g, addresses.GDPScroll, 0x03)
	f = g.Frame()
	test.ExpectEquality(t, f[0], uint8(0))
	test.ExpectEquality(t, f[2*gdp.Width], uint8(1))
	test.ExpectEquality(t, f[1*gdp.Width], uint8(1))
	test.ExpectEquality(t, f[255*gdp.Width], uint8(0))
}

func TestRegisterReset(t *testing.T) {
	g, _ := newGDP(t)
	penDown(g)
	write(g, addresses.GDPCsize, 0x44)
	write(g, addresses.GDPCmd, 'X')

	write(g, addresses.GDPCmd, 7)
	test.ExpectEquality(t, g.Regs.PenX, 0)
	test.ExpectEquality(t, read(g, addresses.GDPCsize), uint8(0x11))
	test.ExpectEquality(t, read(g, addresses.GDPCtrl1), uint8(0))
	test.ExpectEquality(t, g.Pixel(0, 0, 255), uint8(0))
	test.ExpectEquality(t, g.Pixel(0, 2, 250), uint8(0))
}

func TestOverlay(t *testing.T) {
	g, d := newGDP(t)
	penDown(g)
	write(g, addresses.GDPPage, 0x50)
	g.WriteX(200)

	g.OpenOverlay()
	test.ExpectEquality(t, g.InOverlay(), true)
	test.ExpectEquality(t, g.ReadPage(), gdp.OverlayPage)
	g.DrawString(10, 10, 0x11, "OK")
	test.ExpectEquality(t, g.Pixel(gdp.OverlayPage, 10, 243), uint8(1))

	g.Present()
	test.DemandEquality(t, len(d.frames), 1)
	test.ExpectEquality(t, d.frames[0][243*gdp.Width+10], uint8(1))

	g.CloseOverlay()
	test.ExpectEquality(t, g.InOverlay(), false)
	test.ExpectEquality(t, g.Regs.PenX, 200)
	test.ExpectEquality(t, read(g, addresses.GDPPage), uint8(0x50))
	test.ExpectEquality(t, g.ReadPage(), 1)
	test.ExpectEquality(t, g.WritePage(), 1)
}
