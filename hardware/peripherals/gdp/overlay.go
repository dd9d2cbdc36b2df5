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

// OpenOverlay saves the registers and switches drawing and display to the
// overlay page. The overlay page is cleared.
func (gdp *GDP) OpenOverlay() {
	if gdp.overlay {
		return
	}
	gdp.overlay = true
	gdp.saved = gdp.Regs

	gdp.Regs.Page = 0
	gdp.Regs.Scroll = 0
	gdp.Regs.Ctrl2 = 0
	gdp.readPage = OverlayPage
	gdp.writePage = OverlayPage
	gdp.clear(0)
}

// CloseOverlay restores the registers saved by OpenOverlay().
func (gdp *GDP) CloseOverlay() {
	if !gdp.overlay {
		return
	}
	gdp.overlay = false
	gdp.Regs = gdp.saved
	gdp.readPage = int(gdp.Regs.Page&0x30) >> 4
	gdp.writePage = int(gdp.Regs.Page&0xc0) >> 6
	gdp.changed = true
}

// InOverlay returns true if the overlay page is being shown.
func (gdp *GDP) InOverlay() bool {
	return gdp.overlay
}

// DrawString draws text on the overlay page. The position is in EF9366
// coordinates and size is a CSIZE value. Each character is drawn over an
// erased block. A newline moves the pen to the start of the next line.
func (gdp *GDP) DrawString(x int, y int, size uint8, s string) {
	if !gdp.overlay {
		return
	}

	gdp.Regs.PenX = x
	gdp.Regs.PenY = y
	gdp.Regs.Csize = size
	gdp.Regs.Ctrl1 |= Ctrl1PenDown

	for _, c := range []byte(s) {
		switch {
		case c == '\n':
			gdp.Regs.PenX = x
			gdp.Regs.PenY -= int(size&0x0f) * 10
		case c >= 0x20 && c <= 0x7f:
			px, py := gdp.Regs.PenX, gdp.Regs.PenY
			gdp.Regs.Ctrl1 &^= Ctrl1Write
			gdp.drawChar(blockChar)
			gdp.Regs.PenX, gdp.Regs.PenY = px, py
			gdp.Regs.Ctrl1 |= Ctrl1Write
			gdp.drawChar(c)
		}
	}
}

// Present the visible page immediately. Used when the emulation is paused
// and the vsync signal is not being generated.
func (gdp *GDP) Present() {
	gdp.present()
	gdp.changed = false
}
