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

// line styles selected by the lower two bits of CTRL2. one bit per pixel with
// the most significant bit first
var lineStyle = [4]uint16{
	0xffff, // solid
	0xcccc, // dotted
	0xf0f0, // dashed
	0xffcc, // dot-dash
}

// the character index of the 5x8 block drawn by command 10
const blockChar = 128

// draw a single pixel on the write page. coordinates outside of the page are
// ignored
func (gdp *GDP) pixel(x int, y int, v uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}

	// XOR mode is only active when the write bit of the page register is set
	// and the pen is in write mode
	if gdp.Regs.Page&0x01 == 0x01 && gdp.Regs.Ctrl1&Ctrl1Write == Ctrl1Write {
		gdp.pages[gdp.writePage][y*Width+x] ^= v
	} else {
		gdp.pages[gdp.writePage][y*Width+x] = v
	}
	gdp.changed = true
}

// fill the write page with the value
func (gdp *GDP) clear(v uint8) {
	p := gdp.pages[gdp.writePage]
	for i := range p {
		p[i] = v
	}
	gdp.changed = true
}

// the pen value for the current write mode and its inverse
func (gdp *GDP) pen() (uint8, uint8) {
	if gdp.Regs.Ctrl1&Ctrl1Write == Ctrl1Write {
		return 1, 0
	}
	return 0, 1
}

func (gdp *GDP) penDown() bool {
	return gdp.Regs.Ctrl1&Ctrl1PenDown == Ctrl1PenDown
}

// lineStyler returns a function that returns the value to plot for the next
// pixel of a line
func (gdp *GDP) lineStyler() func() uint8 {
	style := lineStyle[gdp.Regs.Ctrl2&Ctrl2Style]
	pen, inv := gdp.pen()
	bit := uint16(0x8000)
	return func() uint8 {
		v := inv
		if style&bit != 0 {
			v = pen
		}
		bit >>= 1
		if bit == 0 {
			bit = 0x8000
		}
		return v
	}
}

// draw a horizontal line in page coordinates. the pen X register is moved to
// the end of the line even if the pen is up
func (gdp *GDP) hline(x1 int, y int, x2 int) {
	gdp.Regs.PenX = x2
	if !gdp.penDown() {
		return
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	next := gdp.lineStyler()
	for x := x1; x <= x2; x++ {
		gdp.pixel(x, y, next())
	}
}

// draw a vertical line in page coordinates. the pen Y register is moved to
// the end of the line even if the pen is up
func (gdp *GDP) vline(x int, y1 int, y2 int) {
	gdp.Regs.PenY = Height - 1 - y2
	if !gdp.penDown() {
		return
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	next := gdp.lineStyler()
	for y := y1; y <= y2; y++ {
		gdp.pixel(x, y, next())
	}
}

// draw a line in page coordinates with Bresenham's algorithm. the pen
// registers are not changed
func (gdp *GDP) line(x1 int, y1 int, x2 int, y2 int) {
	if !gdp.penDown() {
		return
	}

	if x2 < x1 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	next := gdp.lineStyler()

	dx := x2 - x1
	dy := y2 - y1
	step := 1
	if dy < 0 {
		dy = -dy
		step = -1
	}

	x := x1
	y := y1
	gdp.pixel(x, y, next())

	if dx > dy {
		p := 2*dy - dx
		for x < x2 {
			x++
			if p < 0 {
				p += 2 * dy
			} else {
				y += step
				p += 2 * (dy - dx)
			}
			gdp.pixel(x, y, next())
		}
		return
	}

	p := 2*dx - dy
	for y != y2 {
		y += step
		if p < 0 {
			p += 2 * dx
		} else {
			x++
			p += 2 * (dx - dy)
		}
		gdp.pixel(x, y, next())
	}
}

// the size of a character cell from the CSIZE register. a value of zero
// means a size of sixteen
func (gdp *GDP) charSize() (int, int) {
	xs := int(gdp.Regs.Csize >> 4)
	ys := int(gdp.Regs.Csize & 0x0f)
	if xs == 0 {
		xs = 16
	}
	if ys == 0 {
		ys = 16
	}
	return xs, ys
}

// draw a rectangle of size (xs, ys) for cell (x, y) of a character starting
// at (realX, realY) in page coordinates
func (gdp *GDP) cell(realX int, realY int, x int, y int, xs int, ys int, v uint8) {
	vertical := gdp.Regs.Ctrl2&Ctrl2Vertical == Ctrl2Vertical
	for x1 := range xs {
		for y1 := range ys {
			if vertical {
				gdp.pixel(realX-y*ys-y1, realY-x*xs-x1, v)
			} else {
				gdp.pixel(realX+x*xs+x1, realY-y*ys-y1, v)
			}
		}
	}
}

// draw a character with the bottom left corner at the pen position. if the
// pen is up the pen position is not advanced
func (gdp *GDP) drawChar(c uint8) {
	idx := int(c) - ' '
	if idx < 0 || idx >= len(charset) {
		return
	}

	var xs int

	if gdp.penDown() {
		pen, _ := gdp.pen()

		var ys int
		xs, ys = gdp.charSize()

		vertical := gdp.Regs.Ctrl2&Ctrl2Vertical == Ctrl2Vertical
		tilt := gdp.Regs.Ctrl2&Ctrl2Tilt == Ctrl2Tilt

		realX := gdp.Regs.PenX
		realY := Height - 1 - gdp.Regs.PenY

		for x := range 5 {
			for y := range 8 {
				if charset[idx][x]&(0x80>>y) != 0 {
					gdp.cell(realX, realY, x, y, xs, ys, pen)
				}
				if tilt {
					if vertical {
						realY--
					} else {
						realX++
					}
				}
			}
			if tilt {
				if vertical {
					realY += 8
				} else {
					realX -= 8
				}
			}
		}
	}

	// the width of a character is five cells plus one cell of spacing
	if gdp.Regs.Ctrl2&Ctrl2Vertical == Ctrl2Vertical {
		gdp.Regs.PenY += 6 * xs
	} else {
		gdp.Regs.PenX += 6 * xs
	}
}

// draw a 4x4 block with the bottom left corner at the pen position
func (gdp *GDP) drawBlock() {
	var xs int

	if gdp.penDown() {
		pen, _ := gdp.pen()

		var ys int
		xs, ys = gdp.charSize()

		vertical := gdp.Regs.Ctrl2&Ctrl2Vertical == Ctrl2Vertical
		tilt := gdp.Regs.Ctrl2&Ctrl2Tilt == Ctrl2Tilt

		realX := gdp.Regs.PenX
		realY := Height - 1 - gdp.Regs.PenY

		for x := range 4 {
			for y := range 4 {
				gdp.cell(realX, realY, x, y, xs, ys, pen)
				if tilt {
					if vertical {
						realY--
					} else {
						realX++
					}
				}
			}
			if tilt {
				if vertical {
					realY += 4
				} else {
					realX -= 4
				}
			}
		}
	}

	gdp.Regs.PenX += 4 * xs
}
