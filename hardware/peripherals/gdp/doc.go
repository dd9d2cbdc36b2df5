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

// Package gdp emulates the GDP64 graphics card. The card is built around the
// Thomson EF9366 graphics display processor, which draws characters, vectors
// and blocks into one of four monochrome pages of 512x256 pixels.
//
// The origin of the EF9366 coordinate system is the bottom-left corner of the
// screen. Pages are stored with the origin at the top-left corner and so the
// Y coordinate of the pen is mirrored whenever a pixel is drawn.
//
// A fifth page is used by the emulator for the overlay screen. Registers are
// saved when the overlay is opened and restored when it is closed.
//
// The visible page is presented to the Display interface on the rising edge
// of the vertical sync signal. Each presented frame is a newly allocated copy
// and so can be safely passed to another goroutine.
package gdp
