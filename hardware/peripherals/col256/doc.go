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

// Package col256 implements the COL256 colour graphics card in its 256x256
// mode. The card has 64KB of video RAM, divided into four pages of 16KB. One
// page at a time is visible to the CPU through a window in the address space.
// The window is only present while the card is active.
//
// Each byte of video RAM is a single pixel:
//
//	bit  7 6 5 4 3 2 1 0
//	     I I B B G G R R
//
// The two intensity bits are added to each of the colour components. The
// MC6845 registers of the card are stored but have no effect on the image.
package col256
