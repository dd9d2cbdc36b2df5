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

// Package memory implements the address decoder of the NKC. Every access by
// the CPU passes through the Memory type, which maps the 24-bit address onto
// one of the following areas:
//
//	                              CPU
//	                               |
//	                            cpu bus
//	                               |
//	                          ** MEMORY **
//	                               |
//	    ----------------------------------------------------------
//	    |              |              |              |            |
//	  COL256        I/O page       boot ROM         RAM       debug bus
//	  window      (port table)    (bank-boot)
//
// The order of the checks is important. The COL256 window, when active, takes
// priority over everything else. The I/O page is decoded through a static
// port table built when the machine is created. The boot ROM shadows the
// bottom of RAM for reads while the bank-boot latch is set. Everything else
// is physical RAM.
//
// Accesses through the CPU bus accumulate wait-state cycles, which are
// collected by the timing coordinator. Accesses through the debug bus (Peek
// and Poke) do not.
//
// Words and longs are big-endian. Accesses to the COL256 window are composed
// of byte accesses, most significant byte first.
package memory
