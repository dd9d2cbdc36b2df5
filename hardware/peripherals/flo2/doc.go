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

// Package flo2 emulates the FLO2 floppy disk controller card. The card is
// built around a WD1793 compatible controller and can address up to four
// drives.
//
// Disks are represented by raw image files. The geometry of every disk is
// fixed: 80 tracks, two sides, five sectors per side and 1024 bytes per
// sector. The linear offset of a sector in the image file is therefore:
//
//	((track * 5 * 2) + (5 * side) + (sector - 1)) * 1024
//
// Commands complete immediately. There is no rotational or stepping delay
// and the BUSY status bit is never set. Data is transferred a byte at a time
// through the data register with the DRQ flag indicating that the transfer
// is ongoing. The INTRQ flag is set when a command has completed. Both flags
// are visible in the drive status register and are polled by the operating
// system, the controller is not connected to the interrupt line of the CPU.
//
// The write track command is used to format a track. The raw track data is
// collected and then searched for ID and data address marks. The data field
// of every sector found is written to the image file.
package flo2
