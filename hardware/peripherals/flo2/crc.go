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

package flo2

// the CRC used in the ID and data fields of a disk sector is CRC-16 with the
// CCITT polynomial
const crcPolynomial = 0x1021

var crcTable [256]uint16

func init() {
	for i := range crcTable {
		crc := uint16(i) << 8
		for range 8 {
			if crc&0x8000 == 0x8000 {
				crc = (crc << 1) ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
		crcTable[i] = crc
	}
}

// crcAdd adds a single byte to the running CRC value.
func crcAdd(crc uint16, b uint8) uint16 {
	return (crc << 8) ^ crcTable[uint8(crc>>8)^b]
}

// crc16 returns the CRC of the data starting with an initial value of zero.
func crc16(data []uint8) uint16 {
	var crc uint16
	for _, b := range data {
		crc = crcAdd(crc, b)
	}
	return crc
}
