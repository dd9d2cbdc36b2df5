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

import (
	"testing"

	"github.com/jetsetilly/nkc68k/test"
)

func TestCRC(t *testing.T) {
	test.ExpectEquality(t, crc16([]uint8("123456789")), uint16(0x31c3))
	test.ExpectEquality(t, crc16(nil), uint16(0))

	var crc uint16
	for _, b := range []uint8{0x00, 0x01, 0x01, 0x03} {
		crc = crcAdd(crc, b)
	}
	test.ExpectEquality(t, crc, crc16([]uint8{0x00, 0x01, 0x01, 0x03}))
}

func TestParseTrack(t *testing.T) {
	var track []uint8
	gap := func(n int, v uint8) {
		for range n {
			track = append(track, v)
		}
	}

	gap(80, 0x4e)
	for s := range uint8(3) {
		gap(12, 0x00)
		gap(3, markSync)
		track = append(track, markID, 0x05, 0x01, s+1, 0x03, markCRC)
		gap(22, 0x4e)
		gap(12, 0x00)
		gap(3, markSync)
		track = append(track, markData)
		gap(1024, 0xe5+s)
		track = append(track, markCRC)
		gap(40, 0x4e)
	}

	// an ID field without a data field at the end of the track
	gap(12, 0x00)
	gap(3, markSync)
	track = append(track, markID, 0x05, 0x01, 0x04, 0x03, markCRC)
	gap(100, 0x4e)

	sectors := parseTrack(track)
	test.DemandEquality(t, len(sectors), 3)
	for i, s := range sectors {
		test.ExpectEquality(t, s.track, uint8(5))
		test.ExpectEquality(t, s.side, uint8(1))
		test.ExpectEquality(t, s.sector, uint8(i+1))
		test.ExpectEquality(t, len(s.data), 1024)
		test.ExpectEquality(t, s.data[0], 0xe5+uint8(i))
		test.ExpectEquality(t, s.data[1023], 0xe5+uint8(i))
	}
}
