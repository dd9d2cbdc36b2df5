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

// Special values in the raw data of the write track command.
const (
	// writes an A1 sync byte with a missing clock transition
	markSync = 0xf5

	// ID address mark. followed by track, side, sector and size code
	markID = 0xfe

	// data address mark. followed by the data field
	markData = 0xfb

	// writes the two CRC bytes
	markCRC = 0xf7
)

// formattedSector is a sector found in the raw data of the write track
// command.
type formattedSector struct {
	track  uint8
	side   uint8
	sector uint8
	data   []uint8
}

// an address mark must be preceded by a sync byte in MFM. single density
// tracks have no sync bytes and the mark follows the zero bytes of the gap
func isMark(track []uint8, i int, mark uint8) bool {
	if track[i] != mark || i == 0 {
		return false
	}
	return track[i-1] == markSync || track[i-1] == 0x00
}

// parseTrack searches the raw track data for sectors. A sector is an ID field
// followed by a data field with a length equal to that given by the size code
// of the ID field. Incomplete sectors at the end of the track are ignored.
func parseTrack(track []uint8) []formattedSector {
	var sectors []formattedSector

	i := 0
	for i < len(track) {
		if !isMark(track, i, markID) || i+4 >= len(track) {
			i++
			continue
		}

		s := formattedSector{
			track:  track[i+1],
			side:   track[i+2],
			sector: track[i+3],
		}
		size := 128 << (track[i+4] & 0x03)
		i += 5

		// find the data mark belonging to this ID field. another ID mark
		// before the data mark means the ID field has no data
		for i < len(track) && !isMark(track, i, markData) && !isMark(track, i, markID) {
			i++
		}
		if i >= len(track) || track[i] != markData {
			continue
		}
		i++

		if i+size > len(track) {
			break
		}
		s.data = track[i : i+size]
		sectors = append(sectors, s)
		i += size
	}

	return sectors
}
