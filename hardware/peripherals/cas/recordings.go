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

package cas

import (
	"bufio"
	"fmt"
	"io"
)

// Recording is an entry in the index of recordings on a tape.
type Recording struct {
	Name  string
	Start int64
}

func (r Recording) String() string {
	return fmt.Sprintf("%s (%d)", r.Name, r.Start)
}

// Limits of the recordings index.
const (
	MaxRecordings = 100
	MaxNameLength = 99
)

// Byte values that are significant in a tape image.
const (
	nameMarker = 0x2f
	nameEnd    = 0x0d
)

// the number of filler bytes before the start of a recording that are
// considered to be part of the recording
const maxLeadIn = 40

// the two bytes before the name marker are part of the recording header
const headerLength = 2

// FindRecordings scans the tape image for recordings. The position of the
// io.ReaderAt is not changed.
func FindRecordings(tape io.ReaderAt) ([]Recording, error) {
	r := bufio.NewReader(io.NewSectionReader(tape, 0, 1<<62))

	var recordings []Recording
	var pos int64
	var filler int64

	next := func() (uint8, error) {
		b, err := r.ReadByte()
		if err == nil {
			pos++
		}
		return b, err
	}

	for {
		b, err := next()
		if err == io.EOF {
			return recordings, nil
		}
		if err != nil {
			return recordings, err
		}

		switch b {
		case Filler:
			filler++
		case nameMarker:
			name, ok, err := readName(next)
			if err != nil && err != io.EOF {
				return recordings, err
			}
			if ok && len(recordings) < MaxRecordings {
				recordings = append(recordings, Recording{
					Name:  name,
					Start: max(0, pos-int64(len(name)+1)-headerLength-min(filler, maxLeadIn)),
				})
			}
			filler = 0
			if err == io.EOF {
				return recordings, nil
			}
		case 0x00, 0x27:
			// bytes that can appear in the lead-in
		default:
			filler = 0
		}
	}
}

// readName reads the name of a recording. A name that is too long is
// truncated. Returns false if the end of the tape is reached before the end
// of the name.
func readName(next func() (uint8, error)) (string, bool, error) {
	var name []uint8
	for {
		b, err := next()
		if err != nil {
			return "", false, err
		}
		if b == nameEnd {
			return string(name), true, nil
		}
		if len(name) == MaxNameLength {
			return string(name), true, nil
		}
		name = append(name, b)
	}
}
