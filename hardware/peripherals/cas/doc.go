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

// Package cas implements the CAS cassette interface. The interface is built
// around a Motorola 6850 ACIA which serialises data to and from the tape.
//
// The tape is emulated by a file of raw bytes, as they would be received by
// the ACIA. The interface is always ready to transmit and always has data
// available. Reading beyond the end of the tape returns 0xff, which is the
// value of the filler bytes between recordings.
//
// The package also provides an index of the recordings on a tape. A
// recording begins with a run of filler bytes followed by a slash and the
// name of the recording terminated by a carriage return.
package cas
