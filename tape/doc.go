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

// Package tape converts between cassette images and audio recordings of
// cassettes.
//
// A cassette image is the raw byte stream seen by the CAS card. Audio
// recordings use the Kansas City Standard at 300 baud: a zero bit is four
// cycles of 1200Hz and a one bit is eight cycles of 2400Hz. Each byte is
// framed by one start bit (zero) and two stop bits (one) with the least
// significant data bit sent first. The line idles with one bits.
//
// Recordings can be imported from WAV or MP3 files. Cassette images are
// exported as 16bit mono WAV files.
package tape
