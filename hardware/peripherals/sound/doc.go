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

// Package sound implements the SOUND card of the NKC, built around a General
// Instruments AY-3-8912. The chip has three square wave tone generators, a
// single noise generator and a single envelope generator. Each of the three
// channels mixes tone and noise and uses either a fixed volume or the
// envelope. The I/O port of the chip is not connected on the SOUND card.
//
// The card is accessed through an address register and a data register. The
// address register selects which of the sixteen chip registers is accessed
// through the data register.
//
// The output of the chip is generated in blocks of samples at SampleRate.
// Each block is sent to every attached Mixer.
package sound
