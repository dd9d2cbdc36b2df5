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

// Package timing synchronises the NKC emulation with real time. It has three
// parts.
//
// The Interrupts type collates the interrupt requests of the devices. Only
// the highest level is presented to the CPU.
//
// The Coordinator produces the 50Hz vertical sync signal of the GDP64 from
// wall-clock time. Depending on the configuration, the vsync signal also
// generates an interrupt. The Coordinator also calls the service function,
// which handles user input and redraws the display, every 10ms.
//
// The Throttle converts executed CPU cycles into emulated time and sleeps
// for the difference between emulated and real time. The throttle is also
// where the effective speed of the emulation is measured.
package timing
