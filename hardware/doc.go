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

// Package hardware is the base package for the NKC emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NKC type is the root of the emulation and contains references to the
// CPU, the memory bus and every peripheral card. Peripherals are connected
// to the I/O page of the memory bus through a static port table that is
// built once, when the NKC is created.
//
// From here the emulation can either be started to run continuously, with a
// callback to check for continuation, or it can be stepped one instruction at
// a time. The timing coordinator is advanced after every instruction. Real
// time is reconciled with emulated time once per slice of SliceCycles CPU
// cycles.
package hardware
