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

// Package test bundles a number of helper functions that remove common
// boilerplate from the tests of the emulator packages.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions use t.Fatalf() and should be used when the
// value being tested is needed for the remainder of the test.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the
// nil type because it is not obvious. The nil type is considered a success.
// This is because of how errors usually work in Go, with nil indicating no
// error.
//
// The CompareWriter type implements io.Writer and is used to capture output,
// for example the help text of the modalflag package.
package test
