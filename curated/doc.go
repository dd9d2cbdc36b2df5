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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that return errors
// that the caller might want to act on export the pattern as a constant. For
// example, the memory package exports the pattern used when the boot ROM
// cannot be loaded:
//
//	const BootROMError = "memory: boot rom: %v"
//
//	err := curated.Errorf(BootROMError, "file not found")
//
// The Is() function checks whether an error was created with a pattern:
//
//	if curated.Is(err, memory.BootROMError) {
//		fmt.Println("no boot rom")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. An error that has been wrapped by a caller is no longer Is()
// the original pattern but it still Has() it:
//
//	f := curated.Errorf("nkc: %v", err)
//
//	curated.Is(f, memory.BootROMError)  // false
//	curated.Has(f, memory.BootROMError) // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Errors from the standard library or third-party
// packages are 'uncurated' and are usually unexpected.
//
// Error chains are parts separated by the sub-string ': '. The Error()
// function removes duplicate adjacent parts from the chain so that each level
// of a program can wrap an error with its own prefix without worrying whether
// the level below has done the same. An error created by the FLO2 controller
// and wrapped twice with the same prefix:
//
//	e := curated.Errorf("flo2: drive %c not ready", 'A')
//	e = curated.Errorf("flo2: %v", e)
//
// prints as:
//
//	flo2: drive A not ready
package curated
