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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a command line argument that selects what the
// program does and each mode has its own set of flags. The nkc68k command has
// the modes RUN, HEADLESS, PERFORMANCE, TAPE, DUMP and VERSION, with RUN being
// the default.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "TAPE")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse() the selected mode is returned by Mode(). If the first argument
// after the flags is not one of the sub-modes then the first sub-mode in the
// list is selected. Sub-mode comparisons are case insensitive and Mode()
// always returns the upper case name.
//
// Each mode then calls NewMode() to start a new set of flags and parses again:
//
//	md.NewMode()
//	frames := md.AddInt("frames", 50, "number of frames to run before dumping")
//	p, err = md.Parse()
//
// Modes can be nested as deeply as required. The TAPE mode has the sub-modes
// LIST, IMPORT and EXPORT. The arguments for the final mode are available
// through RemainingArgs() and GetArg() after the last call to Parse():
//
//	md.NewMode()
//	md.AddSubModes("LIST", "IMPORT", "EXPORT")
//	_, _ = md.Parse()
//	md.NewMode()
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "IMPORT":
//		tape.Import(md.GetArg(0), md.GetArg(1))
//	}
//
// Path() returns every mode selected so far joined with a slash. For example,
// "TAPE/IMPORT". The Modes type implements fmt.Stringer with the same value.
//
// A -help flag is handled automatically. The usage of the flags is printed
// to the Output writer with the list of sub-modes and any text given to
// AdditionalHelp().
package modalflag
