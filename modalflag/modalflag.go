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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes handles command line arguments for programs with more than one mode
// of operation. The Output field should be set before calling Parse() or help
// messages will not be seen.
type Modes struct {
	Output io.Writer

	// a new flagset is created on every call to NewMode()
	flags *flag.FlagSet

	// the full argument list and the index of the first argument not yet
	// consumed by a sub-mode
	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). upper case with the default
	// sub-mode first
	subModes []string

	// every mode selected so far. never reset
	path []string

	// printed after the flag and sub-mode information when help is requested.
	// reset by NewMode()
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode joined with a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed. Usually os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode starts a new set of flags and sub-modes. Arguments that have been
// consumed by earlier sub-modes are not seen again.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp sets help text to be displayed in addition to the regular
// help on available flags. Used by modes that take a fixed list of arguments.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were added then
	// Mode() returns the selected mode.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed. The caller should exit without
	// printing anything further.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse flags and select the sub-mode, if any sub-modes have been added. The
// first argument after the flags selects the sub-mode. If it doesn't match
// any sub-mode then the default sub-mode is selected and the argument is left
// for the next call to Parse().
//
// An unrecognised flag is an error unless sub-modes have been added, in which
// case the default sub-mode is selected and the flag is left for the
// sub-mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		if slices.Contains(md.subModes, arg) {
			mode = arg
			md.argsIdx = len(md.args) - md.flags.NArg() + 1
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the flags. If a sub-mode was
// selected by name then the name is included. Call NewMode() and Parse() again
// to consume the sub-mode name.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs().
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The first
// sub-mode added is the default. Sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
