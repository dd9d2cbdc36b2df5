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

package logger

// Permission is the first argument of the logging functions. The log entry
// is only made if AllowLogging() returns true.
//
// The environment package implements the interface so that log entries made
// by test machines do not pollute the central log. Devices pass either their
// environment or the result of its Debug() function for chatty events.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the permission used by code that is not part of an emulation,
// such as the GUI or the command line tools.
var Allow Permission = allow{}
