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

package environment

import (
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations, for example in tests.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created from the default preferences file. Providing a non-nil value
// allows more than one emulation to share preferences.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to create log entries unless the DebugLog preference
// is set.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation() || env.Prefs.DebugLog.Get().(bool)
}

// AllowDebugLogging returns true if chatty log entries, such as accesses to
// unmapped I/O ports, should be made.
func (env *Environment) AllowDebugLogging() bool {
	return env.Prefs.DebugLog.Get().(bool) && env.AllowLogging()
}

type debugPermission struct {
	env *Environment
}

func (p debugPermission) AllowLogging() bool {
	return p.env.AllowDebugLogging()
}

// Debug returns a logger.Permission that only allows logging when
// AllowDebugLogging() is true.
func (env *Environment) Debug() logger.Permission {
	return debugPermission{env: env}
}
