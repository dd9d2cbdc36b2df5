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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

func TestLogging(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectSuccess(t, main.AllowLogging())
	test.ExpectFailure(t, main.AllowDebugLogging())

	other, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.IsMainEmulation())
	test.ExpectSuccess(t, other.IsEmulation("test"))
	test.ExpectFailure(t, other.AllowLogging())

	test.DemandSuccess(t, p.DebugLog.Set(true))
	test.ExpectSuccess(t, other.AllowLogging())
	test.ExpectSuccess(t, main.AllowDebugLogging())
}

func TestDebugPermission(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, env.Debug().AllowLogging())

	test.DemandSuccess(t, p.DebugLog.Set(true))
	test.ExpectSuccess(t, env.Debug().AllowLogging())
}
