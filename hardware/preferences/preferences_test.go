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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	tm := p.Timing()
	test.ExpectEquality(t, tm.CPUSpeed, 8)
	test.ExpectEquality(t, tm.WaitStates, 3)
	test.ExpectFailure(t, tm.Turbo)
	test.ExpectFailure(t, tm.VsyncINT)
	test.ExpectSuccess(t, tm.VsyncNMI)

	mem := p.Memory()
	test.ExpectSuccess(t, mem.BankBoot)
	test.ExpectEquality(t, mem.Col256Base, uint32(0xec000))
	test.ExpectEquality(t, len(mem.ROMs), 0)

	// the preferences file is created on first use
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestLoadFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	data := strings.Join([]string{
		prefs.WarningBoilerPlate,
		"disk.b :: jados.dsk",
		"files.rom0 :: grundprogramm.bin",
		"files.rom0addr :: 0xE0000",
		"key.dip :: 0x81",
		"nkc.cpuSpeed :: 20",
		"",
	}, "\n")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Timing().CPUSpeed, 20)
	test.ExpectEquality(t, p.Key().DIP, uint8(0x81))
	test.ExpectEquality(t, p.Floppy().Drives[0], "")
	test.ExpectEquality(t, p.Floppy().Drives[1], "jados.dsk")

	mem := p.Memory()
	test.DemandEquality(t, len(mem.ROMs), 1)
	test.ExpectEquality(t, mem.ROMs[0].Path, "grundprogramm.bin")
	test.ExpectEquality(t, mem.ROMs[0].Addr, uint32(0xe0000))
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("nkc.turbo::true; files.cassette::tape.cas")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Timing().Turbo)
	test.ExpectEquality(t, p.Cassette().Path, "tape.cas")
}

func TestOutOfRange(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	data := strings.Join([]string{
		prefs.WarningBoilerPlate,
		"gdp.xmag :: 0",
		"",
	}, "\n")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	_, err := preferences.NewPreferencesFromFile(fn)
	test.ExpectFailure(t, err)
}
