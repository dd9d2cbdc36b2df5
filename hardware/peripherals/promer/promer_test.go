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

package promer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

func newPromer(t *testing.T, contents []uint8) (*Promer, string) {
	t.Helper()

	dir := t.TempDir()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(dir, prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	pth := filepath.Join(dir, "eprom.bin")
	test.DemandSuccess(t, os.WriteFile(pth, contents, 0o644))

	prm := NewPromer(env)
	prm.Reset(preferences.FileConfig{Path: pth})
	t.Cleanup(prm.End)
	return prm, pth
}

func setAddress(prm *Promer, adr uint16, mode uint8) {
	prm.Write(uint8(addresses.PromAddrL), uint8(adr))
	prm.Write(uint8(addresses.PromAddrH), uint8(adr>>8)|mode)
}

func TestRead(t *testing.T) {
	prm, _ := newPromer(t, []uint8{0x10, 0x20, 0x30, 0x40})

	setAddress(prm, 2, 0)
	test.ExpectEquality(t, prm.Read(uint8(addresses.PromData)), 0x30)
	test.ExpectEquality(t, prm.LED(), true)

	// beyond the end of the file
	setAddress(prm, 4, HighLEDOff)
	test.ExpectEquality(t, prm.Read(uint8(addresses.PromData)), Erased)
	test.ExpectEquality(t, prm.LED(), false)

	// data can not be read in write mode
	setAddress(prm, 0, HighWrite)
	test.ExpectEquality(t, prm.Read(uint8(addresses.PromData)), Erased)

	test.ExpectEquality(t, prm.Read(uint8(addresses.PromAddrH)), 0x00)
}

func TestProgram(t *testing.T) {
	prm, pth := newPromer(t, []uint8{0xff, 0xf0, 0xff, 0xff})

	n := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prm.now = func() time.Time { return n }

	test.ExpectEquality(t, prm.Read(uint8(addresses.PromAddrL)), StatusDone)

	// programming only clears bits
	prm.Write(uint8(addresses.PromData), 0x3c)
	setAddress(prm, 1, HighWrite|HighProgram)
	test.ExpectEquality(t, prm.Read(uint8(addresses.PromAddrL)), StatusBusy)

	n = n.Add(ProgramTime)
	test.ExpectEquality(t, prm.Read(uint8(addresses.PromAddrL)), StatusDone)

	// a programming pulse in read mode changes nothing
	prm.Write(uint8(addresses.PromData), 0x00)
	setAddress(prm, 2, HighProgram)

	// beyond the end of the file is ignored and the file is not extended
	setAddress(prm, 0x10, HighWrite|HighProgram)

	d, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 4)
	test.ExpectEquality(t, d[1], 0x30)
	test.ExpectEquality(t, d[2], 0xff)

	setAddress(prm, 1, 0)
	test.ExpectEquality(t, prm.Read(uint8(addresses.PromData)), 0x30)
}

func TestAddress(t *testing.T) {
	prm, _ := newPromer(t, []uint8{0x00})

	// only five bits of the high address are used
	prm.Write(uint8(addresses.PromAddrL), 0xff)
	prm.Write(uint8(addresses.PromAddrH), 0x1f|HighLEDOff)
	test.ExpectEquality(t, prm.adr, 0x1fff)
	test.ExpectEquality(t, prm.read, true)
	test.ExpectEquality(t, prm.led, false)
}
