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

package centronics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/centronics"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

func print(cen *centronics.Centronics, s string) {
	for _, c := range []uint8(s) {
		cen.Write(uint8(addresses.CentData), c)
		cen.Write(uint8(addresses.CentStrobe), 0xff)
		cen.Write(uint8(addresses.CentStrobe), 0xfe)
	}
}

func TestListing(t *testing.T) {
	dir := t.TempDir()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(dir, prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	cfg := preferences.FileConfig{Path: filepath.Join(dir, "listing.txt")}

	cen := centronics.NewCentronics(env)
	cen.Reset(cfg)
	t.Cleanup(cen.End)

	print(cen, "HELLO\r\n")
	test.ExpectEquality(t, cen.Read(uint8(addresses.CentStrobe)), 0x00)
	test.ExpectEquality(t, cen.Read(uint8(addresses.CentData)), 0x00)

	// the data register is cleared by every strobe so a second strobe prints
	// nothing
	cen.Write(uint8(addresses.CentStrobe), 0xfe)

	d, err := os.ReadFile(cfg.Path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "HELLO\r\n")

	// reset rewinds the listing
	cen.Reset(cfg)
	print(cen, "J")
	d, err = os.ReadFile(cfg.Path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "JELLO\r\n")
}

func TestNoListing(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	cen := centronics.NewCentronics(env)
	cen.Reset(preferences.FileConfig{})
	print(cen, "HELLO")
	test.ExpectEquality(t, cen.Read(uint8(addresses.CentStrobe)), 0x00)
}
