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

package bankboot_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/memory/bus"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/bankboot"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

func TestLatch(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	var l bus.Latch = bankboot.NewBankBoot(env)
	bb := l.(*bankboot.BankBoot)

	bb.Reset(preferences.MemoryConfig{BankBoot: true})
	test.ExpectSuccess(t, l.BootEnabled())
	test.ExpectEquality(t, bb.Read(uint8(addresses.BankBoot)), 0)

	bb.Write(uint8(addresses.BankBoot), 0x00)
	test.ExpectFailure(t, l.BootEnabled())

	// reset enables the card again
	bb.Reset(preferences.MemoryConfig{BankBoot: true})
	test.ExpectSuccess(t, l.BootEnabled())

	bb.Reset(preferences.MemoryConfig{BankBoot: false})
	test.ExpectFailure(t, l.BootEnabled())
	test.ExpectEquality(t, bb.String(), "not present")
}
