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

package ioe_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/ioe"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

func newIOE(t *testing.T) *ioe.IOE {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)
	io := ioe.NewIOE(env)
	io.Reset()
	return io
}

var (
	portA = uint8(addresses.IOEPortA)
	portB = uint8(addresses.IOEPortB)
)

func TestKeys(t *testing.T) {
	io := newIOE(t)

	test.ExpectEquality(t, io.Read(portA), 0xff)
	test.ExpectEquality(t, io.Read(portB), 0x00)

	io.Press(ioe.Up | ioe.Button)
	test.ExpectEquality(t, io.Read(portA), 0xeb)
	test.ExpectEquality(t, io.Read(portB), 0x14)

	io.Release(ioe.Up)
	test.ExpectEquality(t, io.Read(portA), 0xef)
	test.ExpectEquality(t, io.Read(portB), 0x10)

	io.Reset()
	test.ExpectEquality(t, io.Read(portB), 0x00)
}

func TestJoystick(t *testing.T) {
	io := newIOE(t)

	io.Axis(ioe.PortB, 0, 20000)
	test.ExpectEquality(t, io.Read(portB), ioe.Right)
	test.ExpectEquality(t, io.Read(portA), 0xff)

	io.Axis(ioe.PortB, 1, -20000)
	test.ExpectEquality(t, io.Read(portB), ioe.Right|ioe.Up)

	// small movements are ignored
	io.Axis(ioe.PortB, 1, -5000)
	test.ExpectEquality(t, io.Read(portB), ioe.Right)
	io.Axis(ioe.PortB, 0, 0)
	test.ExpectEquality(t, io.Read(portB), 0x00)

	io.JoystickButton(ioe.PortA, 2, true)
	test.ExpectEquality(t, io.Read(portA), 0xbf)
	io.JoystickButton(ioe.PortA, 2, false)
	test.ExpectEquality(t, io.Read(portA), 0xff)

	// out of range buttons and axes
	io.JoystickButton(ioe.PortA, 4, true)
	io.Axis(ioe.PortA, 2, 20000)
	test.ExpectEquality(t, io.Read(portA), 0xff)
}

func TestOutput(t *testing.T) {
	io := newIOE(t)
	io.Write(portA, 0x12)
	io.Write(portB, 0x34)
	test.ExpectEquality(t, io.Output(ioe.PortA), 0x12)
	test.ExpectEquality(t, io.Output(ioe.PortB), 0x34)

	// outputs do not affect inputs
	test.ExpectEquality(t, io.Read(portA), 0xff)
	test.ExpectEquality(t, io.Read(portB), 0x00)
}
