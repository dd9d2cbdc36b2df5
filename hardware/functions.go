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

package hardware

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
	"github.com/jetsetilly/nkc68k/version"
)

// The functions in this file are bound to the function keys of the host
// keyboard. They satisfy the userinput.Functions interface.

// the character size used by the overlay screen
const overlayCsize = 0x11

// ToggleOverlay shows or hides the overlay screen. The emulation is paused
// while the overlay screen is shown.
func (nkc *NKC) ToggleOverlay() {
	if nkc.GDP.InOverlay() {
		nkc.GDP.CloseOverlay()
		return
	}
	nkc.GDP.OpenOverlay()
	nkc.GDP.DrawString(8, 240, overlayCsize, nkc.overlayText())
}

func (nkc *NKC) overlayText() string {
	var s strings.Builder

	name := func(pth string) string {
		if pth == "" {
			return "-"
		}
		return filepath.Base(pth)
	}

	v, _, _ := version.Version()
	fmt.Fprintf(&s, "%s %s\n\n", version.ApplicationName, v)

	tc := nkc.env.Prefs.Timing()
	fmt.Fprintf(&s, "CPU %dMHz  WAIT %d  MEASURED %.2fMHz\n", tc.CPUSpeed, tc.WaitStates, nkc.Throttle.Measured())
	fmt.Fprintf(&s, "PC %06X  IRQ %d  TRACE %v\n\n", nkc.CPU.PC(), nkc.IRQ.Level(), nkc.Trace)

	fc := nkc.env.Prefs.Floppy()
	for i := range preferences.NumDrives {
		fmt.Fprintf(&s, "DRIVE %c %s\n", 'A'+i, name(fc.Drives[i]))
	}

	fmt.Fprintf(&s, "\nCASSETTE %s AT %d\n", name(nkc.env.Prefs.Cassette().Path), nkc.CAS.Tell())
	for i, r := range nkc.CAS.Recordings() {
		// the overlay page has space for a limited number of lines
		if i >= 8 {
			fmt.Fprintf(&s, "  ...\n")
			break
		}
		fmt.Fprintf(&s, "  %s\n", strings.ToUpper(r.String()))
	}

	fmt.Fprintf(&s, "LISTING %s\n", name(nkc.env.Prefs.Listing().Path))
	fmt.Fprintf(&s, "PROMER %s\n", name(nkc.env.Prefs.Prom().Path))
	fmt.Fprintf(&s, "\nF1 CLOSE  F2 REWIND  F3 RESET  F4 TRACE")

	return s.String()
}

// RewindTape rewinds the cassette to the beginning.
func (nkc *NKC) RewindTape() error {
	return nkc.CAS.Rewind()
}

// ToggleTrace turns instruction tracing on or off. Returns the new state.
func (nkc *NKC) ToggleTrace() bool {
	nkc.Trace = !nkc.Trace
	logger.Logf(nkc.env, "nkc", "trace: %v", nkc.Trace)
	return nkc.Trace
}
