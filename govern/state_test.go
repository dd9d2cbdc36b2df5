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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/nkc68k/govern"
	"github.com/jetsetilly/nkc68k/test"
)

func TestStateIntegrity(t *testing.T) {
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Running, govern.Normal))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Paused, govern.PausedOverlay))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Paused, govern.PausedHalted))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Running, govern.PausedOverlay))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Ending, govern.PausedHalted))
}
