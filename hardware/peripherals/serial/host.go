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

package serial

import (
	"github.com/pkg/term"
)

// the host device is always opened in raw mode with eight data bits and one
// stop bit. the framing selected by the control register is not applied to
// the host device
func openHost(pth string) (Port, error) {
	return term.Open(pth, term.Speed(DefaultBaud), term.RawMode)
}
