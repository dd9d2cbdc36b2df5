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

package paths

import (
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The directory
// part of the path is created if it does not exist.
//
// The last argument is considered to be the filename part of the resource
// and is not created. It can be the empty string, in which case the returned
// path is the directory only.
func ResourcePath(resource ...string) (string, error) {
	var subPth string
	var fn string

	switch len(resource) {
	case 0:
	case 1:
		fn = resource[0]
	default:
		subPth = filepath.Join(resource[:len(resource)-1]...)
		fn = resource[len(resource)-1]
	}

	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}

	return filepath.Join(base, fn), nil
}
