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

package test

import (
	"strings"
	"sync"
)

// CompareWriter implements the io.Writer interface. It captures output so that
// it can be compared with an expected string. It is safe to write to from
// more than one goroutine, which is useful when capturing the echo of the log.
type CompareWriter struct {
	crit   sync.Mutex
	buffer strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer.Reset()
}

// Compare buffered output with expected string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}

// Contains returns true if the expected string appears anywhere in the
// buffered output.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.String(), s)
}

func (tw *CompareWriter) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.String()
}
