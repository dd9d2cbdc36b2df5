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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// a group of preference values specified on the command line with the -prefs
// flag. values are consumed as they are applied to a Disk instance
type group map[string]string

// the string form of the group is the same as the form it was pushed with,
// except that the keys are sorted
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s []string
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, g[k]))
	}
	return strings.Join(s, "; ")
}

var commandLine struct {
	crit  sync.Mutex
	stack []group
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// The string is a list of key::value pairs separated by semicolons. Malformed
// pairs are ignored.
//
// The group affects every call to Disk.Load() until it is removed with
// PopCommandLineStack().
func PushCommandLineStack(prefs string) {
	g := make(group)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		g[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, g)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the values in the group that were never
// applied, usually because the key was misspelled.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}

	g := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]
	return g.String()
}

// GetCommandLinePref returns the value for key from the current group. The
// value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}

	g := commandLine.stack[n-1]
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}
	return false, nil
}
