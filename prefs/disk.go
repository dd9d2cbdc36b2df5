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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/nkc68k/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile is returned by Load() when the preferences file does not exist.
const NoPrefsFile = "prefs: file does not exist (%s)"

// the separator between key and value in the preferences file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: illegal character in key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	// merge with existing entries in the file. a different Disk instance may
	// have written values to the same file
	data, err := dsk.read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf("prefs: %v", err)
	}
	if data == nil {
		data = make(map[string]string)
	}
	for k, v := range dsk.entries {
		data[k] = v.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if !isDefunct(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	w.WriteString(WarningBoilerPlate)
	w.WriteString("\n")
	for _, k := range keys {
		w.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, data[k]))
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. The saveOnFail argument causes the
// current values to be saved to disk if the file does not exist.
//
// Values in the current command line group (see PushCommandLineStack())
// override values on disk.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("prefs: %v", err)
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		} else {
			dsk.applyCommandLine()
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
	}

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return dsk.applyCommandLine()
}

func (dsk *Disk) applyCommandLine() error {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}
	return nil
}

// read the preferences file into a map of keys to unparsed values.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line is the warning boilerplate
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid preferences file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		data[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}
