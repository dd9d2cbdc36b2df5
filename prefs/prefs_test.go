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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("files.listing", &v))
	test.ExpectSuccess(t, v.Set("listing.txt"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "files.listing :: listing.txt\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	var x prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, dsk.Add("numberC", &x))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	// hex strings are accepted
	test.ExpectSuccess(t, x.Set("0xEC000"))
	test.ExpectEquality(t, x.Get().(int), 0xec000)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\nnumberC :: 966656\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoadMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("nkc.cpuSpeed", &v))
	test.ExpectSuccess(t, v.Set(8))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// saveOnFail creates the file with the current values
	test.ExpectSuccess(t, dsk.Load(true))
	cmpPrefsFile(t, fn, "nkc.cpuSpeed :: 8\n")
}

func TestLoadCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("nkc.waitStates", &v))
	test.ExpectSuccess(t, v.Set(3))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("nkc.waitStates::0")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestIntRange(t *testing.T) {
	var v prefs.Int
	v.SetRange(1, 8)

	test.ExpectSuccess(t, v.Set(4))
	test.ExpectFailure(t, v.Set(0))
	test.ExpectFailure(t, v.Set("9"))
	test.ExpectEquality(t, v.Get().(int), 4)

	// reset ignores the range
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0")
}
