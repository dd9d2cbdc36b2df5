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

package flo2_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/flo2"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/test"
)

const diskSize = flo2.NumTracks * flo2.NumSides * flo2.SectorsPerTrack * flo2.SectorSize

// drive A, 5.25" double density
const driveA = 0x21

func newFLO2(t *testing.T, withDisk bool) (*flo2.FLO2, string) {
	t.Helper()

	dir := t.TempDir()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(dir, prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	var cfg preferences.FloppyConfig
	var pth string
	if withDisk {
		pth = filepath.Join(dir, "disk.img")
		test.DemandSuccess(t, os.WriteFile(pth, make([]byte, diskSize), 0o644))
		cfg.Drives[0] = pth
	}

	flo := flo2.NewFLO2(env)
	flo.Reset(cfg)
	t.Cleanup(flo.End)

	flo.Write(uint8(addresses.FloDrive), driveA)

	return flo, pth
}

func command(flo *flo2.FLO2, cmd uint8) uint8 {
	flo.Write(uint8(addresses.FloCmd), cmd)
	return flo.Read(uint8(addresses.FloCmd))
}

func seek(flo *flo2.FLO2, track uint8) uint8 {
	flo.Write(uint8(addresses.FloData), track)
	return command(flo, flo2.CmdSeek)
}

func TestRestore(t *testing.T) {
	flo, _ := newFLO2(t, false)

	status := seek(flo, 40)
	test.ExpectEquality(t, status&flo2.StatusTrack0, uint8(0))
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloTrack)), uint8(40))

	status = command(flo, flo2.CmdRestore|flo2.FlagHeadLoad)
	test.ExpectEquality(t, status&flo2.StatusTrack0, uint8(flo2.StatusTrack0))
	test.ExpectEquality(t, status&flo2.StatusHeadLoaded, uint8(flo2.StatusHeadLoaded))
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloTrack)), uint8(0))

	// seeking to track zero also sets the track 0 bit
	seek(flo, 10)
	status = seek(flo, 0)
	test.ExpectEquality(t, status&flo2.StatusTrack0, uint8(flo2.StatusTrack0))

	// type I commands always complete with INTRQ
	flo.Write(uint8(addresses.FloCmd), flo2.CmdRestore)
	test.ExpectEquality(t, flo.INTRQ(), true)
	flo.Read(uint8(addresses.FloCmd))
	test.ExpectEquality(t, flo.INTRQ(), false)
}

func TestStepBounds(t *testing.T) {
	flo, _ := newFLO2(t, false)

	status := command(flo, flo2.CmdStepOutUpd)
	test.ExpectEquality(t, status&flo2.StatusSeekErr, uint8(flo2.StatusSeekErr))
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloTrack)), uint8(0))

	for range flo2.LastTrack {
		status = command(flo, flo2.CmdStepInUpd)
		test.ExpectEquality(t, status&flo2.StatusSeekErr, uint8(0))
	}
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloTrack)), uint8(flo2.LastTrack))

	// stepping in from the last track is an error and does not wrap
	status = command(flo, flo2.CmdStepInUpd)
	test.ExpectEquality(t, status&flo2.StatusSeekErr, uint8(flo2.StatusSeekErr))
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloTrack)), uint8(flo2.LastTrack))

	// step without update repeats the direction of the previous step and
	// does not change the track register
	status = command(flo, flo2.CmdStep)
	test.ExpectEquality(t, status&flo2.StatusSeekErr, uint8(flo2.StatusSeekErr))
	command(flo, flo2.CmdStepOut)
	status = command(flo, flo2.CmdStep)
	test.ExpectEquality(t, status&flo2.StatusSeekErr, uint8(0))
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloTrack)), uint8(flo2.LastTrack))

	// seeking beyond the last track is an error
	status = seek(flo, flo2.NumTracks)
	test.ExpectEquality(t, status&flo2.StatusSeekErr, uint8(flo2.StatusSeekErr))
}

func TestNoDisk(t *testing.T) {
	flo, _ := newFLO2(t, false)
	test.ExpectEquality(t, flo.Attached(0), false)

	flo.Write(uint8(addresses.FloSect), 1)
	flo.Write(uint8(addresses.FloCmd), flo2.CmdReadSect)
	test.ExpectEquality(t, flo.INTRQ(), true)
	test.ExpectEquality(t, flo.DRQ(), false)
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloDrive))&flo2.SelectINTRQ, uint8(flo2.SelectINTRQ))
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloCmd)), uint8(flo2.StatusNotFound|flo2.StatusDRQ))

	// no drive selected
	flo.Write(uint8(addresses.FloDrive), 0x00)
	test.ExpectEquality(t, command(flo, flo2.CmdReadSect), uint8(flo2.StatusNotFound|flo2.StatusDRQ))
}

func TestReadAddress(t *testing.T) {
	flo, _ := newFLO2(t, false)

	read := func() []uint8 {
		flo.Write(uint8(addresses.FloCmd), flo2.CmdReadAddress)
		test.DemandEquality(t, flo.DRQ(), true)
		var field []uint8
		for flo.DRQ() {
			field = append(field, flo.Read(uint8(addresses.FloData)))
		}
		return field
	}

	seek(flo, 12)
	a := read()
	test.DemandEquality(t, len(a), 6)
	test.ExpectEquality(t, a[0], uint8(12))
	test.ExpectEquality(t, a[1], uint8(0))
	test.ExpectEquality(t, a[2], uint8(0x01))
	test.ExpectEquality(t, a[3], uint8(0x03))
	test.ExpectEquality(t, flo.INTRQ(), true)

	b := read()
	test.DemandEquality(t, len(b), 6)
	for i := range a {
		test.ExpectEquality(t, a[i], b[i])
	}

	// a different side produces a different CRC
	flo.Write(uint8(addresses.FloDrive), driveA|0x80)
	c := read()
	test.DemandEquality(t, len(c), 6)
	test.ExpectEquality(t, c[1], uint8(1))
	test.ExpectInequality(t, uint16(a[4])<<8|uint16(a[5]), uint16(c[4])<<8|uint16(c[5]))
}

func TestSectorRoundTrip(t *testing.T) {
	flo, pth := newFLO2(t, true)
	test.ExpectEquality(t, flo.Attached(0), true)

	seek(flo, 3)
	flo.Write(uint8(addresses.FloDrive), driveA|0x80)
	flo.Write(uint8(addresses.FloSect), 2)

	flo.Write(uint8(addresses.FloCmd), flo2.CmdWriteSect)
	test.DemandEquality(t, flo.DRQ(), true)
	for i := range flo2.SectorSize {
		flo.Write(uint8(addresses.FloData), uint8(i*7))
	}
	test.ExpectEquality(t, flo.DRQ(), false)
	test.ExpectEquality(t, flo.INTRQ(), true)
	test.ExpectEquality(t, flo.Read(uint8(addresses.FloCmd)), uint8(0))

	flo.Write(uint8(addresses.FloCmd), flo2.CmdReadSect)
	test.DemandEquality(t, flo.DRQ(), true)
	for i := range flo2.SectorSize {
		test.ExpectEquality(t, flo.Read(uint8(addresses.FloData)), uint8(i*7), i)
	}
	test.ExpectEquality(t, flo.DRQ(), false)
	test.ExpectEquality(t, flo.INTRQ(), true)

	// the data is at the expected position in the image file
	flo.End()
	d, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	offset := ((3 * 5 * 2) + 5 + 1) * 1024
	test.ExpectEquality(t, d[offset+1], uint8(7))
	test.ExpectEquality(t, d[offset-1], uint8(0))
}

func TestVerify(t *testing.T) {
	flo, _ := newFLO2(t, false)

	status := command(flo, flo2.CmdRestore|flo2.FlagVerify)
	test.ExpectEquality(t, status&flo2.StatusCRCErr, uint8(0))

	// drive A with the drive type bits of an 8" drive
	flo.Write(uint8(addresses.FloDrive), 0x01)
	status = command(flo, flo2.CmdRestore|flo2.FlagVerify)
	test.ExpectEquality(t, status&flo2.StatusCRCErr, uint8(flo2.StatusCRCErr))

	flo.Write(uint8(addresses.FloDrive), 0x04)
	status = command(flo, flo2.CmdRestore|flo2.FlagVerify)
	test.ExpectEquality(t, status&flo2.StatusCRCErr, uint8(0))
}

// writeTrack supplies the raw data for the write track command. every sector
// has an ID field with the specified track and side and is filled with 0xa0
// plus the sector index
func writeTrack(flo *flo2.FLO2, track uint8, side uint8) {
	var n int
	put := func(v uint8, count int) {
		for range count {
			if n < flo2.TrackSize {
				flo.Write(uint8(addresses.FloData), v)
				n++
			}
		}
	}

	put(0x4e, 80)
	for s := range uint8(flo2.SectorsPerTrack) {
		put(0x00, 12)
		put(0xf5, 3)
		put(0xfe, 1)
		put(track, 1)
		put(side, 1)
		put(s+1, 1)
		put(0x03, 1)
		put(0xf7, 1)
		put(0x4e, 22)
		put(0x00, 12)
		put(0xf5, 3)
		put(0xfb, 1)
		put(0xa0+s, flo2.SectorSize)
		put(0xf7, 1)
		put(0x4e, 54)
	}
	put(0x4e, flo2.TrackSize)
}

func TestFormat(t *testing.T) {
	flo, _ := newFLO2(t, true)

	seek(flo, 7)
	flo.Write(uint8(addresses.FloCmd), flo2.CmdWriteTrack)
	test.DemandEquality(t, flo.DRQ(), true)

	writeTrack(flo, 7, 0)

	test.ExpectEquality(t, flo.DRQ(), false)
	test.ExpectEquality(t, flo.INTRQ(), true)

	for s := range uint8(flo2.SectorsPerTrack) {
		flo.Write(uint8(addresses.FloSect), s+1)
		flo.Write(uint8(addresses.FloCmd), flo2.CmdReadSect)
		test.ExpectEquality(t, flo.Read(uint8(addresses.FloData)), 0xa0+s)
		for flo.DRQ() {
			flo.Read(uint8(addresses.FloData))
		}
	}
}

func TestFormatIDField(t *testing.T) {
	flo, pth := newFLO2(t, true)

	// the head is on track 7 side 0 but the ID fields are for track 9 side 1
	seek(flo, 7)
	flo.Write(uint8(addresses.FloCmd), flo2.CmdWriteTrack)
	test.DemandEquality(t, flo.DRQ(), true)
	writeTrack(flo, 9, 1)
	test.ExpectEquality(t, flo.INTRQ(), true)

	flo.End()
	d, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)

	track9 := ((9 * 5 * 2) + 5) * flo2.SectorSize
	for s := range flo2.SectorsPerTrack {
		test.ExpectEquality(t, d[track9+s*flo2.SectorSize], uint8(0xa0+s), s)
	}

	// nothing is written under the head
	track7 := (7 * 5 * 2) * flo2.SectorSize
	test.ExpectEquality(t, d[track7], uint8(0))

	// ID fields outside of the disk are ignored
	flo, pth = newFLO2(t, true)
	flo.Write(uint8(addresses.FloCmd), flo2.CmdWriteTrack)
	writeTrack(flo, 0, 2)
	test.ExpectEquality(t, flo.INTRQ(), true)
	flo.End()
	d, err = os.ReadFile(pth)
	test.DemandSuccess(t, err)
	var written int
	for _, v := range d {
		if v != 0 {
			written++
		}
	}
	test.ExpectEquality(t, written, 0)
}
