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

package flo2

import (
	"fmt"
	"os"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// Disk geometry.
const (
	SectorSize      = 1024
	TrackSize       = 6600
	NumTracks       = 80
	LastTrack       = NumTracks - 1
	SectorsPerTrack = 5
	NumSides        = 2
)

// Status bits after a type I command (restore, seek and step).
const (
	StatusNotReady   = 0x80
	StatusReadOnly   = 0x40
	StatusHeadLoaded = 0x20
	StatusSeekErr    = 0x10
	StatusCRCErr     = 0x08
	StatusTrack0     = 0x04
	StatusIndex      = 0x02
	StatusBusy       = 0x01
)

// Status bits after a type II or type III command (read and write).
const (
	StatusNotFound = 0x10
	StatusDataLoss = 0x04
	StatusDRQ      = 0x02
)

// Command values. Only the upper nibble of a command is used for selection.
// The lower nibble contains the command flags.
const (
	CmdRestore      = 0x00
	CmdSeek         = 0x10
	CmdStep         = 0x20
	CmdStepUpd      = 0x30
	CmdStepIn       = 0x40
	CmdStepInUpd    = 0x50
	CmdStepOut      = 0x60
	CmdStepOutUpd   = 0x70
	CmdReadSect     = 0x80
	CmdReadSectMult = 0x90
	CmdWriteSect    = 0xa0
	CmdWriteMult    = 0xb0
	CmdReadAddress  = 0xc0
	CmdForceInt     = 0xd0
	CmdReadTrack    = 0xe0
	CmdWriteTrack   = 0xf0
)

// Flags in the lower nibble of type I commands.
const (
	FlagHeadLoad = 0x08
	FlagVerify   = 0x04
)

// Drive type bits in the drive select register.
const (
	driveTypeMask = 0x30
	DriveMiniSD   = 0x30
	DriveMiniDD   = 0x20
	DriveMaxiSD   = 0x10
	DriveMaxiDD   = 0x00
)

// Bits in the value read from the drive select register.
const (
	SelectDRQ      = 0x80
	SelectINTRQ    = 0x40
	SelectHeadDown = 0x20
)

// size of the address field returned by the read address command
const addressFieldSize = 6

// FLO2 implements the bus.Device interface.
type FLO2 struct {
	env *environment.Environment

	status   uint8
	track    uint8
	sector   uint8
	dataword uint8

	// the value most recently written to the drive select register
	drive uint8

	// index of the selected drive. -1 if no drive is selected
	activeDrive int
	side        uint8

	// the track the head is positioned over. the track register is a
	// separate value that is not updated by every step command
	headTrack uint8

	data      [SectorSize]uint8
	trackData [TrackSize]uint8
	offset    int
	dataSize  int

	headDown   bool
	stepIn     bool
	intrq      bool
	drq        bool
	writeTrack bool

	drives [preferences.NumDrives]*os.File
}

// NewFLO2 is the preferred method of initialisation for the FLO2 type. The
// drives are opened when Reset() is called.
func NewFLO2(env *environment.Environment) *FLO2 {
	return &FLO2{
		env:         env,
		activeDrive: -1,
		dataSize:    SectorSize,
	}
}

func (flo *FLO2) String() string {
	return fmt.Sprintf("status=%#02x drive=%d side=%d head=%d track=%d sector=%d drq=%v intrq=%v",
		flo.status, flo.activeDrive, flo.side, flo.headTrack, flo.track, flo.sector, flo.drq, flo.intrq)
}

// Ports returns the list of ports used by the controller.
func (flo *FLO2) Ports() []addresses.Port {
	return []addresses.Port{
		addresses.FloCmd, addresses.FloTrack, addresses.FloSect,
		addresses.FloData, addresses.FloDrive,
	}
}

// Reset the controller. Any open disk images are closed and the images
// named in the configuration are opened.
func (flo *FLO2) Reset(cfg preferences.FloppyConfig) {
	flo.status = 0
	flo.activeDrive = 0
	flo.dataSize = SectorSize
	flo.offset = 0
	flo.headDown = false
	flo.stepIn = false
	flo.intrq = false
	flo.drq = false
	flo.writeTrack = false

	flo.End()
	for i, pth := range cfg.Drives {
		if pth != "" {
			flo.open(i, pth)
		}
	}
}

// End closes all disk images.
func (flo *FLO2) End() {
	for i, f := range flo.drives {
		if f != nil {
			f.Close()
			flo.drives[i] = nil
		}
	}
}

func (flo *FLO2) open(drive int, pth string) {
	f, err := os.OpenFile(pth, os.O_RDWR, 0)
	if err != nil {
		logger.Logf(flo.env, "flo2", "disk image for drive %c: %v", 'A'+drive, err)
		return
	}
	flo.drives[drive] = f

	if st, err := f.Stat(); err == nil {
		logger.Logf(flo.env, "flo2", "%s opened as drive %c, size %dKB", pth, 'A'+drive, st.Size()/1024)
	}
}

// Attached returns true if a disk image is open for the drive.
func (flo *FLO2) Attached(drive int) bool {
	return drive >= 0 && drive < len(flo.drives) && flo.drives[drive] != nil
}

// INTRQ returns the state of the interrupt request flag.
func (flo *FLO2) INTRQ() bool {
	return flo.intrq
}

// DRQ returns the state of the data request flag.
func (flo *FLO2) DRQ() bool {
	return flo.drq
}

// Read implements the bus.Device interface.
func (flo *FLO2) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.FloCmd:
		flo.intrq = false
		return flo.status
	case addresses.FloTrack:
		return flo.track
	case addresses.FloSect:
		return flo.sector
	case addresses.FloData:
		return flo.readData()
	case addresses.FloDrive:
		var v uint8
		if flo.headDown {
			v |= SelectHeadDown
		}
		if flo.intrq {
			v |= SelectINTRQ
		}
		if flo.drq {
			v |= SelectDRQ
		}
		return v
	}
	return 0
}

// Write implements the bus.Device interface.
func (flo *FLO2) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.FloCmd:
		flo.command(data)
	case addresses.FloTrack:
		flo.track = data
	case addresses.FloSect:
		flo.sector = data
	case addresses.FloData:
		flo.writeData(data)
	case addresses.FloDrive:
		flo.selectDrive(data)
	}
}

func (flo *FLO2) selectDrive(data uint8) {
	switch data & 0x0f {
	case 0x00:
		flo.activeDrive = -1
	case 0x01:
		flo.activeDrive = 0
	case 0x02:
		flo.activeDrive = 1
	case 0x04:
		flo.activeDrive = 2
	case 0x08:
		flo.activeDrive = 3
	default:
		flo.activeDrive = -1
		logger.Logf(flo.env, "flo2", "unsupported drive select %#02x", data)
	}

	if data&0x80 == 0x80 {
		flo.side = 1
	} else {
		flo.side = 0
	}
	flo.drive = data
}

func (flo *FLO2) command(data uint8) {
	flo.status = 0
	flo.intrq = false

	switch data & 0xf0 {
	case CmdRestore:
		flo.headTrack = 0
		flo.track = 0
		flo.typeI(data)
	case CmdSeek:
		if flo.dataword > LastTrack {
			flo.status |= StatusSeekErr
		} else {
			flo.headTrack = flo.dataword
			flo.track = flo.dataword
		}
		flo.typeI(data)
	case CmdStep, CmdStepUpd:
		flo.step(flo.stepIn, data&0x10 == 0x10)
		flo.typeI(data)
	case CmdStepIn, CmdStepInUpd:
		flo.stepIn = true
		flo.step(true, data&0x10 == 0x10)
		flo.typeI(data)
	case CmdStepOut, CmdStepOutUpd:
		flo.stepIn = false
		flo.step(false, data&0x10 == 0x10)
		flo.typeI(data)
	case CmdReadSect:
		flo.readSector()
		flo.headDown = true
	case CmdWriteSect:
		flo.writeTrack = false
		flo.offset = 0
		flo.drq = true
		flo.headDown = true
	case CmdReadAddress:
		flo.readAddress()
		flo.headDown = true
	case CmdWriteTrack:
		flo.writeTrack = true
		flo.offset = 0
		flo.drq = true
		flo.headDown = true
	case CmdReadSectMult, CmdWriteMult, CmdReadTrack:
		logger.Logf(flo.env.Debug(), "flo2", "unsupported command %#02x", data)
		flo.headDown = true
	case CmdForceInt:
		flo.drq = false
		flo.intrq = true
	}
}

// step the head one track in the requested direction. the track register is
// updated only if the update flag is set
func (flo *FLO2) step(in bool, update bool) {
	if in {
		if flo.headTrack >= LastTrack {
			flo.status |= StatusSeekErr
			return
		}
		flo.headTrack++
	} else {
		if flo.headTrack == 0 {
			flo.status |= StatusSeekErr
			return
		}
		flo.headTrack--
	}
	if update {
		flo.track = flo.headTrack
	}
}

// the common completion of all type I commands
func (flo *FLO2) typeI(data uint8) {
	if flo.headTrack == 0 {
		flo.status |= StatusTrack0
	}
	if data&FlagHeadLoad == FlagHeadLoad {
		flo.headDown = true
		flo.status |= StatusHeadLoaded
	} else {
		flo.headDown = false
	}
	if data&FlagVerify == FlagVerify {
		flo.verify()
	}
	flo.intrq = true
}

// the drive type bits in the drive select register must match the type of
// the selected drive. drives A and B are 5.25" drives and drives C and D are
// 8" drives
func (flo *FLO2) verify() {
	var expected uint8
	switch flo.drive & 0x0f {
	case 0x01, 0x02:
		expected = DriveMiniDD
	case 0x04, 0x08:
		expected = DriveMaxiDD
	default:
		logger.Logf(flo.env, "flo2", "verify: unsupported drive %#02x", flo.drive&0x0f)
		return
	}
	if flo.drive&driveTypeMask != expected {
		flo.status |= StatusCRCErr
	}
}

// returns the disk image of the selected drive. returns nil if there is no
// selected drive or if no image is attached
func (flo *FLO2) selected() *os.File {
	if flo.activeDrive < 0 || flo.activeDrive >= len(flo.drives) {
		return nil
	}
	return flo.drives[flo.activeDrive]
}

// the offset in the image file of the sector on the current side of the
// current head track
func (flo *FLO2) sectorOffset(sector uint8) int64 {
	return imageOffset(flo.headTrack, flo.side, sector)
}

// the position of a sector in the image file. sectors are numbered from one
func imageOffset(track uint8, side uint8, sector uint8) int64 {
	s := int(track)*SectorsPerTrack*NumSides + SectorsPerTrack*int(side) + int(sector) - 1
	return int64(s) * SectorSize
}

func (flo *FLO2) notFound() {
	logger.Logf(flo.env, "flo2", "no disk image for drive %d", flo.activeDrive)
	flo.status = StatusNotFound | StatusDRQ
	flo.intrq = true
}

func (flo *FLO2) readSector() {
	f := flo.selected()
	if f == nil {
		flo.notFound()
		return
	}

	if flo.sector < 1 || flo.sector > SectorsPerTrack {
		flo.status |= StatusNotFound
		flo.intrq = true
		return
	}

	n, err := f.ReadAt(flo.data[:], flo.sectorOffset(flo.sector))
	if n != SectorSize {
		logger.Logf(flo.env, "flo2", "read sector: %v", err)
		flo.status |= StatusCRCErr
	}

	flo.offset = 0
	flo.dataSize = SectorSize
	flo.drq = true
}

func (flo *FLO2) writeSector() {
	f := flo.selected()
	if f == nil {
		flo.notFound()
		return
	}

	if flo.sector < 1 || flo.sector > SectorsPerTrack {
		flo.status |= StatusNotFound
		return
	}

	_, err := f.WriteAt(flo.data[:], flo.sectorOffset(flo.sector))
	if err == nil {
		err = f.Sync()
	}
	if err != nil {
		logger.Logf(flo.env, "flo2", "write sector: %v", err)
		flo.status |= StatusCRCErr
		return
	}

	flo.status = 0
	flo.headDown = true
}

func (flo *FLO2) readAddress() {
	flo.data[0] = flo.headTrack
	flo.data[1] = flo.side
	flo.data[2] = 0x01
	flo.data[3] = 0x03

	crc := crc16(flo.data[:4])
	flo.data[4] = uint8(crc >> 8)
	flo.data[5] = uint8(crc)

	flo.offset = 0
	flo.dataSize = addressFieldSize
	flo.drq = true
}

func (flo *FLO2) formatTrack() {
	f := flo.selected()
	if f == nil {
		flo.notFound()
		return
	}

	for _, s := range parseTrack(flo.trackData[:]) {
		if s.track > LastTrack || s.side >= NumSides || s.sector < 1 || s.sector > SectorsPerTrack {
			logger.Logf(flo.env, "flo2", "format: track %d side %d sector %d out of range", s.track, s.side, s.sector)
			continue
		}
		if len(s.data) != SectorSize {
			logger.Logf(flo.env, "flo2", "format: sector %d is %d bytes", s.sector, len(s.data))
			continue
		}
		// the sector is written where its ID field says it is
		if _, err := f.WriteAt(s.data, imageOffset(s.track, s.side, s.sector)); err != nil {
			logger.Logf(flo.env, "flo2", "format: %v", err)
			flo.status |= StatusCRCErr
			return
		}
	}
	if err := f.Sync(); err != nil {
		logger.Logf(flo.env, "flo2", "format: %v", err)
	}

	flo.status = 0
	flo.headDown = true
}

func (flo *FLO2) readData() uint8 {
	var v uint8
	if flo.offset < flo.dataSize {
		v = flo.data[flo.offset]
		flo.offset++
	}
	if flo.offset >= flo.dataSize {
		flo.intrq = true
		flo.drq = false
		flo.offset = 0
		flo.dataSize = SectorSize
	}
	return v
}

func (flo *FLO2) writeData(data uint8) {
	// the data register is used as the destination track of the seek
	// command when there is no transfer in progress
	if !flo.drq {
		flo.dataword = data
		return
	}

	if flo.writeTrack {
		flo.trackData[flo.offset] = data
		flo.offset++
		if flo.offset == TrackSize {
			flo.formatTrack()
			flo.intrq = true
			flo.drq = false
			flo.offset = 0
		}
		return
	}

	flo.data[flo.offset] = data
	flo.offset++
	if flo.offset == SectorSize {
		flo.writeSector()
		flo.intrq = true
		flo.drq = false
		flo.offset = 0
	}
}
