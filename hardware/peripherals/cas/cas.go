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

package cas

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// Bits in the status register.
const (
	StatusReceive  = 0x01
	StatusTransmit = 0x02
)

// Filler is the value read from the tape beyond the end of the recordings.
const Filler = 0xff

// CAS implements the bus.Device interface.
type CAS struct {
	env *environment.Environment

	pth  string
	file *os.File
	pos  int64

	recordings []Recording
}

// NewCAS is the preferred method of initialisation for the CAS type.
func NewCAS(env *environment.Environment) *CAS {
	return &CAS{env: env}
}

func (cas *CAS) String() string {
	if cas.file == nil {
		return "no tape"
	}
	return fmt.Sprintf("%s at %d", cas.pth, cas.pos)
}

// Ports returns the list of ports used by the CAS interface.
func (cas *CAS) Ports() []addresses.Port {
	return []addresses.Port{addresses.CasStatus, addresses.CasData}
}

// Reset the interface and rewind the tape. The tape file is opened if it has
// changed since the previous reset.
func (cas *CAS) Reset(cfg preferences.FileConfig) {
	if cfg.Path != cas.pth || cas.file == nil {
		cas.End()
		cas.pth = cfg.Path
		if cas.pth != "" {
			cas.open()
		}
	}
	cas.pos = 0
}

func (cas *CAS) open() {
	f, err := os.OpenFile(cas.pth, os.O_RDWR, 0)
	if err != nil {
		logger.Logf(cas.env, "cas", "can't open tape: %v", err)
		return
	}
	cas.file = f
	logger.Logf(cas.env, "cas", "tape: %s", cas.pth)

	cas.recordings, err = FindRecordings(f)
	if err != nil {
		logger.Logf(cas.env, "cas", "%v", err)
	}
	for _, r := range cas.recordings {
		logger.Logf(cas.env, "cas", "recording: %s", r)
	}
}

// End closes the tape file.
func (cas *CAS) End() {
	if cas.file != nil {
		cas.file.Close()
		cas.file = nil
	}
	cas.recordings = cas.recordings[:0]
}

// Read implements the bus.Device interface.
func (cas *CAS) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.CasStatus:
		return StatusReceive | StatusTransmit
	case addresses.CasData:
		if cas.file == nil {
			return Filler
		}
		var b [1]uint8
		n, err := cas.file.ReadAt(b[:], cas.pos)
		if n == 0 {
			if err != nil && err != io.EOF {
				logger.Logf(cas.env, "cas", "read: %v", err)
			}
			return Filler
		}
		cas.pos++
		return b[0]
	}
	return 0
}

// Write implements the bus.Device interface. Writes to the control register
// are ignored because interrupts are not supported.
func (cas *CAS) Write(port uint8, data uint8) {
	if addresses.Port(port) != addresses.CasData || cas.file == nil {
		return
	}
	_, err := cas.file.WriteAt([]uint8{data}, cas.pos)
	if err != nil {
		logger.Logf(cas.env, "cas", "write: %v", err)
		return
	}
	cas.pos++
}

// Sentinel error returned by Position().
const (
	NoTape       = "cas: no tape"
	NoRecording  = "cas: no recording %d"
	RewindFailed = "cas: rewind: %v"
)

// Rewind the tape to the beginning. The recordings index is rebuilt.
func (cas *CAS) Rewind() error {
	if cas.file == nil {
		return curated.Errorf(NoTape)
	}
	cas.pos = 0

	var err error
	cas.recordings, err = FindRecordings(cas.file)
	if err != nil {
		return curated.Errorf(RewindFailed, err)
	}
	logger.Logf(cas.env, "cas", "rewound")
	return nil
}

// Recordings returns the index of recordings found when the tape was opened
// or last rewound.
func (cas *CAS) Recordings() []Recording {
	return cas.recordings
}

// Position the tape at the start of the numbered recording.
func (cas *CAS) Position(i int) error {
	if cas.file == nil {
		return curated.Errorf(NoTape)
	}
	if i < 0 || i >= len(cas.recordings) {
		return curated.Errorf(NoRecording, i)
	}
	cas.pos = cas.recordings[i].Start
	logger.Logf(cas.env, "cas", "positioned at %s", cas.recordings[i])
	return nil
}

// Tell returns the current position of the tape.
func (cas *CAS) Tell() int64 {
	return cas.pos
}
