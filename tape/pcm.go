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

package tape

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/logger"
)

// UnsupportedAudio is returned when the file extension is not recognised.
const UnsupportedAudio = "tape: unsupported audio file: %s"

// mono audio data. only the first channel of a stereo recording is used
type pcm struct {
	sampleRate int
	data       []float32
}

func loadPCM(filename string) (pcm, error) {
	var p pcm

	f, err := os.Open(filename)
	if err != nil {
		return p, curated.Errorf("tape: %v", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil {
			return p, curated.Errorf("tape: wav: error decoding")
		}

		if !dec.IsValidFile() {
			return p, curated.Errorf("tape: wav: not a valid wav file")
		}

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, curated.Errorf("tape: wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of data stream
		chans := max(int(dec.NumChans), 1)
		p.data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			p.data = append(p.data, floatBuf.Data[i])
		}

		p.sampleRate = int(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return p, curated.Errorf("tape: mp3: %v", err)
		}

		// the stream is always 16bit little endian with two channels even if
		// the source is a single channel. four bytes per sample
		chunk := make([]byte, 4096)
		for {
			n, err := io.ReadFull(dec, chunk)
			for i := 0; i+1 < n; i += 4 {
				p.data = append(p.data, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
			}
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					break
				}
				return p, curated.Errorf("tape: mp3: %v", err)
			}
		}

		p.sampleRate = dec.SampleRate()

	default:
		return p, curated.Errorf(UnsupportedAudio, filename)
	}

	if p.sampleRate <= 0 {
		return p, curated.Errorf("tape: %s: bad sample rate", filename)
	}

	logger.Logf(logger.Allow, "tape", "%s: sample rate %dHz", filepath.Base(filename), p.sampleRate)
	logger.Logf(logger.Allow, "tape", "%s: total time %.02fs", filepath.Base(filename), float64(len(p.data))/float64(p.sampleRate))

	return p, nil
}
