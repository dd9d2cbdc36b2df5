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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/sound"
	"github.com/jetsetilly/nkc68k/logger"
	"github.com/youpy/go-wav"
)

// WavWriter implements the sound.Mixer interface.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// SetAudio implements the sound.Mixer interface.
func (aw *WavWriter) SetAudio(samples []float32) error {
	for _, s := range samples {
		s = min(max(s, -1.0), 1.0)

		w := wav.Sample{}
		w.Values[0] = int(s * 32767)

		aw.buffer = append(aw.buffer, w)
	}

	return nil
}

// EndMixing implements the sound.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(sound.SampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
