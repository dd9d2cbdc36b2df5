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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/cas"
	"github.com/jetsetilly/nkc68k/logger"
)

// SampleRate of exported WAV files.
const SampleRate = 44100

const bitDepth = 16

// the largest value of a 16 bit sample
const maxSample = 32767

// the WAVE_FORMAT_PCM audio format tag
const pcmFormat = 1

// Import decodes the audio file and writes the result to the cassette image.
// Any existing cassette image is overwritten.
func Import(audioFile string, casFile string) error {
	p, err := loadPCM(audioFile)
	if err != nil {
		return err
	}

	data, err := Decode(p.data, p.sampleRate)
	if err != nil {
		return err
	}

	err = os.WriteFile(casFile, data, 0o644)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}

	logger.Logf(logger.Allow, "tape", "imported %d bytes to %s", len(data), casFile)

	return nil
}

// Export encodes the cassette image as a WAV file.
func Export(casFile string, wavFile string) (rerr error) {
	data, err := os.ReadFile(casFile)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}

	samples := Encode(data, SampleRate)

	f, err := os.Create(wavFile)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("tape: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s * maxSample)
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("tape: wav: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("tape: wav: %v", err)
	}

	logger.Logf(logger.Allow, "tape", "exported %d bytes to %s", len(data), wavFile)

	return nil
}

// List writes the index of recordings in the cassette image.
func List(output io.Writer, casFile string) error {
	data, err := os.ReadFile(casFile)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}

	recs, err := cas.FindRecordings(bytes.NewReader(data))
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}

	if len(recs) == 0 {
		fmt.Fprintln(output, "no recordings")
		return nil
	}

	for i, r := range recs {
		fmt.Fprintf(output, "%3d %s\n", i, r)
	}

	return nil
}
