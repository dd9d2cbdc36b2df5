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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nkc68k/hardware/peripherals/sound"
	"github.com/jetsetilly/nkc68k/test"
	"github.com/jetsetilly/nkc68k/wavwriter"
	"github.com/youpy/go-wav"
)

func TestWriteSamples(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sound.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	var _ sound.Mixer = aw

	test.DemandSuccess(t, aw.SetAudio([]float32{0.0, 0.5, -0.5, 2.0}))
	test.DemandSuccess(t, aw.SetAudio([]float32{-2.0}))
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, format.SampleRate, uint32(sound.SampleRate))
	test.ExpectEquality(t, format.NumChannels, uint16(1))
	test.ExpectEquality(t, format.BitsPerSample, uint16(16))

	samples, err := r.ReadSamples(5)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(samples), 5)

	// out of range samples are clipped
	test.ExpectEquality(t, samples[1].Values[0], 16383)
	test.ExpectEquality(t, samples[3].Values[0], 32767)
	test.ExpectEquality(t, samples[4].Values[0], -32767)
}
