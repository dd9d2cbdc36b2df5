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

package sdl

import (
	"encoding/binary"
	"sync"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/sound"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per sample in the queue
const sampleSize = 2

// the maximum amount of queued audio. samples that arrive when the queue is
// full are dropped. a full queue means that the emulation is running faster
// than real time, for example in turbo mode
const maxQueued = sound.BufferLength * sampleSize * 8

// Audio outputs sound using SDL. It implements the sound.Mixer interface and
// can be used from any goroutine.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []byte

	// the device is closed by whichever of the emulation or the GUI ends
	// first
	end sync.Once
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     sound.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(sound.BufferLength),
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdl: audio: %v", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the sound.Mixer interface.
func (aud *Audio) SetAudio(samples []float32) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		return nil
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		s = min(max(s, -1.0), 1.0)
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(int16(s*32767)))
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return curated.Errorf("sdl: audio: %v", err)
	}
	return nil
}

// EndMixing implements the sound.Mixer interface. Subsequent calls have no
// effect.
func (aud *Audio) EndMixing() error {
	aud.end.Do(func() {
		sdl.ClearQueuedAudio(aud.id)
		sdl.CloseAudioDevice(aud.id)
	})
	return nil
}
