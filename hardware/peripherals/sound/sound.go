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

package sound

import (
	"fmt"
	"time"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/logger"
)

// Clock is the frequency of the clock input of the chip.
const Clock = 2000000

// SampleRate is the frequency of generated samples.
const SampleRate = 44100

// BufferLength is the number of samples that the presentation layer should
// buffer.
const BufferLength = 1024

// Volume of the generated signal. A value of one would mean that the sum of
// all three channels at full volume would be at the limit of the signal.
const Volume = 0.3

// List of chip registers.
const (
	RegAFine = iota
	RegACoarse
	RegBFine
	RegBCoarse
	RegCFine
	RegCCoarse
	RegNoise
	RegEnable
	RegAVolume
	RegBVolume
	RegCVolume
	RegEnvFine
	RegEnvCoarse
	RegEnvShape
	RegPortA
	RegPortB
	NumRegisters
)

var registerNames = [NumRegisters]string{
	"AFINE", "ACOARSE", "BFINE", "BCOARSE", "CFINE", "CCOARSE", "NOISEPER",
	"ENABLE", "AVOL", "BVOL", "CVOL", "EFINE", "ECOARSE", "ESHAPE", "PORTA", "PORTB",
}

// the bits of each register that exist on the chip
var registerMasks = [NumRegisters]uint8{
	0xff, 0x0f, 0xff, 0x0f, 0xff, 0x0f, 0x1f,
	0xff, 0x1f, 0x1f, 0x1f, 0xff, 0xff, 0x0f, 0x00, 0x00,
}

// VolumeEnvelope is the bit in a volume register that selects the envelope
// rather than the fixed volume.
const VolumeEnvelope = 0x10

// Mixer implementations receive the output of the sound chip.
type Mixer interface {
	SetAudio(samples []float32) error
	EndMixing() error
}

// Sound implements the bus.Device interface.
type Sound struct {
	env *environment.Environment

	address   uint8
	registers [NumRegisters]uint8

	gen generator

	// fraction of a sample carried over from the previous call to Generate()
	carry time.Duration

	mixers []Mixer
}

// NewSound is the preferred method of initialisation for the Sound type.
func NewSound(env *environment.Environment) *Sound {
	snd := &Sound{env: env}
	snd.gen.configure(Clock, SampleRate)
	return snd
}

func (snd *Sound) String() string {
	return fmt.Sprintf("A=%d B=%d C=%d noise=%d enable=%#02x env=%d/%d",
		snd.gen.tone[0].period, snd.gen.tone[1].period, snd.gen.tone[2].period,
		snd.gen.noise.period, snd.registers[RegEnable],
		snd.gen.env.period, snd.registers[RegEnvShape])
}

// AddMixer adds a destination for generated samples.
func (snd *Sound) AddMixer(m Mixer) {
	snd.mixers = append(snd.mixers, m)
}

// RemoveMixer removes a previously added Mixer.
func (snd *Sound) RemoveMixer(m Mixer) {
	for i := range snd.mixers {
		if snd.mixers[i] == m {
			snd.mixers = append(snd.mixers[:i], snd.mixers[i+1:]...)
			return
		}
	}
}

// Ports returns the list of ports used by the SOUND card, including the
// addresses used by JADOS.
func (snd *Sound) Ports() []addresses.Port {
	return []addresses.Port{
		addresses.SoundAddr, addresses.SoundData,
		addresses.SoundJADOSAddr, addresses.SoundJADOSData,
	}
}

// Reset the sound chip. All channels are disabled.
func (snd *Sound) Reset() {
	snd.address = 0
	snd.registers = [NumRegisters]uint8{}
	snd.registers[RegEnable] = 0xff
	snd.carry = 0
	snd.gen.reset()
	for r := range RegPortA {
		snd.update(r)
	}
}

// End stops all mixers.
func (snd *Sound) End() {
	for _, m := range snd.mixers {
		err := m.EndMixing()
		if err != nil {
			logger.Log(snd.env, "sound", err)
		}
	}
}

// Read implements the bus.Device interface.
func (snd *Sound) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.SoundAddr, addresses.SoundJADOSAddr:
		return snd.address
	case addresses.SoundData, addresses.SoundJADOSData:
		if int(snd.address) >= NumRegisters {
			return 0xff
		}
		return snd.registers[snd.address]
	}
	return 0
}

// Write implements the bus.Device interface.
func (snd *Sound) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.SoundAddr, addresses.SoundJADOSAddr:
		snd.address = data
	case addresses.SoundData, addresses.SoundJADOSData:
		if int(snd.address) >= NumRegisters {
			logger.Logf(snd.env.Debug(), "sound", "write to unknown register %#02x (%#02x)", snd.address, data)
			return
		}
		r := int(snd.address)
		snd.registers[r] = data & registerMasks[r]
		logger.Logf(snd.env.Debug(), "sound", "%s = %#02x", registerNames[r], snd.registers[r])
		snd.update(r)
	}
}

// Register returns the value of the chip register.
func (snd *Sound) Register(r int) uint8 {
	return snd.registers[r]
}

// update the generators after a change to register r
func (snd *Sound) update(r int) {
	regs := &snd.registers

	switch r {
	case RegAFine, RegACoarse, RegBFine, RegBCoarse, RegCFine, RegCCoarse:
		ch := r / 2
		snd.gen.tone[ch].period = int(regs[ch*2+1])<<8 | int(regs[ch*2])
	case RegNoise:
		snd.gen.noise.period = int(regs[RegNoise])
	case RegEnable, RegAVolume, RegBVolume, RegCVolume:
		for ch := range snd.gen.channels {
			c := &snd.gen.channels[ch]
			c.toneOff = regs[RegEnable]>>ch&0x01 == 0x01
			c.noiseOff = regs[RegEnable]>>(ch+3)&0x01 == 0x01
			c.envelope = regs[RegAVolume+ch]&VolumeEnvelope == VolumeEnvelope
			c.volume = regs[RegAVolume+ch] & 0x0f
		}
	case RegEnvFine, RegEnvCoarse:
		snd.gen.env.period = int(regs[RegEnvCoarse])<<8 | int(regs[RegEnvFine])
	case RegEnvShape:
		snd.gen.env.setShape(regs[RegEnvShape])
	}
}

// Render returns the next n samples of output.
func (snd *Sound) Render(n int) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = snd.gen.sample() * Volume
	}
	return samples
}

// Generate output for the duration and send it to each mixer. Fractions of a
// sample are carried over to the next call.
func (snd *Sound) Generate(d time.Duration) {
	d += snd.carry
	n := int(d * SampleRate / time.Second)
	snd.carry = d - time.Duration(n)*time.Second/SampleRate
	if n == 0 || len(snd.mixers) == 0 {
		return
	}

	samples := snd.Render(n)
	for _, m := range snd.mixers {
		err := m.SetAudio(samples)
		if err != nil {
			logger.Log(snd.env, "sound", err)
		}
	}
}
