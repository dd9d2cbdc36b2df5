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

// output level of the DAC for each of the sixteen volume values
var dac = [16]float32{
	0.0, 0.00999465934234, 0.0144502937362, 0.0210574502174,
	0.0307011520562, 0.0455481803616, 0.0644998855573, 0.107362478065,
	0.126588845655, 0.20498970016, 0.292210269322, 0.372838941024,
	0.492530708782, 0.635324635691, 0.805584802014, 1.0,
}

// tone generators toggle their output every period ticks. a tick is eight
// cycles of the chip clock
const clockDivider = 8

type tone struct {
	period  int
	counter int
	out     bool
}

func (t *tone) tick() {
	t.counter++
	if t.counter >= max(t.period, 1) {
		t.counter = 0
		t.out = !t.out
	}
}

// the noise generator is a 17 bit LFSR clocked at half the rate of the tone
// generators
type noise struct {
	period  int
	counter int
	lfsr    uint32
	out     bool
}

func (n *noise) tick() {
	n.counter++
	if n.counter >= max(n.period, 1)*2 {
		n.counter = 0
		bit := (n.lfsr ^ (n.lfsr >> 3)) & 0x01
		n.lfsr = (n.lfsr >> 1) | (bit << 16)
		n.out = n.lfsr&0x01 == 0x01
	}
}

// the envelope generator steps through sixteen volume levels. the shape
// register decides the direction of the steps and what happens at the end of
// each cycle
type envelope struct {
	period  int
	counter int

	step    int
	attack  uint8
	hold    bool
	alt     bool
	holding bool
}

// bits of the envelope shape register
const (
	shapeHold      = 0x01
	shapeAlternate = 0x02
	shapeAttack    = 0x04
	shapeContinue  = 0x08
)

func (e *envelope) setShape(shape uint8) {
	e.attack = 0x00
	if shape&shapeAttack == shapeAttack {
		e.attack = 0x0f
	}

	// shapes without the continue bit fall to zero and stay there
	if shape&shapeContinue == 0x00 {
		e.hold = true
		e.alt = e.attack == 0x0f
	} else {
		e.hold = shape&shapeHold == shapeHold
		e.alt = shape&shapeAlternate == shapeAlternate
	}

	e.step = 0x0f
	e.counter = 0
	e.holding = false
}

func (e *envelope) tick() {
	if e.holding {
		return
	}

	e.counter++
	if e.counter < max(e.period, 1)*2 {
		return
	}
	e.counter = 0

	e.step--
	if e.step >= 0 {
		return
	}

	if e.hold {
		if e.alt {
			e.attack ^= 0x0f
		}
		e.holding = true
		e.step = 0
		return
	}

	if e.alt {
		e.attack ^= 0x0f
	}
	e.step &= 0x0f
}

func (e *envelope) volume() uint8 {
	return uint8(e.step) ^ e.attack
}

type channel struct {
	toneOff  bool
	noiseOff bool
	envelope bool
	volume   uint8
}

type generator struct {
	tone     [3]tone
	noise    noise
	env      envelope
	channels [3]channel

	// number of ticks per sample as a fixed point value with 16 fractional
	// bits
	step  int
	accum int

	// high-pass filter state
	prevIn  float32
	prevOut float32
}

func (g *generator) configure(clock int, sampleRate int) {
	g.step = (clock / clockDivider << 16) / sampleRate
}

func (g *generator) reset() {
	for i := range g.tone {
		g.tone[i] = tone{}
	}
	g.noise = noise{lfsr: 1}
	g.env = envelope{}
	g.accum = 0
	g.prevIn = 0
	g.prevOut = 0
}

func (g *generator) level() float32 {
	var l float32
	for i := range g.channels {
		c := &g.channels[i]
		if (g.tone[i].out || c.toneOff) && (g.noise.out || c.noiseOff) {
			if c.envelope {
				l += dac[g.env.volume()]
			} else {
				l += dac[c.volume]
			}
		}
	}
	return l
}

// sample returns the average level over the ticks that make up one sample.
// the DC offset is removed from the result
func (g *generator) sample() float32 {
	g.accum += g.step

	var sum float32
	var n int
	for g.accum >= 1<<16 {
		g.accum -= 1 << 16
		for i := range g.tone {
			g.tone[i].tick()
		}
		g.noise.tick()
		g.env.tick()
		sum += g.level()
		n++
	}

	in := g.prevIn
	if n > 0 {
		in = sum / float32(n)
	}

	out := in - g.prevIn + 0.995*g.prevOut
	g.prevIn = in
	g.prevOut = out

	return min(max(out, -1.0), 1.0)
}
