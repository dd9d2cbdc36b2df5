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
	"math"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/logger"
)

// NoData is returned by Decode() when no bytes can be found in the audio.
const NoData = "tape: no data found in recording"

// Kansas City Standard frequencies and bit rate.
const (
	Baud      = 300
	ZeroFreq  = 1200
	OneFreq   = 2400
	StopBits  = 2
	dataBits  = 8
	amplitude = 0.8
)

// the number of half-cycles in a bit for each frequency
const (
	zeroHalfCycles = 2 * ZeroFreq / Baud
	oneHalfCycles  = 2 * OneFreq / Baud
)

// the length of the lead in and lead out in bits
const (
	leadIn  = Baud * 2
	leadOut = Baud / 2
)

// Encode the data as a Kansas City Standard audio signal. Samples are in the
// range -1.0 to 1.0.
func Encode(data []uint8, sampleRate int) []float32 {
	var samples []float32
	var bitTime float64

	bitLength := float64(sampleRate) / Baud

	bit := func(one bool) {
		freq := float64(ZeroFreq)
		if one {
			freq = OneFreq
		}
		step := 2 * math.Pi * freq / float64(sampleRate)

		// every bit is a whole number of cycles so each bit starts at phase
		// zero. bitTime carries the fractional part of the bit length so that
		// bits stay aligned when the bit length is not a whole number of
		// samples
		var phase float64
		bitTime += bitLength
		for ; bitTime >= 1.0; bitTime-- {
			samples = append(samples, float32(amplitude*math.Sin(phase)))
			phase += step
		}
	}

	for range leadIn {
		bit(true)
	}

	for _, b := range data {
		bit(false)
		for i := range dataBits {
			bit(b&(1<<i) != 0)
		}
		for range StopBits {
			bit(true)
		}
	}

	for range leadOut {
		bit(true)
	}

	return samples
}

// the proportion of the peak amplitude that the signal must swing through
// for a zero crossing to be counted
const hysteresis = 0.1

// halfCycles returns the length in seconds of every half-cycle in the
// signal. the first partial half-cycle is not included
func halfCycles(samples []float32, sampleRate int) []float64 {
	var peak float32
	for _, s := range samples {
		peak = max(peak, s, -s)
	}
	if peak == 0 {
		return nil
	}
	threshold := peak * hysteresis

	var lengths []float64

	// the sign of the signal. zero until the signal first crosses the
	// threshold
	sign := 0
	last := -1

	for i, s := range samples {
		var next int
		switch {
		case s > threshold:
			next = 1
		case s < -threshold:
			next = -1
		default:
			continue
		}

		if next == sign {
			continue
		}

		if sign != 0 {
			if last >= 0 {
				lengths = append(lengths, float64(i-last)/float64(sampleRate))
			}
			last = i
		}
		sign = next
	}

	return lengths
}

// Decode a Kansas City Standard signal. Framing errors are logged and the
// affected byte is discarded.
func Decode(samples []float32, sampleRate int) ([]uint8, error) {
	// half-cycles shorter than the boundary are part of a one bit
	boundary := 1.0 / float64(ZeroFreq+OneFreq)

	var bits []bool
	var zeros, ones int

	for _, l := range halfCycles(samples, sampleRate) {
		if l < boundary {
			zeros = 0
			ones++
			if ones == oneHalfCycles {
				bits = append(bits, true)
				ones = 0
			}
		} else {
			ones = 0
			zeros++
			if zeros == zeroHalfCycles {
				bits = append(bits, false)
				zeros = 0
			}
		}
	}

	var data []uint8
	var framingErrors int

	for i := 0; i < len(bits); i++ {
		// wait for start bit
		if bits[i] {
			continue
		}

		if i+dataBits+1 >= len(bits) {
			break
		}

		var b uint8
		for j := range dataBits {
			if bits[i+1+j] {
				b |= 1 << j
			}
		}

		i += dataBits + 1
		if !bits[i] {
			framingErrors++
			continue
		}

		data = append(data, b)
	}

	if framingErrors > 0 {
		logger.Logf(logger.Allow, "tape", "%d framing errors", framingErrors)
	}

	if len(data) == 0 {
		return nil, curated.Errorf(NoData)
	}

	return data, nil
}
