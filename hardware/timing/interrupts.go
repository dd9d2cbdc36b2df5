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

package timing

// Source identifies a device that can request an interrupt.
type Source int

// List of valid Source values.
const (
	SourceVsync Source = iota
	SourceTimer
	numSources
)

func (s Source) String() string {
	switch s {
	case SourceVsync:
		return "vsync"
	case SourceTimer:
		return "timer"
	}
	return "unknown"
}

// Interrupts collates the interrupt requests of each source. Only one level
// is asserted at a time, that of the highest requesting source.
type Interrupts struct {
	levels [numSources]uint8

	// the number of times each source has moved from unasserted to asserted
	Count [numSources]int

	// a source has moved from unasserted to asserted since the last call to
	// Retrigger()
	retrigger bool
}

// Assert the interrupt line for the source at the specified level. Asserting
// an already asserted source at the same level has no effect.
func (irq *Interrupts) Assert(src Source, level uint8) {
	if irq.levels[src] == 0 && level > 0 {
		irq.Count[src]++
		irq.retrigger = true
	}
	irq.levels[src] = level
}

// Clear the interrupt line for the source.
func (irq *Interrupts) Clear(src Source) {
	irq.levels[src] = 0
}

// Asserted returns true if the source is currently requesting an interrupt.
func (irq *Interrupts) Asserted(src Source) bool {
	return irq.levels[src] > 0
}

// Level returns the interrupt level that should be presented to the CPU.
func (irq *Interrupts) Level() uint8 {
	var l uint8
	for _, v := range irq.levels {
		l = max(l, v)
	}
	return l
}

// Retrigger returns true if a source has been newly asserted since the
// previous call. The non-maskable level is edge triggered so a source that is
// cleared and asserted again between two deliveries of the level would
// otherwise be lost.
func (irq *Interrupts) Retrigger() bool {
	r := irq.retrigger
	irq.retrigger = false
	return r
}

// Reset clears all interrupt requests.
func (irq *Interrupts) Reset() {
	irq.levels = [numSources]uint8{}
	irq.retrigger = false
}
