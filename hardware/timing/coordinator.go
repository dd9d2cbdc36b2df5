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

import (
	"time"

	"github.com/jetsetilly/nkc68k/hardware/preferences"
)

// Timing constants of the vertical sync signal and the service function.
const (
	VsyncPeriod   = 20 * time.Millisecond
	VsyncActive   = 1472 * time.Microsecond
	ServicePeriod = 10 * time.Millisecond
)

// Interrupt levels used by the vsync signal.
const (
	LevelINT = uint8(5)
	LevelNMI = uint8(7)
)

// Vsync is implemented by the device that reacts to the vertical sync signal.
type Vsync interface {
	SetVsync(active bool)
}

// Coordinator generates the vertical sync signal from wall-clock time.
type Coordinator struct {
	cfg preferences.TimingConfig

	irq   *Interrupts
	vsync Vsync

	// called every ServicePeriod
	service func()

	now func() time.Time

	periodStart  time.Time
	serviceStart time.Time

	// the vsync signal as last presented to the Vsync device
	active bool

	// number of vsync periods since reset
	frames int
}

// NewCoordinator is the preferred method of initialisation for the
// Coordinator type. The vsync and service arguments can be nil.
func NewCoordinator(irq *Interrupts, vsync Vsync, service func()) *Coordinator {
	return &Coordinator{
		irq:     irq,
		vsync:   vsync,
		service: service,
		now:     time.Now,
	}
}

// Reset the coordinator. A new vsync period begins immediately.
func (c *Coordinator) Reset(cfg preferences.TimingConfig) {
	c.cfg = cfg
	n := c.now()
	c.periodStart = n.Add(-VsyncPeriod)
	c.serviceStart = n
	c.active = false
	c.frames = 0
	c.irq.Clear(SourceVsync)
}

// SetService changes the function called every ServicePeriod.
func (c *Coordinator) SetService(service func()) {
	c.service = service
}

// Tick should be called regularly by the emulation loop. The more often it is
// called the more accurate the vsync signal will be.
func (c *Coordinator) Tick() {
	n := c.now()
	since := n.Sub(c.periodStart)

	switch {
	case since >= VsyncPeriod:
		c.periodStart = n
		c.frames++

		// the end of the previous active period might not have been seen if
		// Tick() is called infrequently
		c.setVsync(false)
		c.setVsync(true)

		// the NMI is raised once per period. the lower level interrupt is
		// held for as long as the vsync signal is active
		c.irq.Clear(SourceVsync)
		if c.cfg.VsyncINT {
			if c.cfg.VsyncNMI {
				c.irq.Assert(SourceVsync, LevelNMI)
			} else {
				c.irq.Assert(SourceVsync, LevelINT)
			}
		}

	case since >= VsyncActive:
		c.setVsync(false)
		c.irq.Clear(SourceVsync)
	}

	if n.Sub(c.serviceStart) >= ServicePeriod {
		c.serviceStart = n
		if c.service != nil {
			c.service()
		}
	}
}

func (c *Coordinator) setVsync(active bool) {
	if c.active == active {
		return
	}
	c.active = active
	if c.vsync != nil {
		c.vsync.SetVsync(active)
	}
}

// Frames returns the number of vsync periods that have begun since the
// coordinator was reset.
func (c *Coordinator) Frames() int {
	return c.frames
}

// InVsync returns true if the vsync signal is currently active.
func (c *Coordinator) InVsync() bool {
	return c.active
}
