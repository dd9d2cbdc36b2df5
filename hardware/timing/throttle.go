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
	"context"
	"time"

	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// the period over which the effective speed of the emulation is measured
const measurementPeriod = 10 * time.Second

// Throttle keeps emulated time in step with real time.
type Throttle struct {
	perm logger.Permission

	// nanoseconds per CPU cycle
	cycleTime time.Duration
	cpuSpeed  int
	turbo     bool

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	// start of the current synchronisation slice
	start time.Time

	// time by which the emulation is running behind real time. carried into
	// the next slice
	drift time.Duration

	// accumulated emulated and real time for the speed measurement
	emulated time.Duration
	real     time.Duration

	// the most recent measurement in MHz
	measured float32
}

// NewThrottle is the preferred method of initialisation for the Throttle
// type.
func NewThrottle(perm logger.Permission) *Throttle {
	return &Throttle{
		perm:  perm,
		now:   time.Now,
		sleep: sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset the throttle with a new configuration.
func (thr *Throttle) Reset(cfg preferences.TimingConfig) {
	thr.cpuSpeed = max(cfg.CPUSpeed, 1)
	thr.cycleTime = time.Duration(1000/thr.cpuSpeed) * time.Nanosecond
	thr.turbo = cfg.Turbo
	thr.start = thr.now()
	thr.drift = 0
	thr.emulated = 0
	thr.real = 0
}

// Budget returns the emulated duration of the number of CPU cycles and wait
// state cycles.
func (thr *Throttle) Budget(cycles int, waitCycles int) time.Duration {
	return time.Duration(cycles+waitCycles) * thr.cycleTime
}

// Sync should be called after every slice of emulation with the number of
// cycles executed during that slice. The function sleeps until real time has
// caught up with emulated time, unless the throttle is in turbo mode.
//
// Sync() returns early with the context's error if the context is cancelled
// while sleeping.
func (thr *Throttle) Sync(ctx context.Context, cycles int, waitCycles int) error {
	budget := thr.Budget(cycles, waitCycles)
	elapsed := thr.now().Sub(thr.start)

	if elapsed > budget {
		thr.drift += elapsed - budget
	} else if !thr.turbo {
		d := budget - elapsed - thr.drift
		if d < 0 {
			thr.drift = -d
		} else {
			if err := thr.sleep(ctx, d); err != nil {
				return err
			}
			thr.drift = 0
		}
	}

	n := thr.now()
	thr.real += n.Sub(thr.start)
	thr.emulated += budget
	thr.start = n

	thr.measure()

	return nil
}

// Idle restarts the synchronisation slice without accounting for any
// emulated time. It should be used when the emulation is paused.
func (thr *Throttle) Idle() {
	thr.start = thr.now()
	thr.drift = 0
}

func (thr *Throttle) measure() {
	if thr.real < measurementPeriod {
		return
	}
	thr.measured = float32(float64(thr.emulated) / float64(thr.real) * float64(thr.cpuSpeed))
	thr.emulated = 0
	thr.real = 0
	logger.Logf(thr.perm, "throttle", "emulated CPU speed: %.2fMHz", thr.measured)
}

// Measured returns the most recent measurement of the emulation speed in
// MHz. Returns zero if no measurement has been taken yet.
func (thr *Throttle) Measured() float32 {
	return thr.measured
}

// Drift returns the amount of time the emulation is running behind real time.
func (thr *Throttle) Drift() time.Duration {
	return thr.drift
}
