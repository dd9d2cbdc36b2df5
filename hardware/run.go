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

package hardware

import (
	"context"
	"time"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/govern"
	"github.com/jetsetilly/nkc68k/hardware/timing"
)

// SliceCycles is the number of CPU cycles emulated between each
// synchronisation with real time. The continueCheck() function of Run() is
// also called once per slice.
const SliceCycles = 10000

// the interval between calls to continueCheck() while the emulation is paused
const pauseInterval = timing.ServicePeriod

// Run sets the emulation running. The emulation runs until continueCheck()
// returns govern.Ending or an error, or until the context is cancelled. In the
// last case the error of the context is returned.
//
// The emulation is paused while continueCheck() returns govern.Paused, while
// the overlay screen is shown and while the CPU is halted.
func (nkc *NKC) Run(ctx context.Context, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		// the throttle only sees the context when it sleeps
		if err := ctx.Err(); err != nil {
			return err
		}

		switch state {
		case govern.Running:
			if nkc.GDP.InOverlay() || nkc.CPU.Halted() {
				if nkc.CPU.Halted() {
					nkc.Step()
				}
				if err := nkc.pause(ctx); err != nil {
					return err
				}
				break
			}

			cycles := 0
			for cycles < SliceCycles && !nkc.CPU.Halted() {
				cycles += nkc.Step()
			}

			wait := nkc.Mem.CollectWaitCycles()
			nkc.Timer.Step(nkc.Throttle.Budget(cycles, wait))

			if err := nkc.Throttle.Sync(ctx, cycles, wait); err != nil {
				return err
			}

		case govern.Paused:
			if err := nkc.pause(ctx); err != nil {
				return err
			}

		default:
			return curated.Errorf("nkc: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// SubState returns the reason the emulation is not running even though it has
// not been paused by the user.
func (nkc *NKC) SubState() govern.SubState {
	switch {
	case nkc.GDP.InOverlay():
		return govern.PausedOverlay
	case nkc.CPU.Halted():
		return govern.PausedHalted
	}
	return govern.Normal
}

// the vsync signal and the timers are not advanced while paused. the
// presentation layer still receives the visible page so that the overlay
// screen is shown
func (nkc *NKC) pause(ctx context.Context) error {
	nkc.GDP.Present()
	nkc.Throttle.Idle()

	t := time.NewTimer(pauseInterval)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// vsync periods. The emulation is not synchronised with real time but the
// vsync signal is generated from real time, so the function returns after
// approximately numFrames * 20ms.
func (nkc *NKC) RunForFrameCount(ctx context.Context, numFrames int) error {
	target := nkc.Coord.Frames() + numFrames
	for nkc.Coord.Frames() < target {
		if err := ctx.Err(); err != nil {
			return err
		}

		cycles := 0
		for cycles < SliceCycles && !nkc.CPU.Halted() {
			cycles += nkc.Step()
		}
		nkc.Timer.Step(nkc.Throttle.Budget(cycles, nkc.Mem.CollectWaitCycles()))

		// a halted CPU does not advance the coordinator
		if nkc.CPU.Halted() {
			nkc.Coord.Tick()
		}
	}
	return nil
}
