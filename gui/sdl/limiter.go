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
	"time"
)

// fpsLimiter regulates how often the Service() function updates the windows.
// The ticker runs concurrently and adjusts for drift.
type fpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration
	tick            chan bool
	quit            chan bool
}

func newFPSLimiter(framesPerSecond int) *fpsLimiter {
	lim := &fpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
		quit:            make(chan bool),
	}

	go func() {
		adjustedSecondPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			adjustedSecondPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			adjustedSecondPerFrame = max(adjustedSecondPerFrame, 0)
			t = nt
		}
	}()

	return lim
}

func (lim *fpsLimiter) wait() {
	<-lim.tick
}

func (lim *fpsLimiter) end() {
	close(lim.quit)
}
