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
	"github.com/jetsetilly/nkc68k/logger"
	"github.com/jetsetilly/nkc68k/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Service the SDL event queue, any outstanding feature requests and update
// the windows. The function blocks for the remainder of the frame.
//
// MUST ONLY be called from the main thread.
func (scr *SDL) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if scr.events == nil {
			continue
		}
		if uev := scr.convertEvent(ev); uev != nil {
			scr.send(uev)
		}
	}

	// run outstanding requests. there is no point waiting for requests
	// because the frame limiter is waited on below
	for done := false; !done; {
		select {
		case r := <-scr.featureReq:
			scr.serviceFeatureRequests(r)
		case r := <-scr.getReq:
			scr.serviceGetFeature(r)
		default:
			done = true
		}
	}

	if err := scr.gdp.update(false); err != nil {
		logger.Logf(logger.Allow, "sdl", "gdp: %v", err)
	}
	if scr.col != nil {
		if err := scr.col.update(false); err != nil {
			logger.Logf(logger.Allow, "sdl", "col256: %v", err)
		}
	}

	scr.lmtr.wait()
}

// send an event to the emulation. events are dropped if the emulation is not
// keeping up or has ended
func (scr *SDL) send(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdl", "dropped user input: %T", ev)
	}
}
