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
	"fmt"
	"strings"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/govern"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/col256"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/gdp"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/ioe"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
	"github.com/jetsetilly/nkc68k/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// the rate at which the windows are updated and events are serviced
const framesPerSecond = 50

// colours of the GDP64 screen
var (
	gdpBackground = [3]byte{0x00, 0x00, 0x00}
	gdpForeground = [3]byte{0x10, 0xa4, 0x13}
)

const gdpTitle = "GDP64 graphics output for NKC 68k"
const colTitle = "COL256"

// SDL is a simple SDL implementation of the gui.GUI interface. It also
// implements the gdp.Display and col256.Display interfaces and, through the
// Audio type, the sound.Mixer interface.
//
// The functions of the SDL type must be called from the main thread unless
// otherwise noted.
type SDL struct {
	lmtr *fpsLimiter

	gdp *display
	col *display

	// the audio queue. nil if sound is disabled
	Audio *Audio

	// joysticks opened for the IOE ports
	joysticks map[sdl.JoystickID]ioe.PortID
	opened    []*sdl.Joystick
	available []string

	// user input is sent to the emulation over this channel
	events chan userinput.Event

	// requests from other goroutines are serviced by the main thread
	featureReq chan featureRequest
	featureErr chan error
	getReq     chan featureRequest
	getResp    chan featureResponse

	state    govern.State
	subState govern.SubState
}

// NewSDL is the preferred method of initialisation for the SDL type. The
// COL256 window is only created if the card is enabled.
//
// MUST ONLY be called from the main thread.
func NewSDL(prefs *preferences.Preferences) (*SDL, error) {
	scr := &SDL{
		joysticks:  make(map[sdl.JoystickID]ioe.PortID),
		featureReq: make(chan featureRequest),
		featureErr: make(chan error),
		getReq:     make(chan featureRequest),
		getResp:    make(chan featureResponse),
		state:      govern.Initialising,
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	gc := prefs.GDP()
	scr.gdp, err = newDisplay(gdpTitle, 200, gdp.Width, gdp.Height, int32(gc.XMag), int32(gc.YMag))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	if prefs.Col256.Get().(bool) {
		cc := prefs.Col256Config()
		scr.col, err = newDisplay(colTitle, 200+gdp.Width*int32(max(gc.XMag, 1)), col256.Width, col256.Height, int32(cc.XMag), int32(cc.YMag))
		if err != nil {
			return nil, curated.Errorf("sdl: %v", err)
		}
	}

	if prefs.Sound.Get().(bool) {
		scr.Audio, err = NewAudio()
		if err != nil {
			// the emulation can continue without sound
			logger.Logf(logger.Allow, "sdl", "audio: %v", err)
			scr.Audio = nil
		}
	}

	scr.openJoysticks(prefs.IOE())

	// mouse motion is only interesting in the GDP window
	sdl.EventState(sdl.MOUSEWHEEL, sdl.IGNORE)

	scr.lmtr = newFPSLimiter(framesPerSecond)

	return scr, nil
}

// joysticks are attached to the IOE ports if the start of their name matches
// the configuration
func (scr *SDL) openJoysticks(cfg preferences.IOEConfig) {
	n := sdl.NumJoysticks()
	if n == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
		return
	}

	var portA, portB bool

	for i := range n {
		joy := sdl.JoystickOpen(i)
		if joy == nil {
			logger.Logf(logger.Allow, "sdl", "unable to open joystick %d", i)
			continue
		}

		name := joy.Name()
		scr.available = append(scr.available, name)

		switch {
		case !portA && cfg.JoystickA != "" && strings.HasPrefix(name, cfg.JoystickA):
			portA = true
			scr.joysticks[joy.InstanceID()] = ioe.PortA
			scr.opened = append(scr.opened, joy)
			logger.Logf(logger.Allow, "sdl", "port A joystick: %s", name)
		case !portB && cfg.JoystickB != "" && strings.HasPrefix(name, cfg.JoystickB):
			portB = true
			scr.joysticks[joy.InstanceID()] = ioe.PortB
			scr.opened = append(scr.opened, joy)
			logger.Logf(logger.Allow, "sdl", "port B joystick: %s", name)
		default:
			joy.Close()
		}
	}
}

// End closes all windows and devices.
//
// MUST ONLY be called from the main thread.
func (scr *SDL) End() {
	scr.lmtr.end()
	if scr.Audio != nil {
		_ = scr.Audio.EndMixing()
	}
	for _, joy := range scr.opened {
		joy.Close()
	}
	if scr.col != nil {
		scr.col.destroy()
	}
	scr.gdp.destroy()
	sdl.Quit()
}

// PresentGDP implements the gdp.Display interface. Can be called from any
// goroutine.
func (scr *SDL) PresentGDP(frame []uint8) {
	pixels := make([]byte, len(frame)*pixelDepth)
	for i, v := range frame {
		c := gdpBackground
		if v != 0 {
			c = gdpForeground
		}
		p := pixels[i*pixelDepth:]
		p[0], p[1], p[2], p[3] = c[0], c[1], c[2], 255
	}
	scr.gdp.setFrame(pixels)
}

// PresentCol256 implements the col256.Display interface. Can be called from
// any goroutine.
func (scr *SDL) PresentCol256(frame []uint8) {
	if scr.col == nil {
		return
	}
	pixels := make([]byte, len(frame)/3*pixelDepth)
	for i := range len(frame) / 3 {
		p := pixels[i*pixelDepth:]
		p[0], p[1], p[2], p[3] = frame[i*3], frame[i*3+1], frame[i*3+2], 255
	}
	scr.col.setFrame(pixels)
}

func (scr *SDL) setTitle() {
	title := gdpTitle
	switch scr.state {
	case govern.Paused:
		if scr.subState != govern.Normal {
			title = fmt.Sprintf("%s [paused: %s]", gdpTitle, scr.subState)
		} else {
			title = fmt.Sprintf("%s [paused]", gdpTitle)
		}
	case govern.Ending:
		title = fmt.Sprintf("%s [ending]", gdpTitle)
	}
	scr.gdp.window.SetTitle(title)
}

func (scr *SDL) showWindows(show bool) {
	scr.gdp.show(show)
	if scr.col != nil {
		scr.col.show(show)
	}
}
