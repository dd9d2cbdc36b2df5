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
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// display is a window showing the output of one of the video devices. frames
// are handed over by the emulation goroutine and copied to the texture by the
// main thread.
type display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32
	xmag   int32
	ymag   int32

	// pixels is the RGBA data copied to the texture
	pixels []byte

	// the most recent frame from the emulation. nil if there is no new frame
	crit struct {
		sync.Mutex
		frame []byte
	}
}

func newDisplay(title string, x int32, width int32, height int32, xmag int32, ymag int32) (*display, error) {
	dsp := &display{
		width:  width,
		height: height,
		xmag:   max(xmag, 1),
		ymag:   max(ymag, 1),
	}

	var err error

	// the window is hidden until a ReqSetVisibility request
	dsp.window, err = sdl.CreateWindow(title, x, 100,
		width*dsp.xmag, height*dsp.ymag,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, err
	}

	dsp.renderer, err = sdl.CreateRenderer(dsp.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}

	err = dsp.renderer.SetScale(float32(dsp.xmag), float32(dsp.ymag))
	if err != nil {
		return nil, err
	}

	dsp.texture, err = dsp.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), width, height)
	if err != nil {
		return nil, err
	}

	dsp.pixels = make([]byte, width*height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(dsp.pixels); i += pixelDepth {
		dsp.pixels[i] = 255
	}

	return dsp, nil
}

// set the next frame to be shown. called from the emulation goroutine. a frame
// that has not yet been shown is replaced
func (dsp *display) setFrame(pixels []byte) {
	dsp.crit.Lock()
	dsp.crit.frame = pixels
	dsp.crit.Unlock()
}

// update the window with the most recent frame. must only be called from the
// main thread
func (dsp *display) update(force bool) error {
	dsp.crit.Lock()
	frame := dsp.crit.frame
	dsp.crit.frame = nil
	dsp.crit.Unlock()

	if frame == nil && !force {
		return nil
	}
	if frame != nil {
		copy(dsp.pixels, frame)
	}

	err := dsp.texture.Update(nil, dsp.pixels, int(dsp.width*pixelDepth))
	if err != nil {
		return err
	}

	err = dsp.renderer.Copy(dsp.texture, nil, nil)
	if err != nil {
		return err
	}

	dsp.renderer.Present()

	return nil
}

func (dsp *display) show(show bool) {
	if show {
		dsp.window.Show()
	} else {
		dsp.window.Hide()
	}
}

func (dsp *display) destroy() {
	dsp.texture.Destroy()
	dsp.renderer.Destroy()
	dsp.window.Destroy()
}
