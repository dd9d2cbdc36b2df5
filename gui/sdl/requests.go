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
	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/govern"
	"github.com/jetsetilly/nkc68k/gui"
	"github.com/jetsetilly/nkc68k/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

type featureResponse struct {
	data gui.FeatureReqData
	err  error
}

// SetFeature implements the gui.GUI interface. The request is serviced by the
// main thread and so this function must not be called from the main thread.
func (scr *SDL) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// GetFeature implements the gui.GUI interface. As with SetFeature() it must
// not be called from the main thread.
func (scr *SDL) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	scr.getReq <- featureRequest{request: request}
	resp := <-scr.getResp
	return resp.data, resp.err
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
func (scr *SDL) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- curated.Errorf(gui.FeatureArgument, request.request)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan userinput.Event)

	case gui.ReqState:
		scr.state = request.args[0].(govern.State)
		scr.subState = govern.Normal
		if len(request.args) > 1 {
			scr.subState = request.args[1].(govern.SubState)
		}
		scr.setTitle()

	case gui.ReqSetVisibility:
		scr.showWindows(request.args[0].(bool))

	case gui.ReqFullScreen:
		var flags uint32
		if request.args[0].(bool) {
			flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
		}
		err = scr.gdp.window.SetFullscreen(flags)

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}

func (scr *SDL) serviceGetFeature(request featureRequest) {
	var resp featureResponse

	switch request.request {
	case gui.ReqState:
		resp.data = scr.state

	case gui.ReqClipboard:
		if sdl.HasClipboardText() {
			resp.data, resp.err = sdl.GetClipboardText()
		} else {
			resp.data = ""
		}

	case gui.ReqJoysticks:
		resp.data = append([]string{}, scr.available...)

	default:
		resp.err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.getResp <- resp
}
