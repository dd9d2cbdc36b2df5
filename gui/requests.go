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

package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. toggling fullscreen.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// the channel on which user input is sent to the emulation.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan userinput.Event

	// notify GUI of emulation state. the GUI may use this to change the
	// window title or to stop rendering. the sub-state is optional.
	ReqState FeatureReq = "ReqState" // govern.State, govern.SubState

	// whether the gui is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// put gui output into full-screen mode.
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// the text in the host clipboard. GetFeature() only.
	ReqClipboard FeatureReq = "ReqClipboard" // string

	// the names of the joysticks attached to the host. GetFeature() only.
	ReqJoysticks FeatureReq = "ReqJoysticks" // []string
)
