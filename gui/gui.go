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

// Package gui is an abstraction layer for real GUI implementations. It
// defines the Events that can be passed from the GUI to the emulation code
// and also the requests that can be made of the GUI implementation.
//
// The emulation runs in its own goroutine. GUI implementations that must run
// on the main thread, such as SDL, receive frames and requests through
// channels and service them in their Service() function.
package gui

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Return current state of GUI feature.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Sentinal errors returned by GUI implementations.
const (
	UnsupportedGuiFeature = "gui: unsupported feature: %v"
	FeatureArgument       = "gui: bad argument for feature: %v"
)
