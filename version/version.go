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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/nkc68k/version.number=v0.1.0"
//
// Without a version number the module version recorded by "go install" is
// used. Failing that the version is "unreleased" if there is revision
// information and "local" if there is none.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "nkc68k"

// set by the linker
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly
func Version() (string, string, bool) {
	return version, revision, number != ""
}

func init() {
	settings := make(map[string]string)

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}

	revision = settings["vcs.revision"]
	if revision == "" {
		revision = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case ok && info.Main.Version != "" && info.Main.Version != "(devel)":
		version = info.Main.Version
	case settings["vcs"] != "":
		version = "unreleased"
	default:
		version = "local"
	}
}
