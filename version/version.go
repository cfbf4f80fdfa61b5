// This file is part of Tridentvga.
//
// Tridentvga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tridentvga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tridentvga.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name used when referring to the program.
const ApplicationName = "Tridentvga"

// set by the linker for release builds
var number string

// build information collected at init time
var build struct {
	version   string
	revision  string
	goVersion string
	module    string
}

// Version returns the version string, the revision string and whether this is a
// numbered release. Unnumbered builds report "unreleased" when vcs information
// is present and "local" when it is not.
func Version() (string, string, bool) {
	return build.version, build.revision, number != "" && build.version == number
}

// Describe returns a single line summary of the build.
func Describe() string {
	var s strings.Builder
	s.WriteString(ApplicationName)
	s.WriteString(" ")
	s.WriteString(build.version)
	if number == "" || build.version != number {
		s.WriteString(fmt.Sprintf(" (%s)", build.revision))
	}
	if build.goVersion != "" {
		s.WriteString(fmt.Sprintf(" built with %s", build.goVersion))
	}
	if build.module != "" {
		s.WriteString(fmt.Sprintf(" [%s]", build.module))
	}
	return s.String()
}

func init() {
	info, ok := debug.ReadBuildInfo()
	collect(info, ok)
}

func collect(info *debug.BuildInfo, ok bool) {
	var vcs bool
	var modified bool

	build.revision = ""
	build.goVersion = ""
	build.module = ""

	if ok {
		build.goVersion = info.GoVersion
		build.module = info.Main.Path

		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				build.revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if build.revision == "" {
		build.revision = "no revision information"
	} else if modified {
		build.revision = fmt.Sprintf("%s+dirty", build.revision)
	}

	switch {
	case number != "":
		build.version = number
	case vcs:
		build.version = "unreleased"
	default:
		build.version = "local"
	}
}
