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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// the first line of the usage text produced by the flag package for an
// unnamed flag set
const usageHeader = "Usage:"

// helpWriter collects the usage text written by the flag package so that it
// can be decorated with mode information before being printed.
type helpWriter struct {
	usage strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.usage.Write(p)
}

// Help prints the collected usage text to output. The banner is the path of
// the current mode and may be empty.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	header, flags, _ := strings.Cut(hw.usage.String(), "\n")
	if header == "" {
		header = usageHeader
	}

	var s strings.Builder

	if flags == "" && len(subModes) == 0 && additionalHelp == "" {
		s.WriteString("No help available")
		if banner != "" {
			fmt.Fprintf(&s, " for %s", banner)
		}
		s.WriteString("\n")
		io.WriteString(output, s.String())
		return
	}

	if banner != "" {
		fmt.Fprintf(&s, "%s for %s mode\n", header, banner)
	} else {
		fmt.Fprintf(&s, "%s\n", header)
	}

	s.WriteString(flags)

	if len(subModes) > 0 {
		// separate sub-mode list from any flag descriptions
		if flags != "" {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(&s, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(&s, "\n%s\n", additionalHelp)
	}

	io.WriteString(output, s.String())
}
