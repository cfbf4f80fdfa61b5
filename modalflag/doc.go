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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DUMP", "CLOCKS")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the sub-mode that was selected. The first
// sub-mode in the list is the default and is selected if the first non-flag
// argument is not a sub-mode. Flags for the sub-mode are added after a call
// to NewMode() and before the next call to Parse():
//
//	md.NewMode()
//	log := md.AddBool("log", false, "echo log to stdout")
//	_, _ = md.Parse()
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions. The Path() function returns every mode selected so far separated
// by a forward slash, which is useful for error and help messages.
package modalflag
