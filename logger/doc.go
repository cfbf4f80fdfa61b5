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

// Package logger is the central log for the emulation. Log entries are made up
// of a tag and a detail string. The tag is usually the name of the chip or
// the package that is making the entry.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. The number of entries is capped and the oldest
// entries are discarded first.
//
// Whether an entry is made depends on the Permission argument. The
// environment.Environment type implements the Permission interface and should
// be used from inside the emulation. Outside of the emulation the Allow value
// can be used.
package logger
