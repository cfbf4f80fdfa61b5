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

// Package prefs facilitates the storage of preferential values in the
// tridentvga system. It is a key component of the configuration system.
//
// Preference values are represented by the Bool, Int and String types. Each
// type stores its value atomically and can be given hook functions that are
// called before and after a new value is set.
//
// Values are associated with a key and added to a Disk instance. The Disk
// type saves and loads those values to and from a file. The file is a plain
// text file with one preference per line:
//
//	trident.vramsize :: 2097152
//
// More than one Disk instance can use the same file. Saving one Disk instance
// will not remove values that were added by another Disk instance.
//
// Values on disk can be overridden from the command line with the command
// line stack functions. A prefs string is of the form:
//
//	trident.vramsize::1048576; trident.logregisters::true
//
// Values from the command line are used by the next call to Disk.Load() and
// are not saved to disk unless Disk.Save() is called explicitly.
package prefs
