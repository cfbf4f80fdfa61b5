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

package mode

import "fmt"

// Depth is the colour depth of an extended video mode. Only one depth can be
// asserted at any one time.
type Depth int

// List of valid Depth values. DepthNone indicates that no extended depth is
// asserted and that video memory should be accessed through the standard VGA.
const (
	DepthNone Depth = iota
	Depth8
	Depth15
	Depth16
	Depth32
)

func (d Depth) String() string {
	switch d {
	case DepthNone:
		return "none"
	case Depth8:
		return "8bpp"
	case Depth15:
		return "15bpp"
	case Depth16:
		return "16bpp"
	case Depth32:
		return "32bpp"
	}
	return fmt.Sprintf("unknown depth (%d)", int(d))
}

// BitsPerPixel returns the number of bits used by each pixel. Returns zero
// for DepthNone.
func (d Depth) BitsPerPixel() int {
	switch d {
	case Depth8:
		return 8
	case Depth15:
		return 15
	case Depth16:
		return 16
	case Depth32:
		return 32
	}
	return 0
}

// Extended returns true if an extended colour depth is asserted.
func (d Depth) Extended() bool {
	return d != DepthNone
}
