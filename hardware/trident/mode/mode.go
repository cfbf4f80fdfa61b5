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

// Inputs to the Decode() function.
type Inputs struct {
	// the latched four bit clock select value. see ClockSelect()
	ClockSelect uint8

	// the new mode value of mode control register 2
	ModeControl2 uint8

	// the pixel depth register
	PixelDepth uint8

	// the DAC command register
	DACCommand uint8
}

// pixel depth register fields
const (
	depthSelectMask  = 0x0c
	depthSelectShift = 2
	depthSuppress    = 0x10
)

// the DAC command high nibble that selects 16bpp rather than 15bpp
const dac16bpp = 0x30

// Video is the result of a call to Decode().
type Video struct {
	// the selected clock after division
	PixelClock int

	// the selected clock before division and the divisor
	Clock   int
	Divisor Divisor

	Depth Depth
}

func (v Video) String() string {
	return fmt.Sprintf("%dHz (%dHz / %s) %s", v.PixelClock, v.Clock, v.Divisor, v.Depth)
}

// Decode the video mode from the register values.
func Decode(in Inputs) Video {
	v := Video{
		Clock:   clocks[in.ClockSelect&0x0f],
		Divisor: DivisorSelect(in.ModeControl2),
	}
	v.PixelClock = v.Divisor.Apply(v.Clock)

	switch (in.PixelDepth & depthSelectMask) >> depthSelectShift {
	case 1:
		if in.DACCommand&0xf0 == dac16bpp {
			v.Depth = Depth16
		} else {
			v.Depth = Depth15
		}
	case 2:
		v.Depth = Depth32
	default:
		// depth select values of 0 and 3 both select 8bpp unless it is
		// suppressed
		if in.PixelDepth&depthSuppress == 0 {
			v.Depth = Depth8
		}
	}

	return v
}
