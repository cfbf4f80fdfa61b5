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

package mode_test

import (
	"fmt"
	"testing"

	"github.com/tridentvga/tridentvga/hardware/trident/mode"
	"github.com/tridentvga/tridentvga/test"
)

func TestDepthTable(t *testing.T) {
	for sel := uint8(0); sel < 4; sel++ {
		for _, suppress := range []uint8{0x00, 0x10} {
			for nibble := uint8(0); nibble < 16; nibble++ {
				in := mode.Inputs{
					PixelDepth: sel<<2 | suppress,
					DACCommand: nibble<<4 | 0x0a,
				}
				v := mode.Decode(in)

				var expected mode.Depth
				switch sel {
				case 0, 3:
					if suppress == 0 {
						expected = mode.Depth8
					} else {
						expected = mode.DepthNone
					}
				case 1:
					if nibble == 3 {
						expected = mode.Depth16
					} else {
						expected = mode.Depth15
					}
				case 2:
					expected = mode.Depth32
				}

				tag := fmt.Sprintf("sel=%d suppress=%#02x dac=%#02x", sel, suppress, in.DACCommand)
				test.ExpectEquality(t, v.Depth, expected, tag)
			}
		}
	}
}

func TestDepthValues(t *testing.T) {
	test.ExpectEquality(t, mode.DepthNone.BitsPerPixel(), 0)
	test.ExpectEquality(t, mode.Depth8.BitsPerPixel(), 8)
	test.ExpectEquality(t, mode.Depth15.BitsPerPixel(), 15)
	test.ExpectEquality(t, mode.Depth16.BitsPerPixel(), 16)
	test.ExpectEquality(t, mode.Depth32.BitsPerPixel(), 32)

	test.ExpectFailure(t, mode.DepthNone.Extended())
	test.ExpectSuccess(t, mode.Depth15.Extended())

	test.ExpectEquality(t, mode.Depth16.String(), "16bpp")
	test.ExpectEquality(t, mode.DepthNone.String(), "none")
}

func TestClockSelect(t *testing.T) {
	test.ExpectEquality(t, mode.ClockSelect(0x00, 0x00), uint8(0x00))
	test.ExpectEquality(t, mode.ClockSelect(0x04, 0x00), uint8(0x01))
	test.ExpectEquality(t, mode.ClockSelect(0x0c, 0x00), uint8(0x03))
	test.ExpectEquality(t, mode.ClockSelect(0x00, 0x01), uint8(0x04))
	test.ExpectEquality(t, mode.ClockSelect(0x00, 0x40), uint8(0x08))
	test.ExpectEquality(t, mode.ClockSelect(0xff, 0xff), uint8(0x0f))

	// bits not part of the selection are ignored
	test.ExpectEquality(t, mode.ClockSelect(0xf3, 0xbe), uint8(0x00))
}

func TestDivisor(t *testing.T) {
	test.ExpectEquality(t, mode.DivisorSelect(0x00), mode.DivideNone)
	test.ExpectEquality(t, mode.DivisorSelect(0x02), mode.DivideTwo)
	test.ExpectEquality(t, mode.DivisorSelect(0x04), mode.DivideFour)
	test.ExpectEquality(t, mode.DivisorSelect(0x06), mode.DivideOneAndHalf)
	test.ExpectEquality(t, mode.DivisorSelect(0xf9), mode.DivideNone)

	test.ExpectEquality(t, mode.DivideNone.Apply(25174800), 25174800)
	test.ExpectEquality(t, mode.DivideTwo.Apply(25174800), 12587400)
	test.ExpectEquality(t, mode.DivideFour.Apply(25174800), 6293700)
	test.ExpectEquality(t, mode.DivideOneAndHalf.Apply(25174800), 16783200)
	test.ExpectEquality(t, mode.DivideOneAndHalf.Apply(28636360), 19090906)
}

func TestDecodeClock(t *testing.T) {
	clks := mode.Clocks()
	test.DemandEquality(t, len(clks), 16)

	for i, c := range clks {
		v := mode.Decode(mode.Inputs{ClockSelect: uint8(i)})
		test.ExpectEquality(t, v.Clock, c)
		test.ExpectEquality(t, v.PixelClock, c)
	}

	v := mode.Decode(mode.Inputs{ClockSelect: 10, ModeControl2: 0x04})
	test.ExpectEquality(t, v.Clock, 118800000)
	test.ExpectEquality(t, v.Divisor, mode.DivideFour)
	test.ExpectEquality(t, v.PixelClock, 29700000)

	// decode is idempotent
	in := mode.Inputs{ClockSelect: 5, ModeControl2: 0x02, PixelDepth: 0x04, DACCommand: 0x30}
	test.ExpectEquality(t, mode.Decode(in), mode.Decode(in))
}

func TestClocksIsCopy(t *testing.T) {
	a := mode.Clocks()
	a[0] = 0
	b := mode.Clocks()
	test.ExpectEquality(t, b[0], 25174800)
}
