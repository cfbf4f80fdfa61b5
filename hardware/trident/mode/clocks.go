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

// the clock generator. indexed by the four bit clock select value
var clocks = [16]int{
	25174800, 28636360, 44900000, 36000000,
	57272000, 65000000, 50350000, 40000000,
	88000000, 98000000, 118800000, 108000000,
	72000000, 77000000, 80000000, 75000000,
}

// Clocks returns a copy of the clock table in Hz, indexed by clock select
// value.
func Clocks() []int {
	c := make([]int, len(clocks))
	copy(c, clocks[:])
	return c
}

// Divisor is the post-divider applied to the selected clock.
type Divisor int

// List of valid Divisor values.
const (
	DivideNone Divisor = iota
	DivideTwo
	DivideFour
	DivideOneAndHalf
)

func (d Divisor) String() string {
	switch d {
	case DivideNone:
		return "1"
	case DivideTwo:
		return "2"
	case DivideFour:
		return "4"
	case DivideOneAndHalf:
		return "1.5"
	}
	return fmt.Sprintf("unknown divisor (%d)", int(d))
}

// Apply the divisor to a clock value. The result is truncated to whole Hz.
func (d Divisor) Apply(clk int) int {
	switch d {
	case DivideTwo:
		return clk / 2
	case DivideFour:
		return clk / 4
	case DivideOneAndHalf:
		return clk * 2 / 3
	}
	return clk
}

// ClockSelect assembles the four bit clock select value from the
// miscellaneous output register and mode control register 2.
//
//	bits 0-1: misc output bits 2-3
//	bit 2:    mode control 2 bit 0
//	bit 3:    mode control 2 bit 6
func ClockSelect(misc uint8, modeControl2 uint8) uint8 {
	return ((misc & 0x0c) >> 2) | ((modeControl2 & 0x01) << 2) | ((modeControl2 & 0x40) >> 3)
}

// DivisorSelect returns the divisor field of mode control register 2.
func DivisorSelect(modeControl2 uint8) Divisor {
	return Divisor((modeControl2 & 0x06) >> 1)
}
