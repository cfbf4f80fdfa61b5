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

// Package svga defines the interface between an extended VGA chip and the
// standard VGA implementation it is layered on.
//
// The chip emulation in the trident package handles chip-specific registers
// and defers everything else to a Base. The Base interface is deliberately
// narrow: register access by group and index, the generic port handler, the
// non-banked memory path and a small number of CRTC derived values that the
// chip extends with additional bits.
//
// The VGA type is a reference implementation of Base. It implements the
// register file, the palette DAC and planar/chain-4 memory of a standard VGA
// but does not render anything.
package svga
