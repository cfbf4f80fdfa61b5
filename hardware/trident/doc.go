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

// Package trident emulates the chip-specific parts of the Trident TGUI9680
// SVGA controller. The standard VGA parts of the chip are provided by an
// implementation of the svga.Base interface.
//
// The Device type is the entry point for all port and memory accesses.
// Accesses to standard registers are passed to the base unchanged.
//
// # Old and new mode
//
// Some sequencer registers exist twice, once for "old mode" and once for "new
// mode". The chip starts in old mode. Reading the chip ID register (SR0B)
// switches to new mode and writing to it switches back. The value of the
// register not currently selected is preserved.
//
// # Banks
//
// In the extended video modes the legacy framebuffer window is banked. The
// bank registers are described in the banks package. In new mode the window
// is 64KB wide and in old mode it is 128KB wide.
//
// # Hidden DAC command register
//
// The DAC command register is reached through the palette mask port. See the
// dac package for details. The DAC command value helps to select between the
// 15bpp and 16bpp video modes.
package trident
