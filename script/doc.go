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

// Package script runs Lua scripts against a device. Scripts access the
// device through the following global functions:
//
//	inb(port)           read a byte from an I/O port
//	outb(port, value)   write a byte to an I/O port
//	outw(port, value)   write the low byte to port and the high byte to port+1
//	memr(offset)        read a byte from the legacy framebuffer window
//	memw(offset, value) write a byte to the legacy framebuffer window
//	reset()             reset the device
//	banks()             returns the write bank and the read bank
//	mode()              returns the pixel clock and the bits per pixel
//	newmode()           returns true if the device is in new mode
//	log(text)           add an entry to the central logger
//
// For example, the following script unlocks the DAC command register and
// selects a 16bpp mode:
//
//	outw(0x3d4, 0x0438)
//	for i = 1, 4 do inb(0x3c6) end
//	outb(0x3c6, 0x30)
package script
