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

package svga

// TimingSink receives the result of a timing computation. Recompute is
// idempotent and may be called redundantly.
type TimingSink interface {
	RecomputeClock(divisor int, pixelClock int)
}

// VideoMemory is the storage shared by the standard and banked memory paths.
// Offsets are in the range 0 to Size()-1.
type VideoMemory interface {
	Size() int
	Peek(offset int) uint8
	Poke(offset int, data uint8)
}

// Base is the standard VGA implementation that an extended chip is layered
// on.
type Base interface {
	TimingSink

	// standard register access. index values are not bounds checked by the
	// caller
	SeqRead(index uint8) uint8
	SeqWrite(index uint8, data uint8)
	CRTCRead(index uint8) uint8
	CRTCWrite(index uint8, data uint8)
	GCRead(index uint8) uint8
	GCWrite(index uint8, data uint8)

	// currently selected register index for each group
	SeqIndex() uint8
	SetSeqIndex(index uint8)
	CRTCIndex() uint8
	GCIndex() uint8

	// generic port handler for all standard VGA ports
	PortRead(port uint16) uint8
	PortWrite(port uint16, data uint8)

	// non-banked memory access. offset is relative to the start of the legacy
	// framebuffer window at 0xa0000
	MemRead(offset uint32) uint8
	MemWrite(offset uint32, data uint8)

	VideoMemory() VideoMemory

	// display start address including any bits above bit 15
	StartAddress() uint32
	SetStartAddress(addr uint32)

	// CRTC offset register including bit 8
	CRTCOffset() uint16
	SetCRTCOffset(offset uint16)

	// line offset in bytes as seen by the standard VGA
	Offset() int

	MiscOutput() uint8

	Reset()
}
