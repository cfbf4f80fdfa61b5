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

// VRAM is a simple implementation of the VideoMemory interface. In planar
// modes the four planes are interleaved, so that plane p of address a is
// stored at (a*4)+p.
type VRAM struct {
	data []uint8
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM(size int) *VRAM {
	return &VRAM{
		data: make([]uint8, size),
	}
}

// Size implements the VideoMemory interface.
func (mem *VRAM) Size() int {
	return len(mem.data)
}

// Peek implements the VideoMemory interface.
func (mem *VRAM) Peek(offset int) uint8 {
	return mem.data[offset]
}

// Poke implements the VideoMemory interface.
func (mem *VRAM) Poke(offset int, data uint8) {
	mem.data[offset] = data
}

// Clear sets every byte of video memory to zero.
func (mem *VRAM) Clear() {
	clear(mem.data)
}

// Bytes returns the underlying storage.
func (mem *VRAM) Bytes() []uint8 {
	return mem.data
}

// the address range of the legacy window decoded by the GC miscellaneous
// register
func memoryMap(gcMisc uint8) (origin uint32, size uint32) {
	switch (gcMisc >> 2) & 0x03 {
	case 0:
		return 0x00000, 0x20000
	case 1:
		return 0x00000, 0x10000
	case 2:
		return 0x10000, 0x08000
	}
	return 0x18000, 0x08000
}

// MemRead implements the Base interface.
func (vga *VGA) MemRead(offset uint32) uint8 {
	origin, size := memoryMap(vga.gc[GCMisc])
	if offset < origin || offset >= origin+size {
		return 0xff
	}
	offset -= origin

	sz := vga.vram.Size()

	if vga.seq[SeqMemoryMode]&MemoryModeChain4 == MemoryModeChain4 {
		return vga.vram.Peek(int(offset) % sz)
	}

	// planar mode. all latches are loaded but only the plane selected by the
	// read map register is returned
	for p := range vga.latch {
		vga.latch[p] = vga.vram.Peek((int(offset)*4 + p) % sz)
	}
	return vga.latch[vga.gc[GCReadMapSelect]&0x03]
}

// MemWrite implements the Base interface.
func (vga *VGA) MemWrite(offset uint32, data uint8) {
	origin, size := memoryMap(vga.gc[GCMisc])
	if offset < origin || offset >= origin+size {
		return
	}
	offset -= origin

	sz := vga.vram.Size()
	mapMask := vga.seq[SeqMapMask]

	if vga.seq[SeqMemoryMode]&MemoryModeChain4 == MemoryModeChain4 {
		if mapMask&(1<<(offset&0x03)) != 0 {
			vga.vram.Poke(int(offset)%sz, data)
		}
		return
	}

	bitMask := vga.gc[GCBitMask]
	for p := 0; p < 4; p++ {
		if mapMask&(1<<p) == 0 {
			continue // for loop
		}
		a := (int(offset)*4 + p) % sz
		if bitMask == 0xff {
			vga.vram.Poke(a, data)
		} else {
			vga.vram.Poke(a, (vga.vram.Peek(a) & ^bitMask)|(data&bitMask))
		}
	}
}
