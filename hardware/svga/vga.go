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

import (
	"github.com/tridentvga/tridentvga/environment"
)

// VGA is a reference implementation of the Base interface.
type VGA struct {
	env *environment.Environment

	vram *VRAM

	misc   uint8
	status uint8

	seqIndex  uint8
	crtcIndex uint8
	gcIndex   uint8
	attrIndex uint8

	seq  [NumSeqRegisters]uint8
	crtc [NumCRTCRegisters]uint8
	gc   [NumGCRegisters]uint8
	attr [NumAttrRegisters]uint8

	// the attribute controller uses a single port for both index and data.
	// the flip-flop is reset by a read of input status register 1
	attrFlip bool

	// bits of the start address and CRTC offset that do not fit into the
	// standard registers
	startExt  uint32
	offsetExt uint16

	latch [4]uint8

	pal palette

	// the most recent values passed to RecomputeClock()
	divisor    int
	pixelClock int
	recomputes int
}

// NewVGA is the preferred method of initialisation for the VGA type. The
// size of video memory is taken from the environment's preferences.
func NewVGA(env *environment.Environment) *VGA {
	vga := &VGA{
		env:  env,
		vram: NewVRAM(env.Prefs.VRAMSize.Get().(int)),
	}
	vga.Reset()
	return vga
}

// Reset implements the Base interface. Video memory is cleared or randomised
// depending on the environment's preferences.
func (vga *VGA) Reset() {
	vga.misc = MiscIOAddress
	vga.status = 0
	vga.seqIndex = 0
	vga.crtcIndex = 0
	vga.gcIndex = 0
	vga.attrIndex = 0
	vga.seq = [NumSeqRegisters]uint8{}
	vga.crtc = [NumCRTCRegisters]uint8{}
	vga.gc = [NumGCRegisters]uint8{}
	vga.attr = [NumAttrRegisters]uint8{}
	vga.attrFlip = false
	vga.startExt = 0
	vga.offsetExt = 0
	vga.latch = [4]uint8{}
	vga.pal.reset()
	vga.divisor = 0
	vga.pixelClock = 0

	vga.seq[SeqMapMask] = 0x0f
	vga.seq[SeqMemoryMode] = MemoryModeChain4
	vga.gc[GCBitMask] = 0xff

	if vga.env.Prefs.RandomState.Get().(bool) {
		vga.env.Random.Fill(vga.vram.Bytes())
		vga.env.Random.Advance()
	} else {
		vga.vram.Clear()
	}
}

// RecomputeClock implements the TimingSink interface.
func (vga *VGA) RecomputeClock(divisor int, pixelClock int) {
	vga.divisor = divisor
	vga.pixelClock = pixelClock
	vga.recomputes++
}

// Timing returns the most recent values passed to RecomputeClock().
func (vga *VGA) Timing() (divisor int, pixelClock int) {
	return vga.divisor, vga.pixelClock
}

// Recomputes returns the number of calls to RecomputeClock() since the VGA
// was created.
func (vga *VGA) Recomputes() int {
	return vga.recomputes
}

// SeqRead implements the Base interface.
func (vga *VGA) SeqRead(index uint8) uint8 {
	if int(index) >= len(vga.seq) {
		return 0xff
	}
	return vga.seq[index]
}

// SeqWrite implements the Base interface.
func (vga *VGA) SeqWrite(index uint8, data uint8) {
	if int(index) >= len(vga.seq) {
		return
	}
	vga.seq[index] = data
}

// CRTCRead implements the Base interface.
func (vga *VGA) CRTCRead(index uint8) uint8 {
	if int(index) >= len(vga.crtc) {
		return 0xff
	}
	return vga.crtc[index]
}

// CRTCWrite implements the Base interface. Registers 0x00 to 0x07 are write
// protected while bit 7 of register 0x11 is set.
func (vga *VGA) CRTCWrite(index uint8, data uint8) {
	if int(index) >= len(vga.crtc) {
		return
	}
	if index <= 0x07 && vga.crtc[0x11]&0x80 == 0x80 {
		return
	}
	vga.crtc[index] = data
}

// GCRead implements the Base interface.
func (vga *VGA) GCRead(index uint8) uint8 {
	if int(index) >= len(vga.gc) {
		return 0xff
	}
	return vga.gc[index]
}

// GCWrite implements the Base interface.
func (vga *VGA) GCWrite(index uint8, data uint8) {
	if int(index) >= len(vga.gc) {
		return
	}
	vga.gc[index] = data
}

// SeqIndex implements the Base interface.
func (vga *VGA) SeqIndex() uint8 {
	return vga.seqIndex
}

// SetSeqIndex implements the Base interface.
func (vga *VGA) SetSeqIndex(index uint8) {
	vga.seqIndex = index
}

// CRTCIndex implements the Base interface.
func (vga *VGA) CRTCIndex() uint8 {
	return vga.crtcIndex
}

// GCIndex implements the Base interface.
func (vga *VGA) GCIndex() uint8 {
	return vga.gcIndex
}

// VideoMemory implements the Base interface.
func (vga *VGA) VideoMemory() VideoMemory {
	return vga.vram
}

// StartAddress implements the Base interface.
func (vga *VGA) StartAddress() uint32 {
	return vga.startExt | uint32(vga.crtc[CRTCStartHigh])<<8 | uint32(vga.crtc[CRTCStartLow])
}

// SetStartAddress implements the Base interface.
func (vga *VGA) SetStartAddress(addr uint32) {
	vga.crtc[CRTCStartHigh] = uint8(addr >> 8)
	vga.crtc[CRTCStartLow] = uint8(addr)
	vga.startExt = addr &^ startAddressMask
}

// CRTCOffset implements the Base interface.
func (vga *VGA) CRTCOffset() uint16 {
	return vga.offsetExt | uint16(vga.crtc[CRTCOffset])
}

// SetCRTCOffset implements the Base interface.
func (vga *VGA) SetCRTCOffset(offset uint16) {
	offset &= crtcOffsetMask
	vga.crtc[CRTCOffset] = uint8(offset)
	vga.offsetExt = offset & 0x100
}

// Offset implements the Base interface. The value depends on the addressing
// mode selected by the underline location and mode control registers.
func (vga *VGA) Offset() int {
	off := int(vga.CRTCOffset())
	if vga.crtc[CRTCUnderline]&underlineDWord == underlineDWord {
		return off << 3
	}
	if vga.crtc[CRTCModeControl]&modeControlByte == modeControlByte {
		return off << 1
	}
	return off << 2
}

// MiscOutput implements the Base interface.
func (vga *VGA) MiscOutput() uint8 {
	return vga.misc
}

// PaletteEntry returns the 6-bit colour components of a palette entry.
func (vga *VGA) PaletteEntry(idx uint8) (r uint8, g uint8, b uint8) {
	i := int(idx) * 3
	return vga.pal.entries[i], vga.pal.entries[i+1], vga.pal.entries[i+2]
}

// PortRead implements the Base interface. Unused ports return 0xff.
func (vga *VGA) PortRead(port uint16) uint8 {
	switch port {
	case PortAttrIndex:
		return vga.attrIndex
	case PortAttrData:
		if int(vga.attrIndex&0x1f) < len(vga.attr) {
			return vga.attr[vga.attrIndex&0x1f]
		}
		return 0xff
	case PortStatus0:
		return 0x00
	case PortSeqIndex:
		return vga.seqIndex
	case PortSeqData:
		return vga.SeqRead(vga.seqIndex)
	case PortDACMask:
		return vga.pal.mask
	case PortDACState:
		return vga.pal.state
	case PortDACWriteIndex:
		return vga.pal.writeIndex
	case PortDACData:
		return vga.pal.readData()
	case PortFeatureRead:
		return 0x00
	case PortMiscRead:
		return vga.misc
	case PortGCIndex:
		return vga.gcIndex
	case PortGCData:
		return vga.GCRead(vga.gcIndex)
	}

	base := CRTCBase(vga.misc)
	switch port {
	case base + 0x04:
		return vga.crtcIndex
	case base + 0x05:
		return vga.CRTCRead(vga.crtcIndex)
	case base + 0x0a:
		vga.attrFlip = false
		vga.status ^= StatusVerticalRetrace | StatusDisplayDisabled
		return vga.status
	}

	return 0xff
}

// PortWrite implements the Base interface. Writes to unused ports are
// ignored.
func (vga *VGA) PortWrite(port uint16, data uint8) {
	switch port {
	case PortAttrIndex:
		if vga.attrFlip {
			if int(vga.attrIndex&0x1f) < len(vga.attr) {
				vga.attr[vga.attrIndex&0x1f] = data
			}
		} else {
			vga.attrIndex = data & 0x3f
		}
		vga.attrFlip = !vga.attrFlip
		return
	case PortMiscWrite:
		vga.misc = data
		return
	case PortSeqIndex:
		vga.seqIndex = data
		return
	case PortSeqData:
		vga.SeqWrite(vga.seqIndex, data)
		return
	case PortDACMask:
		vga.pal.mask = data
		return
	case PortDACReadIndex:
		vga.pal.setReadIndex(data)
		return
	case PortDACWriteIndex:
		vga.pal.setWriteIndex(data)
		return
	case PortDACData:
		vga.pal.writeData(data)
		return
	case PortGCIndex:
		vga.gcIndex = data
		return
	case PortGCData:
		vga.GCWrite(vga.gcIndex, data)
		return
	}

	base := CRTCBase(vga.misc)
	switch port {
	case base + 0x04:
		vga.crtcIndex = data
	case base + 0x05:
		vga.CRTCWrite(vga.crtcIndex, data)
	}
}
