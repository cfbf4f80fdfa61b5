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

// Standard VGA I/O ports. The CRTC and input status ports have a monochrome
// alternative at 0x3bX, selected by bit 0 of the miscellaneous output
// register.
const (
	PortCRTCIndexMono  = 0x3b4
	PortCRTCDataMono   = 0x3b5
	PortStatus1Mono    = 0x3ba
	PortAttrIndex      = 0x3c0
	PortAttrData       = 0x3c1
	PortMiscWrite      = 0x3c2
	PortStatus0        = 0x3c2
	PortSeqIndex       = 0x3c4
	PortSeqData        = 0x3c5
	PortDACMask        = 0x3c6
	PortDACReadIndex   = 0x3c7
	PortDACState       = 0x3c7
	PortDACWriteIndex  = 0x3c8
	PortDACData        = 0x3c9
	PortFeatureRead    = 0x3ca
	PortMiscRead       = 0x3cc
	PortGCIndex        = 0x3ce
	PortGCData         = 0x3cf
	PortCRTCIndexColor = 0x3d4
	PortCRTCDataColor  = 0x3d5
	PortStatus1Color   = 0x3da
)

// CRTC base addresses.
const (
	CRTCBaseMono  = 0x3b0
	CRTCBaseColor = 0x3d0
)

// Number of standard registers in each group.
const (
	NumSeqRegisters  = 0x05
	NumCRTCRegisters = 0x19
	NumGCRegisters   = 0x09
	NumAttrRegisters = 0x15
)

// Sequencer register indexes.
const (
	SeqReset      = 0x00
	SeqClocking   = 0x01
	SeqMapMask    = 0x02
	SeqCharMap    = 0x03
	SeqMemoryMode = 0x04
)

// SeqMemoryMode bits.
const (
	MemoryModeChain4 = 0x08
)

// CRTC register indexes used by the reference implementation.
const (
	CRTCStartHigh    = 0x0c
	CRTCStartLow     = 0x0d
	CRTCOffset       = 0x13
	CRTCUnderline    = 0x14
	CRTCModeControl  = 0x17
	CRTCLineCompare  = 0x18
)

const (
	underlineDWord   = 0x40
	modeControlByte  = 0x40
	crtcOffsetMask   = 0x01ff
	startAddressMask = 0xffff
)

// Graphics controller register indexes.
const (
	GCSetReset       = 0x00
	GCEnableSetReset = 0x01
	GCColorCompare   = 0x02
	GCDataRotate     = 0x03
	GCReadMapSelect  = 0x04
	GCMode           = 0x05
	GCMisc           = 0x06
	GCColorDontCare  = 0x07
	GCBitMask        = 0x08
)

// Miscellaneous output register bits.
const (
	MiscIOAddress   = 0x01
	MiscClockSelect = 0x0c
)

// Status bits of input status register 1.
const (
	StatusDisplayDisabled = 0x01
	StatusVerticalRetrace = 0x08
)

// CRTCBase returns the base address of the CRTC port block selected by the
// miscellaneous output register.
func CRTCBase(misc uint8) uint16 {
	if misc&MiscIOAddress == MiscIOAddress {
		return CRTCBaseColor
	}
	return CRTCBaseMono
}
