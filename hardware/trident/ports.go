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

package trident

import (
	"github.com/tridentvga/tridentvga/hardware/svga"
	"github.com/tridentvga/tridentvga/hardware/trident/banks"
	"github.com/tridentvga/tridentvga/logger"
)

// Chip-specific ports.
const (
	// alias ports for the sequencer
	PortAliasSeqData  = 0x83c8
	PortAliasSeqIndex = 0x83ca

	// offsets of the bank alias ports from the CRTC base
	offsetCRTCData  = 0x05
	offsetWriteBank = 0x08
	offsetReadBank  = 0x09
)

// the alias block
const (
	aliasBlockStart = 0x83c6
	aliasBlockEnd   = 0x83cb
)

// PortRange is an inclusive range of I/O ports.
type PortRange struct {
	Start uint16
	End   uint16
}

// Contains returns true if the port is in the range.
func (r PortRange) Contains(port uint16) bool {
	return port >= r.Start && port <= r.End
}

// Ports returns the port ranges that should be routed to the device by the
// host's bus decoder.
func (dev *Device) Ports() []PortRange {
	return []PortRange{
		{Start: 0x3b0, End: 0x3bf},
		{Start: 0x3c0, End: 0x3cf},
		{Start: 0x3d0, End: 0x3df},
		{Start: aliasBlockStart, End: aliasBlockEnd},
	}
}

// crtcBlock returns the offset of the port from the CRTC base if the port is
// in one of the two CRTC blocks. The active return value is true if the block
// is the one currently selected by the miscellaneous output register.
func (dev *Device) crtcBlock(port uint16) (offset uint16, active bool, ok bool) {
	block := port &^ 0x0f
	if block != svga.CRTCBaseMono && block != svga.CRTCBaseColor {
		return 0, false, false
	}
	return port - block, block == svga.CRTCBase(dev.base.MiscOutput()), true
}

// Read a value from an I/O port.
func (dev *Device) Read(port uint16) uint8 {
	switch port {
	case svga.PortSeqData:
		return dev.seqRead(dev.base.SeqIndex())

	case svga.PortDACMask:
		if dev.state.DAC.Read() {
			return dev.state.DAC.Command
		}
		return dev.base.PortRead(port)

	case svga.PortDACState, svga.PortDACWriteIndex, svga.PortDACData:
		dev.state.DAC.Reset()
		return dev.base.PortRead(port)

	case svga.PortGCData:
		return dev.gcRead(dev.base.GCIndex())

	case PortAliasSeqData:
		res := dev.seqRead(dev.base.SeqIndex())
		logger.Logf(dev.env, "trident", "%04x: sequencer read %02x", port, res)
		return res

	case PortAliasSeqIndex:
		res := dev.base.SeqIndex()
		logger.Logf(dev.env, "trident", "%04x: sequencer index read %02x", port, res)
		return res
	}

	if port >= aliasBlockStart && port <= aliasBlockEnd {
		return 0xff
	}

	if offset, active, ok := dev.crtcBlock(port); ok {
		switch offset {
		case offsetCRTCData, offsetWriteBank, offsetReadBank:
			if !active {
				return 0xff
			}
		}

		ctrl := banks.Control(dev.state.GC0F)

		switch offset {
		case offsetCRTCData:
			return dev.crtcRead(dev.base.CRTCIndex())
		case offsetWriteBank:
			if ctrl.AliasEnabled() {
				return dev.state.Banks.Write
			}
			return 0xff
		case offsetReadBank:
			if ctrl.AliasEnabled() && ctrl.Separated() {
				return dev.state.Banks.Read
			}
			return 0xff
		}
	}

	return dev.base.PortRead(port)
}

// Write a value to an I/O port.
func (dev *Device) Write(port uint16, data uint8) {
	switch port {
	case svga.PortSeqData:
		dev.seqWrite(dev.base.SeqIndex(), data)
		return

	case svga.PortDACMask:
		if dev.state.DAC.Write(data) {
			dev.decode()
			return
		}
		dev.base.PortWrite(port, data)
		return

	case svga.PortDACReadIndex, svga.PortDACWriteIndex, svga.PortDACData:
		dev.state.DAC.Reset()
		dev.base.PortWrite(port, data)
		return

	case svga.PortGCData:
		dev.gcWrite(dev.base.GCIndex(), data)
		return

	case PortAliasSeqData:
		logger.Logf(dev.env, "trident", "%04x: sequencer write %02x", port, data)
		dev.seqWrite(dev.base.SeqIndex(), data)
		return

	case PortAliasSeqIndex:
		logger.Logf(dev.env, "trident", "%04x: sequencer index write %02x", port, data)
		dev.base.SetSeqIndex(data)
		return
	}

	if port >= aliasBlockStart && port <= aliasBlockEnd {
		return
	}

	if offset, active, ok := dev.crtcBlock(port); ok {
		switch offset {
		case offsetCRTCData, offsetWriteBank, offsetReadBank:
			if !active {
				return
			}
		}

		ctrl := banks.Control(dev.state.GC0F)

		switch offset {
		case offsetCRTCData:
			dev.crtcWrite(dev.base.CRTCIndex(), data)
			return
		case offsetWriteBank:
			if ctrl.AliasEnabled() {
				dev.state.Banks.SetWrite(data, ctrl.Separated())
			}
			return
		case offsetReadBank:
			if ctrl.AliasEnabled() && ctrl.Separated() {
				dev.state.Banks.SetRead(data)
			}
			return
		}
	}

	dev.base.PortWrite(port, data)
}
