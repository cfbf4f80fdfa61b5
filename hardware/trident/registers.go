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
	"github.com/tridentvga/tridentvga/hardware/trident/banks"
	"github.com/tridentvga/tridentvga/hardware/trident/mode"
	"github.com/tridentvga/tridentvga/logger"
)

// the highest standard index in each register group. indexes above these
// values are chip-specific
const (
	seqStandard  = 0x04
	crtcStandard = 0x18
	gcStandard   = 0x0d
)

// the value returned by a read of an unknown chip-specific register
const unknownRegister = 0xff

// Chip-specific sequencer registers.
const (
	SeqRevision     = 0x09
	SeqChipID       = 0x0b
	SeqPowerUp1     = 0x0c
	SeqModeControl2 = 0x0d
	SeqModeControl1 = 0x0e
	SeqPowerUp2     = 0x0f
)

// Chip-specific CRTC registers.
const (
	CRTCModuleTesting       = 0x1e
	CRTCSoftwareProgramming = 0x1f
	CRTCLinearAperture      = 0x21
	CRTCStartAddressHigh    = 0x27
	CRTCOffsetExtension     = 0x29
	CRTCPixelDepth          = 0x38
	CRTCMMIO                = 0x39
	CRTCRegister50          = 0x50
)

// Chip-specific graphics controller registers.
const (
	GCAlternateBank = 0x0e
	GCBankControl   = 0x0f
	GCMiscInterrupt = 0x2f
)

// register bits
const (
	powerUpPOST3C3    = 0x10
	bankInvert        = 0x02
	bankMaskOld       = 0x0e
	bankMaskNew       = 0x1f
	moduleTestStart16 = 0x20
	offsetExtBit8     = 0x10
	mmioEnable        = 0x01
)

// start address and CRTC offset bits set by chip-specific registers
const (
	startAddressBit16    = 0x10000
	startAddressBits1718 = 0x60000
	startAddressShift17  = 17
	crtcOffsetBit8       = 0x100
)

func (dev *Device) seqRead(index uint8) uint8 {
	if index <= seqStandard {
		return dev.base.SeqRead(index)
	}

	var res uint8

	switch index {
	case SeqRevision:
		res = dev.state.Revision
	case SeqChipID:
		res = dev.state.ChipID
		dev.state.NewMode = true
	case SeqPowerUp1:
		res = dev.state.SR0C &^ powerUpPOST3C3
		if dev.state.POST3C3 {
			res |= powerUpPOST3C3
		}
	case SeqModeControl2:
		if dev.state.NewMode {
			res = dev.state.SR0DNew
		} else {
			res = dev.state.SR0DOld
		}
	case SeqModeControl1:
		if dev.state.NewMode {
			res = dev.state.SR0ENew
		} else {
			res = dev.state.SR0EOld
		}
	case SeqPowerUp2:
		res = dev.state.SR0F
	default:
		logger.Logf(dev.env, "trident", "SR%02X: read of unknown register", index)
		return unknownRegister
	}

	logger.Logf(dev.env, "trident", "SR%02X: read %02x", index, res)
	return res
}

func (dev *Device) seqWrite(index uint8, data uint8) {
	if index <= seqStandard {
		dev.base.SeqWrite(index, data)
		return
	}

	logger.Logf(dev.env, "trident", "SR%02X: %s mode write %02x", index, dev.modeName(), data)

	separated := banks.Control(dev.state.GC0F).Separated()

	switch index {
	case SeqChipID:
		dev.state.NewMode = false
	case SeqPowerUp1:
		dev.state.SR0C = data
		dev.state.POST3C3 = data&powerUpPOST3C3 == powerUpPOST3C3
	case SeqModeControl2:
		if dev.state.NewMode {
			dev.state.SR0DNew = data
			dev.state.ClockSelect = mode.ClockSelect(dev.base.MiscOutput(), data)
			dev.decode()
		} else {
			dev.state.SR0DOld = data
		}
	case SeqModeControl1:
		// bit 1 of the bank number is inverted in new mode. it is used to
		// detect the chip and is not inverted again on read
		if dev.state.NewMode {
			dev.state.SR0ENew = data ^ bankInvert
			dev.state.Banks.SetWrite((data&bankMaskNew)^bankInvert, separated)
		} else {
			dev.state.SR0EOld = data
			dev.state.Banks.SetWrite(data&bankMaskOld, separated)
		}
	case SeqPowerUp2:
		dev.state.SR0F = data
	case SeqRevision:
		// read only
	default:
		logger.Logf(dev.env, "trident", "SR%02X: write to unknown register", index)
	}
}

func (dev *Device) crtcRead(index uint8) uint8 {
	if index <= crtcStandard {
		return dev.base.CRTCRead(index)
	}

	var res uint8

	switch index {
	case CRTCModuleTesting:
		res = dev.state.CR1E
	case CRTCSoftwareProgramming:
		res = dev.state.CR1F
	case CRTCLinearAperture:
		res = dev.state.CR21
	case CRTCStartAddressHigh:
		res = uint8((dev.base.StartAddress() & startAddressBits1718) >> startAddressShift17)
	case CRTCOffsetExtension:
		res = dev.state.CR29
	case CRTCPixelDepth:
		res = dev.state.CR38
	case CRTCMMIO:
		res = dev.state.CR39
	case CRTCRegister50:
		res = dev.state.CR50
	default:
		logger.Logf(dev.env, "trident", "CR%02X: read of unknown register", index)
		return unknownRegister
	}

	logger.Logf(dev.env, "trident", "CR%02X: read %02x", index, res)
	return res
}

func (dev *Device) crtcWrite(index uint8, data uint8) {
	if index <= crtcStandard {
		// any standard CRTC register can affect the timing
		dev.base.CRTCWrite(index, data)
		dev.decode()
		return
	}

	logger.Logf(dev.env, "trident", "CR%02X: write %02x", index, data)

	switch index {
	case CRTCModuleTesting:
		dev.state.CR1E = data
		sa := dev.base.StartAddress() &^ startAddressBit16
		dev.base.SetStartAddress(sa | uint32(data&moduleTestStart16)<<11)
	case CRTCSoftwareProgramming:
		dev.state.CR1F = data
	case CRTCLinearAperture:
		dev.state.CR21 = data
		dev.state.Aperture = banks.DecodeAperture(data)
		if dev.state.Aperture.Active {
			logger.Logf(dev.env, "trident", "linear aperture active: %s", dev.state.Aperture)
		}
	case CRTCStartAddressHigh:
		sa := dev.base.StartAddress() &^ startAddressBits1718
		dev.base.SetStartAddress(sa | uint32(data&0x03)<<startAddressShift17)
	case CRTCOffsetExtension:
		dev.state.CR29 = data
		off := dev.base.CRTCOffset() &^ crtcOffsetBit8
		dev.base.SetCRTCOffset(off | uint16(data&offsetExtBit8)<<4)
	case CRTCPixelDepth:
		dev.state.CR38 = data
		dev.decode()
	case CRTCMMIO:
		dev.state.CR39 = data
		dev.state.MMIO = data&mmioEnable == mmioEnable
		if dev.state.MMIO {
			logger.Log(dev.env, "trident", "MMIO active")
		}
	case CRTCRegister50:
		dev.state.CR50 = data
	default:
		logger.Logf(dev.env, "trident", "CR%02X: write to unknown register", index)
	}
}

func (dev *Device) gcRead(index uint8) uint8 {
	if index <= gcStandard {
		return dev.base.GCRead(index)
	}

	var res uint8

	switch index {
	case GCAlternateBank:
		res = dev.state.GC0E
	case GCBankControl:
		res = dev.state.GC0F
	case GCMiscInterrupt:
		res = dev.state.GC2F
	default:
		logger.Logf(dev.env, "trident", "GC%02X: read of unknown register", index)
		return unknownRegister
	}

	logger.Logf(dev.env, "trident", "GC%02X: read %02x", index, res)
	return res
}

func (dev *Device) gcWrite(index uint8, data uint8) {
	if index <= gcStandard {
		dev.base.GCWrite(index, data)
		return
	}

	logger.Logf(dev.env, "trident", "GC%02X: write %02x", index, data)

	switch index {
	case GCAlternateBank:
		// bit 1 is inverted as it is for SR0E
		dev.state.GC0E = data ^ bankInvert

		// the alternate bank register only sets the read bank if the bank
		// alias ports are disabled and the banks are separated
		ctrl := banks.Control(dev.state.GC0F)
		if !ctrl.AliasEnabled() && ctrl.Separated() {
			dev.state.Banks.SetRead((data & bankMaskNew) ^ bankInvert)
		}
	case GCBankControl:
		dev.state.GC0F = data
	case GCMiscInterrupt:
		dev.state.GC2F = data
	default:
		logger.Logf(dev.env, "trident", "GC%02X: write to unknown register", index)
	}
}

func (dev *Device) modeName() string {
	if dev.state.NewMode {
		return "new"
	}
	return "old"
}
