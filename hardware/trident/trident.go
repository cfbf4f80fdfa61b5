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
	"github.com/tridentvga/tridentvga/environment"
	"github.com/tridentvga/tridentvga/hardware/svga"
	"github.com/tridentvga/tridentvga/hardware/trident/banks"
	"github.com/tridentvga/tridentvga/hardware/trident/dac"
	"github.com/tridentvga/tridentvga/hardware/trident/mode"
	"github.com/tridentvga/tridentvga/logger"
)

// POST port addresses selected by SR0C.
const (
	PortPOST3C3  = 0x3c3
	PortPOST46E8 = 0x46e8
)

// ChipState is the state of the chip-specific registers and the values
// derived from them.
type ChipState struct {
	NewMode bool

	Revision uint8
	ChipID   uint8

	// sequencer registers. mode control registers 1 and 2 have separate
	// storage for old and new mode
	SR0C    uint8
	SR0DOld uint8
	SR0DNew uint8
	SR0EOld uint8
	SR0ENew uint8
	SR0F    uint8

	// CRTC registers. CR27 is not stored, it is a view of the start address
	CR1E uint8
	CR1F uint8
	CR21 uint8
	CR29 uint8
	CR38 uint8
	CR39 uint8
	CR50 uint8

	// graphics controller registers
	GC0E uint8
	GC0F uint8
	GC2F uint8

	DAC dac.Detector

	// clock select is latched on a new mode write to SR0D
	ClockSelect uint8

	Banks    banks.Selectors
	Aperture banks.Aperture
	MMIO     bool

	// POST port is at 0x3c3 rather than 0x46e8
	POST3C3 bool

	Video mode.Video
}

// Device is the Trident chip layered on a standard VGA.
type Device struct {
	env  *environment.Environment
	base svga.Base

	state ChipState
}

// NewDevice is the preferred method of initialisation for the Device type.
// The device is reset before it is returned.
func NewDevice(env *environment.Environment, base svga.Base) *Device {
	dev := &Device{
		env:  env,
		base: base,
	}
	dev.Reset()
	return dev
}

// Reset the device and the base it is layered on. Revision and chip ID are
// taken from the environment's preferences.
func (dev *Device) Reset() {
	dev.base.Reset()
	dev.state = ChipState{
		Revision: uint8(dev.env.Prefs.Revision.Get().(int)),
		ChipID:   uint8(dev.env.Prefs.ChipID.Get().(int)),
	}
	logger.Logf(dev.env, "trident", "reset: revision %#02x, chip id %#02x", dev.state.Revision, dev.state.ChipID)
}

// Snapshot creates a copy of the device. The copy shares the same base.
func (dev *Device) Snapshot() *Device {
	n := *dev
	return &n
}

// Plumb a new base into the device. The chip state is not changed.
func (dev *Device) Plumb(base svga.Base) {
	dev.base = base
}

// Base returns the VGA that the device is layered on.
func (dev *Device) Base() svga.Base {
	return dev.base
}

// State returns a copy of the current chip state.
func (dev *Device) State() ChipState {
	return dev.state
}

// Banks returns the current bank selection.
func (dev *Device) Banks() banks.Selectors {
	return dev.state.Banks
}

// VideoMode returns the most recently decoded video mode.
func (dev *Device) VideoMode() mode.Video {
	return dev.state.Video
}

// LinearAperture returns the current linear aperture.
func (dev *Device) LinearAperture() banks.Aperture {
	return dev.state.Aperture
}

// MMIO returns true if memory mapped I/O has been enabled.
func (dev *Device) MMIO() bool {
	return dev.state.MMIO
}

// NewMode returns true if the device is in new mode.
func (dev *Device) NewMode() bool {
	return dev.state.NewMode
}

// POSTPort returns the address of the POST port.
func (dev *Device) POSTPort() uint16 {
	if dev.state.POST3C3 {
		return PortPOST3C3
	}
	return PortPOST46E8
}

// decode the video mode and pass the result to the base.
func (dev *Device) decode() {
	dev.state.Video = mode.Decode(mode.Inputs{
		ClockSelect:  dev.state.ClockSelect,
		ModeControl2: dev.state.SR0DNew,
		PixelDepth:   dev.state.CR38,
		DACCommand:   dev.state.DAC.Command,
	})
	dev.base.RecomputeClock(1, dev.state.Video.PixelClock)
}
