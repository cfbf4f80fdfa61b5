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
)

// MemRead reads from the legacy framebuffer window. The offset is relative to
// the start of the window at 0xa0000. Banking is only used when an extended
// video mode is selected.
func (dev *Device) MemRead(offset uint32) uint8 {
	if !dev.state.Video.Depth.Extended() {
		return dev.base.MemRead(offset)
	}
	vram := dev.base.VideoMemory()
	return vram.Peek(banks.Translate(offset, dev.state.Banks.Read, dev.state.NewMode, vram.Size()))
}

// MemWrite writes to the legacy framebuffer window. See MemRead() for details.
func (dev *Device) MemWrite(offset uint32, data uint8) {
	if !dev.state.Video.Depth.Extended() {
		dev.base.MemWrite(offset, data)
		return
	}
	vram := dev.base.VideoMemory()
	vram.Poke(banks.Translate(offset, dev.state.Banks.Write, dev.state.NewMode, vram.Size()), data)
}

// Offset returns the line offset in bytes. In the extended video modes the
// CRTC offset is always a doubleword count.
func (dev *Device) Offset() int {
	if !dev.state.Video.Depth.Extended() {
		return dev.base.Offset()
	}
	return int(dev.base.CRTCOffset()) << 3
}
