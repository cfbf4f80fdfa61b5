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

package banks

// Size is the number of bytes in a bank.
const Size = 0x10000

// bank values are five bits wide
const mask = 0x1f

// Selectors are the currently selected read and write banks.
type Selectors struct {
	Write uint8
	Read  uint8
}

// SetWrite sets the write bank. The read bank is set to the same value unless
// the banks are separated.
func (sel *Selectors) SetWrite(bank uint8, separated bool) {
	sel.Write = bank & mask
	if !separated {
		sel.Read = sel.Write
	}
}

// SetRead sets the read bank.
func (sel *Selectors) SetRead(bank uint8) {
	sel.Read = bank & mask
}

// bank control register (GC0F) bits
const (
	controlSeparated    = 0x01
	controlAliasEnabled = 0x04
)

// Control is the value of the bank control register.
type Control uint8

// Separated returns true if the read bank is independent of the write bank.
func (c Control) Separated() bool {
	return c&controlSeparated == controlSeparated
}

// AliasEnabled returns true if the bank alias ports are active.
func (c Control) AliasEnabled() bool {
	return c&controlAliasEnabled == controlAliasEnabled
}

// Translate an offset in the legacy framebuffer window to an offset in video
// memory of the specified size.
//
// In new mode the window is 64KB and the offset is masked accordingly. In old
// mode the window is 128KB and the offset is used unmasked.
func Translate(offset uint32, bank uint8, newMode bool, size int) int {
	if newMode {
		offset &= 0xffff
	}
	return (int(offset) + int(bank)*Size) % size
}
