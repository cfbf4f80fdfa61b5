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

import "fmt"

// linear aperture control register (CR21) fields
const (
	apertureHigh   = 0xc0
	apertureLow    = 0x0f
	apertureActive = 0x20
	aperture2MB    = 0x10
)

// Aperture describes the linear aperture, through which the whole of video
// memory can be accessed without banking.
type Aperture struct {
	Address uint32
	Size    int
	Active  bool
}

func (ap Aperture) String() string {
	if !ap.Active {
		return "inactive"
	}
	return fmt.Sprintf("%#x (%dMB)", ap.Address, ap.Size>>20)
}

// DecodeAperture returns the Aperture for a value written to the linear
// aperture control register.
func DecodeAperture(data uint8) Aperture {
	ap := Aperture{
		Address: (uint32(data&apertureHigh) << 18) | (uint32(data&apertureLow) << 20),
		Size:    1 << 20,
		Active:  data&apertureActive == apertureActive,
	}
	if data&aperture2MB == aperture2MB {
		ap.Size = 2 << 20
	}
	return ap
}
