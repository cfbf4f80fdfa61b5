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

// NumPaletteEntries is the number of colours in the palette DAC.
const NumPaletteEntries = 256

// values returned by the DAC state port.
const (
	dacStateWrite = 0x00
	dacStateRead  = 0x03
)

// the palette DAC. each entry is three 6-bit values accessed in R, G, B order
// through the data port.
type palette struct {
	entries [NumPaletteEntries * 3]uint8

	mask uint8

	readIndex  uint8
	readPhase  uint8
	writeIndex uint8
	writePhase uint8

	state uint8
}

func (pal *palette) reset() {
	*pal = palette{mask: 0xff}
}

func (pal *palette) setReadIndex(idx uint8) {
	pal.readIndex = idx
	pal.readPhase = 0
	pal.state = dacStateRead
}

func (pal *palette) setWriteIndex(idx uint8) {
	pal.writeIndex = idx
	pal.writePhase = 0
	pal.state = dacStateWrite
}

func (pal *palette) readData() uint8 {
	v := pal.entries[int(pal.readIndex)*3+int(pal.readPhase)]
	pal.readPhase++
	if pal.readPhase >= 3 {
		pal.readPhase = 0
		pal.readIndex++
	}
	return v
}

func (pal *palette) writeData(data uint8) {
	pal.entries[int(pal.writeIndex)*3+int(pal.writePhase)] = data & 0x3f
	pal.writePhase++
	if pal.writePhase >= 3 {
		pal.writePhase = 0
		pal.writeIndex++
	}
}
