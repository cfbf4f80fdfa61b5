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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/tridentvga/tridentvga/hardware/svga"
)

// Memory is a chained digest of video memory.
type Memory struct {
	mem    svga.VideoMemory
	digest [sha1.Size]byte

	// the head of the buffer contains the previous digest value
	buffer []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(mem svga.VideoMemory) *Memory {
	return &Memory{
		mem:    mem,
		buffer: make([]byte, sha1.Size+mem.Size()),
	}
}

// Hash implements the Digest interface.
func (dig *Memory) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Memory) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Update the digest with the current contents of video memory.
func (dig *Memory) Update() {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the memory data
	n := copy(dig.buffer, dig.digest[:])
	for i := 0; i < dig.mem.Size(); i++ {
		dig.buffer[n+i] = dig.mem.Peek(i)
	}
	dig.digest = sha1.Sum(dig.buffer)
}
