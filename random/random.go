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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator that is sensitive to the number of
// resets seen by the emulation.
type Random struct {
	epoch int64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Advance the epoch. Numbers returned after a call to Advance() will differ
// from the numbers returned before it.
func (rnd *Random) Advance() {
	rnd.epoch++
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.epoch))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.epoch))
}

// Intn returns a number in the range [0,n). Repeated calls in the same epoch
// return the same number.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill byte slice with random values. Repeated calls in the same epoch fill
// the slice with the same values.
func (rnd *Random) Fill(p []byte) {
	r := rnd.rand()
	for i := range p {
		p[i] = uint8(r.Intn(256))
	}
}
