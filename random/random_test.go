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

package random_test

import (
	"bytes"
	"testing"

	"github.com/tridentvga/tridentvga/random"
	"github.com/tridentvga/tridentvga/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestFill(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	pa := make([]byte, 1024)
	pb := make([]byte, 1024)

	a.Fill(pa)
	b.Fill(pb)
	test.ExpectSuccess(t, bytes.Equal(pa, pb))

	// advancing one generator changes its output
	a.Advance()
	a.Fill(pa)
	test.ExpectFailure(t, bytes.Equal(pa, pb))

	// and advancing the other brings them back into line
	b.Advance()
	b.Fill(pb)
	test.ExpectSuccess(t, bytes.Equal(pa, pb))
}
