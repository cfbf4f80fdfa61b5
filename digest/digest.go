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

// Digest implementations produce a hash value that can be compared against a
// previously recorded value.
type Digest interface {
	Hash() string
	ResetDigest()
}
