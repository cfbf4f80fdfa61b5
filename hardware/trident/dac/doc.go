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

// Package dac implements the detection of accesses to the hidden DAC command
// register.
//
// The DAC command register shares its port with the palette mask register.
// The command register is reached by reading the port four times in
// succession, after which the next access to the port is to the command
// register. An access to any of the palette index or data ports returns the
// detector to the idle state.
//
//	state     event             next                   routed to
//	idle      read command port arming(1)              palette
//	arming(n) read command port arming(n+1), active@4  palette
//	idle      write command     idle                   palette
//	arming(n) write command     arming(n)              palette
//	active    read command port active                 command
//	active    write command     idle, value latched    command
//	any       reset port        idle                   palette
package dac
